package history

import (
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"git.lost.host/meutraa/fever/internal/game"
	"git.lost.host/meutraa/fever/internal/score"
)

func encodeBlocks(r *score.Result) (string, error) {
	payload := `{"blocks":[]}`
	var err error
	for _, b := range r.Blocks() {
		payload, err = sjson.Set(payload, "blocks.-1", map[string]interface{}{
			"mode":  b.Mode.String(),
			"notes": b.Notes,
			"score": b.Score,
		})
		if nil != err {
			return "", err
		}
	}
	return sjson.Set(payload, "total", r.Total)
}

func decodeBlocks(payload string) []game.Block {
	blocks := []game.Block{}
	gjson.Get(payload, "blocks").ForEach(func(_, v gjson.Result) bool {
		b := game.Block{
			Notes: int(v.Get("notes").Int()),
			Score: v.Get("score").Int(),
		}
		if v.Get("mode").Str == game.Fever.String() {
			b.Mode = game.Fever
		}
		blocks = append(blocks, b)
		return true
	})
	return blocks
}

package score

import "git.lost.host/meutraa/fever/internal/game"

// Result is the outcome of one simulation. It is not modified after creation.
type Result struct {
	Total  int64
	blocks []game.Block
}

func newResult(blocks []game.Block) *Result {
	r := &Result{blocks: blocks}
	for _, b := range blocks {
		r.Total += b.Score
	}
	return r
}

// Blocks returns a copy of the scoring blocks in play order.
func (r *Result) Blocks() []game.Block {
	blocks := make([]game.Block, len(r.blocks))
	copy(blocks, r.blocks)
	return blocks
}

func (r *Result) Len() int {
	return len(r.blocks)
}

// Notes is the number of notes covered by all blocks.
func (r *Result) Notes() int {
	n := 0
	for _, b := range r.blocks {
		n += b.Notes
	}
	return n
}

// Fevers counts the fever blocks.
func (r *Result) Fevers() int {
	n := 0
	for _, b := range r.blocks {
		if b.Mode == game.Fever {
			n++
		}
	}
	return n
}

package render

import (
	"git.lost.host/meutraa/fever/internal/batch"
	"git.lost.host/meutraa/fever/internal/game"
	"git.lost.host/meutraa/fever/internal/history"
	"git.lost.host/meutraa/fever/internal/score"
)

type Renderer interface {
	Song(song *game.Song, r *score.Result, best *history.Run)
	Failure(name string, err error)
	Summary(s *batch.Summary)
	Flush() error
}

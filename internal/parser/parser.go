package parser

import (
	"io"

	"git.lost.host/meutraa/fever/internal/game"
)

type Parser interface {
	Parse(file string) (*game.Song, error)
	Read(r io.Reader) (*game.Song, error)
}

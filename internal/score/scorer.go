package score

import (
	"git.lost.host/meutraa/fever/internal/game"
)

type Scorer interface {
	// Derive resolves the stat vector into the scalars a simulation needs
	Derive(stats game.Stats, song *game.Song) *Reference

	// Simulate walks the song timeline, alternating non-fever and fever blocks
	Simulate(ref *Reference, song *game.Song) (*Result, error)

	// Calculate is Derive followed by Simulate
	Calculate(song *game.Song, stats game.Stats) (*Result, error)
}

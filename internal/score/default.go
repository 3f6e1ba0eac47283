package score

import (
	"log"
	"sort"

	"github.com/pkg/errors"

	"git.lost.host/meutraa/fever/internal/game"
	"git.lost.host/meutraa/fever/internal/table"
)

var ErrInvalidInput = errors.New("invalid input")

// ErrNoTable is returned by a scorer that was not built by NewDefaultScorer.
var ErrNoTable = errors.New("scorer has no stat table")

type DefaultScorer struct {
	refs *table.References
}

// NewDefaultScorer resolves the whole table once. The scorer is safe for
// concurrent use afterwards.
func NewDefaultScorer(t *table.Table, logger *log.Logger) *DefaultScorer {
	return &DefaultScorer{refs: table.BuildReferences(t, logger)}
}

// Derive needs a scorer built by NewDefaultScorer and returns nil otherwise.
func (s *DefaultScorer) Derive(stats game.Stats, song *game.Song) *Reference {
	if nil == s.refs {
		return nil
	}
	return derive(s.refs, stats, song)
}

func (s *DefaultScorer) Calculate(song *game.Song, stats game.Stats) (*Result, error) {
	ref := s.Derive(stats, song)
	if nil == ref {
		return nil, ErrNoTable
	}
	return s.Simulate(ref, song)
}

func (s *DefaultScorer) Simulate(ref *Reference, song *game.Song) (*Result, error) {
	if err := validate(song); nil != err {
		return nil, err
	}

	total := song.TotalNotes
	blocks := []game.Block{}
	mode := game.NonFever
	fevers := 0
	for pos := 0; pos < total; {
		var n int
		var score int64
		switch mode {
		case game.NonFever:
			n = ref.NonFeverNotes
			if n > total-pos {
				n = total - pos
			}
			score = ref.Ramp.Block(pos, n, ref.ComboValue, 1)
		case game.Fever:
			n = feverNotes(song.Notes, pos, total, ref.FeverWindow)
			score = ref.Ramp.Block(pos, n, ref.FeverValue, ref.FeverMul)
			fevers++
			// Every fever after the first swaps one combo note for a fever note
			if fevers > 1 {
				score = score - ref.ComboValue + ref.FeverValue
			}
		}
		blocks = append(blocks, game.Block{Mode: mode, Notes: n, Score: score})
		pos += n
		mode = mode.Toggle()
	}
	return newResult(blocks), nil
}

// feverNotes counts the notes from pos that fall inside the fever window.
// The search never returns past the final note, so a final note landing
// exactly on the window end is left to the next block.
func feverNotes(notes []game.Note, pos, total int, window float64) int {
	end := notes[pos].Time + window
	last := len(notes) - 1
	if notes[last].Time < end {
		return total - pos
	}
	k := pos + 1
	if k < last {
		lo := k
		k += sort.Search(last-lo, func(i int) bool {
			return notes[lo+i].Time > end
		})
	}
	n := k - pos
	if n > total-pos {
		n = total - pos
	}
	return n
}

func validate(song *game.Song) error {
	if song.TotalNotes < 0 || song.LongNotes < 0 {
		return errors.Wrapf(ErrInvalidInput, "negative note counts %v/%v", song.TotalNotes, song.LongNotes)
	}
	if song.LongNotes > song.TotalNotes {
		return errors.Wrapf(ErrInvalidInput, "%v long notes exceed %v total notes", song.LongNotes, song.TotalNotes)
	}
	if len(song.Notes) < song.TotalNotes {
		return errors.Wrapf(ErrInvalidInput, "timeline has %v notes, %v expected", len(song.Notes), song.TotalNotes)
	}
	for i := 1; i < len(song.Notes); i++ {
		if song.Notes[i].Time < song.Notes[i-1].Time {
			return errors.Wrapf(ErrInvalidInput, "note %v at %vs is before note %v at %vs",
				i, song.Notes[i].Time, i-1, song.Notes[i-1].Time)
		}
	}
	return nil
}

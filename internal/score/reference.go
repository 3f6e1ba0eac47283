package score

import (
	"math"
	"strconv"

	"git.lost.host/meutraa/fever/internal/game"
	"git.lost.host/meutraa/fever/internal/table"
)

// Reference is everything a simulation needs from the stat vector.
type Reference struct {
	ComboMul        float64
	FeverMul        float64
	Perfect         float64
	FeverFillRate   float64
	FeverTimeFactor float64

	Base       float64 // Per note value before multipliers
	ComboValue int64   // Flat per note value past the ramp
	FeverValue int64   // Flat per note value past the ramp, in fever
	Ramp       Ramp

	NonFeverNotes int     // Notes until the fever gauge fills
	FeverWindow   float64 // Seconds a fever lasts
}

func derive(refs *table.References, stats game.Stats, song *game.Song) *Reference {
	ref := &Reference{
		ComboMul:        refs.Get(game.ComboMultiplier, stats.Get(game.ComboMultiplier)),
		FeverMul:        refs.Get(game.FeverMultiplier, stats.Get(game.FeverMultiplier)),
		Perfect:         refs.Get(game.PerfectPoints, stats.Get(game.PerfectPoints)),
		FeverFillRate:   refs.Get(game.FeverFillRate, stats.Get(game.FeverFillRate)),
		FeverTimeFactor: refs.Get(game.FeverTime, stats.Get(game.FeverTime)),
	}

	// The primary color counts twice
	ref.Base = 2*stats.ColorValue(song.PrimaryColor) + stats.ColorValue(song.SecondaryColor) + ref.Perfect
	ref.ComboValue = int64(math.Floor(ref.Base * ref.ComboMul))
	ref.FeverValue = int64(math.Floor(ref.Base * ref.ComboMul * ref.FeverMul))
	ref.Ramp = BuildRamp(ref.Base, ref.ComboMul)

	ref.NonFeverNotes = nonFeverNotes(song.TotalNotes, song.LongNotes, ref.FeverFillRate)
	ref.FeverWindow = feverWindow(song.LastNoteTime, ref.FeverTimeFactor)
	return ref
}

// nonFeverNotes is never below 1, a zero budget would never leave fever.
func nonFeverNotes(total, long int, fillRate float64) int {
	fill := math.Ceil(float64(total-long) * 0.333)
	n := int(math.Ceil(fill * fillRate))
	if n < 1 {
		return 1
	}
	return n
}

// feverWindow is quantized up to whole frames at 60 fps.
func feverWindow(lastNoteTime, factor float64) float64 {
	last := round3(lastNoteTime)
	return math.Ceil((last*0.15+0.15)*factor*60) / 60
}

// round3 rounds the exact binary value to 3 decimals, so 1.1115, stored just
// below the halfway point, becomes 1.111.
func round3(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 3, 64), 64)
	if nil != err {
		return v
	}
	return r
}

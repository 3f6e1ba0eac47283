package testdata

import (
	"strconv"
	"strings"

	"git.lost.host/meutraa/fever/internal/game"
)

// Column is the value the generated stat sheet holds for a stat at a
// clamped stat value v.
func Column(stat game.Stat, v int) float64 {
	x := float64(v)
	switch stat {
	case game.PerfectPoints:
		return 100 + 2*x
	case game.ComboMultiplier:
		return 1 + x/100
	case game.FeverMultiplier:
		return 1 + x/50
	case game.FeverFillRate:
		return 0.5 + x/200
	case game.FeverTime:
		return 1 + x/100
	}
	return 0
}

// StatSheet renders a sheet of rows+1 buckets, highest stat value first.
func StatSheet(rows int) string {
	var b strings.Builder
	for s := game.Stat(0); s < game.StatCount; s++ {
		if s > 0 {
			b.WriteString("\t")
		}
		b.WriteString(strings.ReplaceAll(s.String(), " ", ""))
	}
	b.WriteString("\n")
	for v := rows; v >= 0; v-- {
		for s := game.Stat(0); s < game.StatCount; s++ {
			if s > 0 {
				b.WriteString("\t")
			}
			b.WriteString(strconv.FormatFloat(Column(s, v), 'g', -1, 64))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Song builds a song of n notes spaced step seconds apart.
func Song(n int, step float64) *game.Song {
	notes := make([]game.Note, n)
	for i := range notes {
		notes[i] = game.Note{Time: float64(i) * step, Value: 1, Lane: i % 4}
	}
	last := 0.0
	if n > 0 {
		last = notes[n-1].Time
	}
	return &game.Song{
		Name:           "Generated",
		Difficulty:     game.Hard,
		PrimaryColor:   game.ColorChill,
		SecondaryColor: game.ColorFlow,
		TotalNotes:     n,
		LastNoteTime:   last,
		Notes:          notes,
	}
}

const SongFile = "\ufeffSong Name\tNeon Tide\n" +
	"Difficulty\tHard\n" +
	"Primary Color\tRush\n" +
	"Secondary Color\tvibe\n" +
	"Last Note Time\t2.5\n" +
	"Total Notes\t6\n" +
	"Fever Fill\t\n" +
	"Fever Time\t7.5\n" +
	"Long Notes\t1\n" +
	"Song Data\n" +
	"Time\tNote\tLane\tType\n" +
	".25\t1\t0\t0\n" +
	"0.5\t1\t1\t0\n" +
	"\n" +
	"1.0\t1\t0\t0\n" +
	"1.25\t2\t2\t1\n" +
	"1.5\t1\t3\t0\n" +
	"2.5\t1\t1\t0\n"

const GearSheet = "Gear Name\tPerfect Points\tCombo Multiplier\tFever Multiplier\tFever Fill Rate\tFever Time\tChill\tFlow\tRush\tBeat\tVibe\n" +
	"Cap\t1\t2\t3\t4\t5\t6\t7\t8\t9\t10\n" +
	"Scarf\t10\t0\t0\t0\t0\t0\t0\t0\t0\t0\n" +
	"Shades\t0\t5\t\t0\t0\t0\t0\t0\t0\t0\n" +
	"Tee\t0\t0\t5\tx\t0\t0\t0\t0\t0\t3\n" +
	"\t9\t9\t9\t9\t9\t9\t9\t9\t9\t9\n" +
	"Charm\t1\t1\t1\t1\t1\t2\t2\t2\t2\t2\n"

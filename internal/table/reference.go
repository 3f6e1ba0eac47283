package table

import (
	"log"

	"git.lost.host/meutraa/fever/internal/game"
)

// References caches Lookup over the whole clamped domain of each key stat,
// so scoring never touches the table again.
type References struct {
	rows   int
	values map[game.Stat][]float64
}

// BuildReferences logs one warning per stat that had missing entries.
// A nil logger uses the standard logger.
func BuildReferences(t *Table, logger *log.Logger) *References {
	if nil == logger {
		logger = log.Default()
	}
	refs := &References{
		rows:   t.Rows,
		values: make(map[game.Stat][]float64, len(game.KeyStats)),
	}
	for _, stat := range game.KeyStats {
		values := make([]float64, t.Rows+1)
		missing := 0
		for v := 0; v <= t.Rows; v++ {
			value, err := t.Lookup(stat, float64(v))
			if nil != err {
				missing++
			}
			values[v] = value
		}
		if missing > 0 {
			logger.Printf("stat table is missing %v of %v entries for %v, using 0", missing, t.Rows+1, stat)
		}
		refs.values[stat] = values
	}
	return refs
}

// Rows is the highest clamped stat value.
func (r *References) Rows() int {
	return r.rows
}

// Get returns the multiplier for a raw value of a key stat.
// Stats that are not key stats resolve to 0.
func (r *References) Get(stat game.Stat, value float64) float64 {
	values, ok := r.values[stat]
	if !ok {
		return 0
	}
	return values[clamp(value, r.rows)]
}

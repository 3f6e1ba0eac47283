package table

import (
	"github.com/pkg/errors"

	"git.lost.host/meutraa/fever/internal/game"
)

// DefaultRows is the index of the lowest stat bucket in the stat sheet.
const DefaultRows = 160

var ErrMissingEntry = errors.New("missing stat table entry")

// Table holds stat bucket rows in descending stat order, so row 0 is the
// highest bucket and row Rows the lowest.
type Table struct {
	Rows int
	data [][]float64
}

func New(rows int, data [][]float64) *Table {
	return &Table{Rows: rows, data: data}
}

// Len is the number of loaded rows.
func (t *Table) Len() int {
	return len(t.data)
}

// Row returns the loaded row i, nil when absent.
func (t *Table) Row(i int) []float64 {
	if i < 0 || i >= len(t.data) {
		return nil
	}
	return t.data[i]
}

// Clamp truncates a raw stat value and clamps it into [0, Rows].
func (t *Table) Clamp(value float64) int {
	return clamp(value, t.Rows)
}

// clamp bounds value before truncating it, so huge or infinite values never
// wrap around in the int conversion. NaN clamps to 0.
func clamp(value float64, rows int) int {
	if !(value > 0) {
		return 0
	}
	if value >= float64(rows) {
		return rows
	}
	return int(value)
}

// Lookup resolves a raw stat value against the column of stat. Larger values
// select rows nearer the top. A row or column outside the loaded data
// resolves to 0 and ErrMissingEntry, which callers may treat as a warning.
func (t *Table) Lookup(stat game.Stat, value float64) (float64, error) {
	index := t.Rows - t.Clamp(value)
	row := t.Row(index)
	if row == nil || int(stat) < 0 || int(stat) >= len(row) {
		return 0, errors.Wrapf(ErrMissingEntry, "%v row %v", stat, index)
	}
	return row[stat], nil
}

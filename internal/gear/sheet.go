package gear

import (
	"encoding/csv"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"git.lost.host/meutraa/fever/internal/game"
)

const nameColumn = "Gear Name"

// Sheet maps gear names to their stats.
type Sheet map[string]game.Stats

// ReadSheet parses a tab separated gear sheet with a "Gear Name" column and
// one column per stat display name. Cells that are not integers count as 0.
func ReadSheet(r io.Reader) (Sheet, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return Sheet{}, nil
	}
	if nil != err {
		return nil, errors.Wrap(err, "unable to read gear sheet header")
	}
	columns := map[string]int{}
	for i, h := range header {
		columns[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	nameIndex, ok := columns[nameColumn]
	if !ok {
		return nil, errors.Errorf("gear sheet has no %q column", nameColumn)
	}

	cell := func(record []string, i int) string {
		if i < 0 || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	sheet := Sheet{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if nil != err {
			return nil, errors.Wrap(err, "unable to read gear sheet")
		}
		name := cell(record, nameIndex)
		if name == "" {
			continue
		}
		var stats game.Stats
		for s := game.Stat(0); s < game.StatCount; s++ {
			i, ok := columns[s.String()]
			if !ok {
				continue
			}
			v, err := strconv.Atoi(cell(record, i))
			if nil != err {
				continue
			}
			stats[s] = float64(v)
		}
		sheet[name] = stats
	}
	return sheet, nil
}

func ReadSheetFile(path string) (Sheet, error) {
	f, err := os.Open(path)
	if nil != err {
		return nil, errors.Wrapf(err, "unable to open gear sheet %s", path)
	}
	defer f.Close()
	return ReadSheet(f)
}

// Get returns the stats of a named piece of gear. An empty name is an empty
// slot; unknown names are logged and count as empty.
func (s Sheet) Get(name string, logger *log.Logger) game.Stats {
	name = strings.TrimSpace(name)
	if name == "" {
		return game.Stats{}
	}
	stats, ok := s[name]
	if !ok {
		if nil == logger {
			logger = log.Default()
		}
		logger.Printf("gear %q is not in the gear sheet, using no stats", name)
	}
	return stats
}

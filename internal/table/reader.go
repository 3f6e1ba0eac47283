package table

import (
	"bufio"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Read parses a whitespace separated stat sheet. The first line is a header.
// Rows that fail to parse are logged and skipped.
func Read(r io.Reader, rows int, logger *log.Logger) (*Table, error) {
	if nil == logger {
		logger = log.Default()
	}
	scanner := bufio.NewScanner(r)
	data := [][]float64{}
	line := 0
	for scanner.Scan() {
		line++
		if line == 1 {
			continue
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]float64, len(fields))
		var err error
		for i, f := range fields {
			row[i], err = strconv.ParseFloat(f, 64)
			if nil != err {
				break
			}
		}
		if nil != err {
			logger.Printf("skipping stat table line %v: %v", line, err)
			continue
		}
		data = append(data, row)
	}
	if err := scanner.Err(); nil != err {
		return nil, errors.Wrap(err, "unable to scan stat table")
	}
	return New(rows, data), nil
}

func ReadFile(path string, rows int, logger *log.Logger) (*Table, error) {
	f, err := os.Open(path)
	if nil != err {
		return nil, errors.Wrapf(err, "unable to open stat table %s", path)
	}
	defer f.Close()
	t, err := Read(f, rows, logger)
	if nil != err {
		return nil, errors.Wrapf(err, "unable to read stat table %s", path)
	}
	return t, nil
}

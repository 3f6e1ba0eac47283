package parser

import (
	"bytes"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"git.lost.host/meutraa/fever/internal/game"
)

var ErrMalformedNote = errors.New("malformed note line")

const dataMarker = "Song Data"

// Header keys of a song file
const (
	keyName      = "Song Name"
	keyDiff      = "Difficulty"
	keyPrimary   = "Primary Color"
	keySecondary = "Secondary Color"
	keyLastNote  = "Last Note Time"
	keyTotal     = "Total Notes"
	keyFeverFill = "Fever Fill"
	keyFeverTime = "Fever Time"
	keyLong      = "Long Notes"
)

var headerKeys = map[string]bool{
	keyName: true, keyDiff: true, keyPrimary: true, keySecondary: true,
	keyLastNote: true, keyTotal: true, keyFeverFill: true, keyFeverTime: true, keyLong: true,
}

type DefaultParser struct{}

func (p *DefaultParser) Parse(file string) (*game.Song, error) {
	data, err := ioutil.ReadFile(file)
	if nil != err {
		return nil, err
	}
	song, err := p.Read(bytes.NewReader(data))
	if nil != err {
		return nil, errors.Wrapf(err, "unable to parse %s", file)
	}
	song.Path = file
	return song, nil
}

// Read parses a song file. Header lines are "Key<TAB>Value" up to a line
// holding only "Song Data"; after it every line starting with a digit or a
// dot is a note of four tab separated columns: time, note, lane, type.
func (p *DefaultParser) Read(r io.Reader) (*game.Song, error) {
	data, err := ioutil.ReadAll(r)
	if nil != err {
		return nil, err
	}
	str := strings.TrimPrefix(string(data), "\ufeff")
	str = strings.ReplaceAll(str, "\r", "")
	lines := strings.Split(str, "\n")

	marker := len(lines)
	for i, l := range lines {
		if strings.TrimSpace(l) == dataMarker {
			marker = i
			break
		}
	}

	header := map[string]string{}
	for _, l := range lines[:marker] {
		parts := strings.SplitN(l, "\t", 2)
		if len(parts) != 2 || !headerKeys[parts[0]] {
			continue
		}
		header[parts[0]] = strings.TrimSpace(parts[1])
	}

	notes := []game.Note{}
	if marker < len(lines) {
		for i, l := range lines[marker+1:] {
			l = strings.TrimSpace(l)
			if !isNoteLine(l) {
				continue
			}
			note, err := p.parseNote(l)
			if nil != err {
				return nil, errors.Wrapf(err, "line %v", marker+i+2)
			}
			notes = append(notes, note)
		}
	}

	song := &game.Song{
		Name:       header[keyName],
		Difficulty: game.ParseDifficulty(header[keyDiff]),
		TotalNotes: toInt(header[keyTotal], len(notes)),
		LongNotes:  toInt(header[keyLong], 0),
		FeverFill:  toFloat(header[keyFeverFill], 0),
		FeverTime:  toFloat(header[keyFeverTime], 0),
		Notes:      notes,
	}
	song.PrimaryColor, _ = game.ParseColor(header[keyPrimary])
	song.SecondaryColor, _ = game.ParseColor(header[keySecondary])

	last := 0.0
	if n, ok := song.Last(); ok {
		last = n.Time
	}
	song.LastNoteTime = toFloat(header[keyLastNote], last)

	return song, nil
}

func isNoteLine(l string) bool {
	if l == "" {
		return false
	}
	c := l[0]
	return c == '.' || (c >= '0' && c <= '9')
}

func (p *DefaultParser) parseNote(l string) (game.Note, error) {
	fields := strings.Split(l, "\t")
	if len(fields) != 4 {
		return game.Note{}, errors.Wrapf(ErrMalformedNote, "%v columns in %q", len(fields), l)
	}
	values := [4]float64{}
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if nil != err {
			return game.Note{}, errors.Wrapf(ErrMalformedNote, "column %v of %q", i, l)
		}
		values[i] = v
	}
	return game.Note{
		Time:  values[0],
		Value: int(values[1]),
		Lane:  int(values[2]),
		Type:  int(values[3]),
	}, nil
}

// toInt coerces a header value, falling back to def when it is absent or
// not a number.
func toInt(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); nil == err {
		return v
	}
	if v, err := strconv.ParseFloat(s, 64); nil == err {
		return int(v)
	}
	return def
}

func toFloat(s string, def float64) float64 {
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if nil != err {
		return def
	}
	return v
}

// Find expands the given files and directories into song files. Directories
// are walked for .txt files, results are sorted and unique.
func Find(paths []string) ([]string, error) {
	seen := map[string]bool{}
	files := []string{}
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			files = append(files, p)
		}
	}
	for _, root := range paths {
		info, err := os.Stat(root)
		if nil != err {
			return nil, errors.Wrap(err, "unable to find songs")
		}
		if !info.IsDir() {
			add(root)
			continue
		}
		if err := filepath.Walk(root, func(p string, info os.FileInfo, err error) error {
			if nil != err {
				return err
			}
			if !info.IsDir() && strings.EqualFold(filepath.Ext(info.Name()), ".txt") {
				add(p)
			}
			return nil
		}); nil != err {
			return nil, errors.Wrapf(err, "unable to walk song directory %s", root)
		}
	}
	sort.Strings(files)
	return files, nil
}

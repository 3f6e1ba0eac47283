package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"git.lost.host/meutraa/fever/internal/batch"
	"git.lost.host/meutraa/fever/internal/game"
	"git.lost.host/meutraa/fever/internal/history"
	"git.lost.host/meutraa/fever/internal/score"
	"git.lost.host/meutraa/fever/internal/theme"
)

const (
	defaultWidth = 80
	minBarWidth  = 10
	// Columns used by everything on a block line but the bar
	blockColumns = 40
)

type DefaultRenderer struct {
	Out   io.Writer
	Theme theme.Theme
	Width int

	buffer strings.Builder
}

// Terminal reports the width of f and whether it is a terminal at all.
func Terminal(f *os.File) (int, bool) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return defaultWidth, false
	}
	width, _, err := term.GetSize(fd)
	if nil != err || width <= 0 {
		return defaultWidth, true
	}
	return width, true
}

func (r *DefaultRenderer) barWidth() int {
	w := r.Width - blockColumns
	if w < minBarWidth {
		return minBarWidth
	}
	return w
}

func (r *DefaultRenderer) line(format string, args ...interface{}) {
	fmt.Fprintf(&r.buffer, format, args...)
	r.buffer.WriteString("\n")
}

func songTitle(song *game.Song) string {
	title := song.Name
	if title == "" {
		title = song.Path
	}
	if song.Difficulty != "" {
		title += " [" + string(song.Difficulty) + "]"
	}
	return title
}

func (r *DefaultRenderer) Song(song *game.Song, res *score.Result, best *history.Run) {
	colors := song.PrimaryColor.String()
	if song.SecondaryColor != game.NoColor {
		colors += "/" + song.SecondaryColor.String()
	}
	r.line("%v  %v  %v notes", r.Theme.RenderTitle(songTitle(song)), colors, song.TotalNotes)

	blocks := res.Blocks()
	var max int64
	for _, b := range blocks {
		if b.Score > max {
			max = b.Score
		}
	}
	width := r.barWidth()
	for _, b := range blocks {
		w := 0
		if max > 0 && b.Score > 0 {
			w = int(int64(width) * b.Score / max)
			if w == 0 {
				w = 1
			}
		}
		r.line("  %v %6v notes %12v  %v", r.Theme.RenderMode(b.Mode), b.Notes, b.Score, r.Theme.RenderBar(b.Mode, w))
	}

	total := fmt.Sprintf("  %-8v %19v", "Total", res.Total)
	if nil != best {
		total += fmt.Sprintf("  (best %v)", best.Total)
	}
	r.line("%v", r.Theme.RenderTitle(total))
	r.line("")
}

func (r *DefaultRenderer) Failure(name string, err error) {
	r.line("%v", r.Theme.RenderError(fmt.Sprintf("%v: %v", name, err)))
}

func (r *DefaultRenderer) Summary(s *batch.Summary) {
	r.line("%v", r.Theme.RenderTitle(fmt.Sprintf("%v songs, %v failed", s.Songs, s.Failed)))
	for i, o := range s.Ranked {
		r.line("%4v. %12v  %v", i+1, o.Result.Total, songTitle(o.Song))
	}
	if len(s.Ranked) > 0 {
		r.line("  mean %.0f  stddev %.0f  min %.0f  max %.0f", s.Mean, s.StdDev, s.Min, s.Max)
	}
}

func (r *DefaultRenderer) Flush() error {
	_, err := io.WriteString(r.Out, r.buffer.String())
	r.buffer.Reset()
	return err
}

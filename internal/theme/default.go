package theme

import (
	"fmt"
	"image/color"
	"strings"

	"git.lost.host/meutraa/fever/internal/game"
)

type DefaultTheme struct {
	Plain bool // No escape sequences
}

func (t *DefaultTheme) paint(c color.RGBA, message string) string {
	if t.Plain {
		return message
	}
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", c.R, c.G, c.B, message)
}

func (t *DefaultTheme) RenderMode(mode game.Mode) string {
	return t.paint(modeColors[mode], fmt.Sprintf("%-8v", mode))
}

func (t *DefaultTheme) RenderBar(mode game.Mode, width int) string {
	if width <= 0 {
		return ""
	}
	sym := barSyms[mode]
	if t.Plain {
		sym = plainBarSyms[mode]
	}
	return t.paint(modeColors[mode], strings.Repeat(sym, width))
}

func (t *DefaultTheme) RenderTitle(title string) string {
	if t.Plain {
		return title
	}
	return "\033[1m" + title + "\033[0m"
}

func (t *DefaultTheme) RenderError(message string) string {
	return t.paint(errorColor, message)
}

var (
	barSyms      = map[game.Mode]string{game.NonFever: "▪", game.Fever: "█"}
	plainBarSyms = map[game.Mode]string{game.NonFever: "-", game.Fever: "#"}
	modeColors   = map[game.Mode]color.RGBA{
		game.NonFever: {0, 118, 236, 255}, // blue
		game.Fever:    {236, 128, 0, 255}, // orange
	}
	errorColor = color.RGBA{236, 30, 0, 255}
)

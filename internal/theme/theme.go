package theme

import "git.lost.host/meutraa/fever/internal/game"

type Theme interface {
	RenderMode(mode game.Mode) string
	RenderBar(mode game.Mode, width int) string
	RenderTitle(title string) string
	RenderError(message string) string
}

package game

import "strings"

// Color is a song color affinity.
type Color uint8

const (
	NoColor Color = iota
	ColorChill
	ColorFlow
	ColorRush
	ColorBeat
	ColorVibe
)

var colorNames = map[Color]string{
	NoColor:    "",
	ColorChill: "Chill",
	ColorFlow:  "Flow",
	ColorRush:  "Rush",
	ColorBeat:  "Beat",
	ColorVibe:  "Vibe",
}

// ParseColor is case insensitive; anything unrecognised is NoColor with ok false.
func ParseColor(name string) (Color, bool) {
	name = strings.TrimSpace(name)
	for c, n := range colorNames {
		if c != NoColor && strings.EqualFold(n, name) {
			return c, true
		}
	}
	return NoColor, false
}

func (c Color) String() string {
	return colorNames[c]
}

// Stat maps a color to the stat holding its points.
func (c Color) Stat() (Stat, bool) {
	switch c {
	case ColorChill:
		return Chill, true
	case ColorFlow:
		return Flow, true
	case ColorRush:
		return Rush, true
	case ColorBeat:
		return Beat, true
	case ColorVibe:
		return Vibe, true
	}
	return 0, false
}

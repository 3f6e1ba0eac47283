package game

import "strings"

type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Normal Difficulty = "Normal"
	Hard   Difficulty = "Hard"
)

var Difficulties = map[string]Difficulty{
	"easy":   Easy,
	"normal": Normal,
	"hard":   Hard,
}

// ParseDifficulty falls back to the raw value for unknown names,
// song files are free to invent their own.
func ParseDifficulty(name string) Difficulty {
	name = strings.TrimSpace(name)
	if d, ok := Difficulties[strings.ToLower(name)]; ok {
		return d
	}
	return Difficulty(name)
}

package gear

import (
	"log"

	"git.lost.host/meutraa/fever/internal/game"
)

// Slots are the full stat equipment slots.
var Slots = [...]string{"hat", "neck", "face", "shirt", "back", "pants"}

const MiniCount = 3

// Minis grant their key stats four times and their colour stats five times.
const (
	miniKeyFactor   = 4
	miniColorFactor = 5
)

// TierBonus is the stat reward of a player tier.
type TierBonus struct {
	PerfectPoints float64
	ColorPoints   float64
}

var Tiers = map[string]TierBonus{
	"None": {0, 0},
	"T1":   {25, 35},
	"T5":   {25, 30},
	"T10":  {20, 25},
	"T15":  {15, 20},
}

type Loadout struct {
	Gear  map[string]string // slot -> gear name
	Minis [MiniCount]string
	Tier  string
	Color game.Color

	// Override replaces the aggregated stats entirely when set
	Override *game.Stats
}

// Mini scales the stats of a mini.
func Mini(stats game.Stats) game.Stats {
	for i := range stats {
		if i < len(game.KeyStats) {
			stats[i] *= miniKeyFactor
		} else {
			stats[i] *= miniColorFactor
		}
	}
	return stats
}

// TierStats is the stat vector granted by a tier for the chosen colour.
// Unknown tiers grant nothing.
func TierStats(tier string, color game.Color) game.Stats {
	var stats game.Stats
	bonus := Tiers[tier]
	stats[game.PerfectPoints] = bonus.PerfectPoints
	if s, ok := color.Stat(); ok {
		stats[s] = bonus.ColorPoints
	}
	return stats
}

// Aggregate sums the equipped gear, the minis and the tier bonus.
func Aggregate(sheet Sheet, l *Loadout, logger *log.Logger) game.Stats {
	if nil != l.Override {
		return *l.Override
	}
	var sum game.Stats
	for _, slot := range Slots {
		sum = sum.Add(sheet.Get(l.Gear[slot], logger))
	}
	for _, name := range l.Minis {
		sum = sum.Add(Mini(sheet.Get(name, logger)))
	}
	if _, ok := Tiers[l.Tier]; !ok && l.Tier != "" {
		if nil == logger {
			logger = log.Default()
		}
		logger.Printf("unknown tier %q, using no tier bonus", l.Tier)
	}
	return sum.Add(TierStats(l.Tier, l.Color))
}

package game

// Stat is one of the ten aggregated player stats.
type Stat int

const (
	PerfectPoints Stat = iota
	ComboMultiplier
	FeverMultiplier
	FeverFillRate
	FeverTime
	Chill
	Flow
	Rush
	Beat
	Vibe

	StatCount = 10
)

// KeyStats are the stats that resolve through the stat table.
var KeyStats = [...]Stat{PerfectPoints, ComboMultiplier, FeverMultiplier, FeverFillRate, FeverTime}

var statNames = [StatCount]string{
	"Perfect Points",
	"Combo Multiplier",
	"Fever Multiplier",
	"Fever Fill Rate",
	"Fever Time",
	"Chill",
	"Flow",
	"Rush",
	"Beat",
	"Vibe",
}

// String returns the display name used by gear sheets and song files.
func (s Stat) String() string {
	if s < 0 || int(s) >= StatCount {
		return "Unknown"
	}
	return statNames[s]
}

// Stats is an aggregated stat vector, indexed by Stat.
type Stats [StatCount]float64

func (s Stats) Get(stat Stat) float64 {
	return s[stat]
}

// Add returns the element-wise sum of both vectors.
func (s Stats) Add(o Stats) Stats {
	for i := range s {
		s[i] += o[i]
	}
	return s
}

// ColorValue is the stat for the given song color, zero for NoColor.
func (s Stats) ColorValue(c Color) float64 {
	stat, ok := c.Stat()
	if !ok {
		return 0
	}
	return s[stat]
}

package config

import (
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/ini.v1"

	"git.lost.host/meutraa/fever/internal/game"
	"git.lost.host/meutraa/fever/internal/gear"
)

// overrideKeys are the [InputValues] keys in stat order.
var overrideKeys = [game.StatCount]string{
	"perfect_points",
	"combo_multiplier",
	"fever_multiplier",
	"fever_fill",
	"fever_time",
	"chill",
	"flow",
	"rush",
	"beat",
	"vibe",
}

// Loadout is the contents of a loadout file.
type Loadout struct {
	SongFile string
	Filter   game.Filter
	Gear     gear.Loadout
}

// LoadLoadout reads a loadout file, a missing file yields the defaults.
func LoadLoadout(path string) (*Loadout, error) {
	cfg, err := ini.LooseLoad(path)
	if nil != err {
		return nil, errors.Wrapf(err, "unable to read loadout %s", path)
	}
	return loadout(cfg), nil
}

func ReadLoadout(data []byte) (*Loadout, error) {
	cfg, err := ini.Load(data)
	if nil != err {
		return nil, errors.Wrap(err, "unable to read loadout")
	}
	return loadout(cfg), nil
}

func loadout(cfg *ini.File) *Loadout {
	general := cfg.Section("General")
	l := &Loadout{
		SongFile: general.Key("song_file").String(),
		Filter: game.Filter{
			Primary:    general.Key("filter_primary_color").MustString(game.AnyColor),
			Secondary:  general.Key("filter_secondary_color").MustString(game.AnyColor),
			Search:     general.Key("filter_search_text").String(),
			Difficulty: general.Key("difficulty").MustString(string(game.Hard)),
		},
	}

	section := cfg.Section("Gear")
	l.Gear.Gear = map[string]string{}
	for _, slot := range gear.Slots {
		l.Gear.Gear[slot] = section.Key(slot).String()
	}
	for i := range l.Gear.Minis {
		l.Gear.Minis[i] = section.Key("mini" + strconv.Itoa(i+1)).String()
	}
	l.Gear.Tier = section.Key("tier").MustString("None")
	l.Gear.Color, _ = game.ParseColor(section.Key("color").MustString(game.ColorChill.String()))

	values := cfg.Section("InputValues")
	if values.Key("ignore_selected_gear_stats").MustBool(false) {
		var stats game.Stats
		for i, key := range overrideKeys {
			stats[i] = float64(values.Key(key).MustInt(0))
		}
		l.Gear.Override = &stats
	}
	return l
}

// Apply overrides the loadout filter with any filter flags given.
func (l *Loadout) Apply() {
	if *Difficulty != "" {
		l.Filter.Difficulty = *Difficulty
	}
	if *Primary != "" {
		l.Filter.Primary = *Primary
	}
	if *Secondary != "" {
		l.Filter.Secondary = *Secondary
	}
	if *Search != "" {
		l.Filter.Search = *Search
	}
}

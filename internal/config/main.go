package config

import (
	"runtime"
	"strconv"

	"gopkg.in/alecthomas/kingpin.v2"

	"git.lost.host/meutraa/fever/internal/table"
)

const Version = "0.3.0"

var (
	app = kingpin.New("fever", "Estimate the score of a song for a gear loadout.")

	Songs       = app.Arg("songs", "Song files or directories of songs").Strings()
	Stats       = app.Flag("stats", "Stat table").Default("Stats.txt").Short('s').String()
	Gear        = app.Flag("gear", "Gear sheet").Default("Gear.csv").Short('g').String()
	LoadoutFile = app.Flag("loadout", "Loadout file").Default("config.ini").Short('l').String()
	Rows        = app.Flag("rows", "Index of the lowest stat table bucket").Default(strconv.Itoa(table.DefaultRows)).Uint()
	History     = app.Flag("history", "Score history database").Default("./scores.db").String()
	NoSave      = app.Flag("no-save", "Do not record results in the history").Bool()
	Jobs        = app.Flag("jobs", "Songs to calculate at once").Default(strconv.Itoa(runtime.NumCPU())).Short('j').Int()
	Pick        = app.Flag("pick", "Choose a single song from the matches").Short('p').Bool()
	NoColor     = app.Flag("no-color", "Disable colored output").Bool()
	Difficulty  = app.Flag("difficulty", "Only songs of this difficulty").Short('d').String()
	Primary     = app.Flag("primary", "Only songs with this primary color").String()
	Secondary   = app.Flag("secondary", "Only songs with this secondary color").String()
	Search      = app.Flag("search", "Only songs whose name contains this").String()
)

func init() {
	app.Version(Version)
	app.HelpFlag.Short('h')
}

// Parse reads the command line, args excludes the program name.
func Parse(args []string) error {
	_, err := app.Parse(args)
	return err
}

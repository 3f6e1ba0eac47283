package main

import (
	"log"
	"os"

	"github.com/pkg/errors"

	"git.lost.host/meutraa/fever/internal/config"
	"git.lost.host/meutraa/fever/internal/render"
	"git.lost.host/meutraa/fever/internal/theme"
)

func main() {
	if err := run(); nil != err {
		log.Fatalln(err)
	}
}

func run() error {
	if err := config.Parse(os.Args[1:]); nil != err {
		return err
	}

	width, tty := render.Terminal(os.Stdout)
	p := &Program{
		Renderer: &render.DefaultRenderer{
			Out:   os.Stdout,
			Theme: &theme.DefaultTheme{Plain: *config.NoColor || !tty},
			Width: width,
		},
		Prompt: os.Stdout,
	}

	options := Options{
		Stats:   *config.Stats,
		Gear:    *config.Gear,
		Loadout: *config.LoadoutFile,
		Rows:    int(*config.Rows),
		History: *config.History,
		Save:    !*config.NoSave,
		Jobs:    *config.Jobs,
		Pick:    *config.Pick,
	}
	if err := p.Init(options); nil != err {
		return err
	}
	defer p.Close()

	songs, err := p.Load(*config.Songs)
	if nil != err {
		return err
	}
	summary, err := p.Run(songs)
	if nil != err {
		return err
	}
	if summary.Failed == summary.Songs {
		return errors.New("no song could be calculated")
	}
	return nil
}

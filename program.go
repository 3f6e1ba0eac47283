package main

import (
	"io"
	"log"

	"github.com/pkg/errors"

	"git.lost.host/meutraa/fever/internal/batch"
	"git.lost.host/meutraa/fever/internal/config"
	"git.lost.host/meutraa/fever/internal/game"
	"git.lost.host/meutraa/fever/internal/gear"
	"git.lost.host/meutraa/fever/internal/history"
	"git.lost.host/meutraa/fever/internal/input"
	"git.lost.host/meutraa/fever/internal/parser"
	"git.lost.host/meutraa/fever/internal/render"
	"git.lost.host/meutraa/fever/internal/score"
	"git.lost.host/meutraa/fever/internal/table"
)

type Options struct {
	Stats, Gear, Loadout string
	Rows                 int
	History              string // Empty disables the history
	Save                 bool
	Jobs                 int
	Pick                 bool
}

type Program struct {
	Parser   parser.Parser
	Scorer   score.Scorer
	Renderer render.Renderer
	History  *history.Store
	Logger   *log.Logger

	// Where --pick lists its choices
	Prompt io.Writer
	pick   func(out io.Writer, choices []string) (int, error)

	options Options
	loadout *config.Loadout
	stats   game.Stats
}

func (p *Program) Init(options Options) error {
	p.options = options
	if nil == p.Logger {
		p.Logger = log.Default()
	}
	if nil == p.Parser {
		p.Parser = &parser.DefaultParser{}
	}
	if nil == p.pick {
		p.pick = input.Pick
	}

	var err error
	p.loadout, err = config.LoadLoadout(options.Loadout)
	if nil != err {
		return err
	}
	p.loadout.Apply()

	tbl, err := table.ReadFile(options.Stats, options.Rows, p.Logger)
	if nil != err {
		return err
	}
	if tbl.Len() == 0 {
		return errors.Errorf("stat table %s has no rows", options.Stats)
	}
	p.Scorer = score.NewDefaultScorer(tbl, p.Logger)

	sheet := gear.Sheet{}
	if nil == p.loadout.Gear.Override {
		sheet, err = gear.ReadSheetFile(options.Gear)
		if nil != err {
			return err
		}
	}
	p.stats = gear.Aggregate(sheet, &p.loadout.Gear, p.Logger)

	if options.History != "" {
		p.History, err = history.Open(options.History)
		if nil != err {
			// Scores are still worth calculating without a history
			p.Logger.Println(err)
		}
	}
	return nil
}

func (p *Program) Close() {
	if nil != p.History {
		if err := p.History.Close(); nil != err {
			p.Logger.Println("unable to close history", err)
		}
	}
}

// Load parses every song found in paths and keeps the ones matching the
// loadout filter. With no paths the loadout song file is used.
func (p *Program) Load(paths []string) ([]*game.Song, error) {
	if len(paths) == 0 && p.loadout.SongFile != "" {
		paths = []string{p.loadout.SongFile}
	}
	if len(paths) == 0 {
		return nil, errors.New("no songs given")
	}
	files, err := parser.Find(paths)
	if nil != err {
		return nil, err
	}

	// A single named song is never filtered out
	filter := len(files) > 1
	songs := []*game.Song{}
	parsed := 0
	for _, f := range files {
		song, err := p.Parser.Parse(f)
		if nil != err {
			p.Renderer.Failure(f, err)
			continue
		}
		parsed++
		if filter && !p.loadout.Filter.Match(song) {
			continue
		}
		songs = append(songs, song)
	}
	if parsed == 0 {
		return nil, errors.New("no song could be parsed")
	}
	if len(songs) == 0 {
		return nil, errors.New("no songs match the filter")
	}

	if p.options.Pick && len(songs) > 1 {
		if err := p.Renderer.Flush(); nil != err {
			return nil, err
		}
		names := make([]string, len(songs))
		for i, s := range songs {
			names[i] = s.Name + " [" + string(s.Difficulty) + "]"
		}
		index, err := p.pick(p.Prompt, names)
		if nil != err {
			return nil, err
		}
		songs = songs[index : index+1]
	}
	return songs, nil
}

func (p *Program) Run(songs []*game.Song) (*batch.Summary, error) {
	outcomes := batch.Run(p.Scorer, songs, p.stats, p.options.Jobs)
	for _, o := range outcomes {
		if nil != o.Err {
			p.Renderer.Failure(o.Song.Path, o.Err)
			continue
		}

		var best *history.Run
		if nil != p.History {
			var err error
			best, err = p.History.Best(o.Song)
			if nil != err {
				p.Logger.Println(err)
			}
			if p.options.Save {
				if _, err := p.History.Save(o.Song, o.Result); nil != err {
					p.Logger.Println(err)
				}
			}
		}
		p.Renderer.Song(o.Song, o.Result, best)
	}

	summary := batch.Summarize(outcomes)
	if len(outcomes) > 1 {
		p.Renderer.Summary(summary)
	}
	return summary, p.Renderer.Flush()
}

package batch

import (
	"io/ioutil"
	"log"
	"math"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"git.lost.host/meutraa/fever/internal/game"
	"git.lost.host/meutraa/fever/internal/score"
	"git.lost.host/meutraa/fever/internal/table"
	"git.lost.host/meutraa/fever/internal/testdata"
)

func newScorer(t *testing.T) *score.DefaultScorer {
	quiet := log.New(ioutil.Discard, "", 0)
	tbl, err := table.Read(strings.NewReader(testdata.StatSheet(table.DefaultRows)), table.DefaultRows, quiet)
	if nil != err {
		t.Fatal(err)
	}
	return score.NewDefaultScorer(tbl, quiet)
}

func songs() []*game.Song {
	broken := testdata.Song(10, 1)
	broken.TotalNotes = 50
	return []*game.Song{
		testdata.Song(50, 0.5),
		broken,
		testdata.Song(400, 0.5),
		testdata.Song(120, 0.5),
		testdata.Song(0, 0.5),
	}
}

func TestRun(t *testing.T) {
	scorer := newScorer(t)
	var stats game.Stats
	for i := range stats {
		stats[i] = 70
	}
	input := songs()

	for _, workers := range []int{0, 1, 3, 16} {
		outcomes := Run(scorer, input, stats, workers)
		if len(outcomes) != len(input) {
			t.Fatalf("%v workers: got %v outcomes", workers, len(outcomes))
		}
		for i, o := range outcomes {
			if o.Song != input[i] {
				t.Errorf("%v workers: outcome %v is out of order", workers, i)
			}
			expected, err := scorer.Calculate(input[i], stats)
			if (nil == err) != (nil == o.Err) {
				t.Errorf("%v workers: outcome %v error %v, expected %v", workers, i, o.Err, err)
				continue
			}
			if nil == err && o.Result.Total != expected.Total {
				t.Errorf("%v workers: outcome %v total %v, expected %v", workers, i, o.Result.Total, expected.Total)
			}
		}
		if !errors.Is(outcomes[1].Err, score.ErrInvalidInput) {
			t.Errorf("expected the broken song to fail, got %v", outcomes[1].Err)
		}
	}
}

func TestSummarize(t *testing.T) {
	mk := func(total int64) Outcome {
		return Outcome{Song: &game.Song{}, Result: &score.Result{Total: total}}
	}
	outcomes := []Outcome{mk(10), {Err: errors.New("nope")}, mk(30), mk(20)}
	s := Summarize(outcomes)
	if s.Songs != 4 || s.Failed != 1 || len(s.Ranked) != 3 {
		t.Fatalf("unexpected summary %+v", s)
	}
	for i, total := range []int64{30, 20, 10} {
		if s.Ranked[i].Result.Total != total {
			t.Errorf("rank %v: got %v, expected %v", i, s.Ranked[i].Result.Total, total)
		}
	}
	if s.Mean != 20 || s.Min != 10 || s.Max != 30 || math.Abs(s.StdDev-10) > 1e-9 {
		t.Errorf("unexpected statistics %+v", s)
	}
}

func TestSummarizeSmall(t *testing.T) {
	s := Summarize(nil)
	if s.Songs != 0 || len(s.Ranked) != 0 {
		t.Errorf("unexpected summary %+v", s)
	}
	s = Summarize([]Outcome{{Song: &game.Song{}, Result: &score.Result{Total: 7}}})
	if s.Mean != 7 || s.StdDev != 0 || s.Min != 7 || s.Max != 7 {
		t.Errorf("unexpected statistics %+v", s)
	}
}

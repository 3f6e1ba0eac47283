package batch

import (
	"sort"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"git.lost.host/meutraa/fever/internal/game"
	"git.lost.host/meutraa/fever/internal/score"
)

// Outcome is the calculation of one song. Exactly one of Result and Err is set.
type Outcome struct {
	Song   *game.Song
	Result *score.Result
	Err    error
}

// Run calculates every song with up to workers songs at once. Outcomes keep
// the order of songs and a failing song never stops the others.
func Run(scorer score.Scorer, songs []*game.Song, stats game.Stats, workers int) []Outcome {
	if workers < 1 {
		workers = 1
	}
	outcomes := make([]Outcome, len(songs))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				r, err := scorer.Calculate(songs[i], stats)
				outcomes[i] = Outcome{Song: songs[i], Result: r, Err: err}
			}
		}()
	}
	for i := range songs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return outcomes
}

type Summary struct {
	Songs  int
	Failed int

	// Successful outcomes, highest total first
	Ranked []Outcome

	Mean, StdDev, Min, Max float64
}

func Summarize(outcomes []Outcome) *Summary {
	s := &Summary{Songs: len(outcomes)}
	for _, o := range outcomes {
		if nil != o.Err {
			s.Failed++
			continue
		}
		s.Ranked = append(s.Ranked, o)
	}
	sort.SliceStable(s.Ranked, func(i, j int) bool {
		return s.Ranked[i].Result.Total > s.Ranked[j].Result.Total
	})
	if len(s.Ranked) == 0 {
		return s
	}

	totals := make([]float64, len(s.Ranked))
	for i, o := range s.Ranked {
		totals[i] = float64(o.Result.Total)
	}
	s.Min = floats.Min(totals)
	s.Max = floats.Max(totals)
	if len(totals) == 1 {
		s.Mean = totals[0]
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(totals, nil)
	return s
}

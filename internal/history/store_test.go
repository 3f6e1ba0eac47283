package history

import (
	"io/ioutil"
	"log"
	"strings"
	"testing"

	"git.lost.host/meutraa/fever/internal/game"
	"git.lost.host/meutraa/fever/internal/score"
	"git.lost.host/meutraa/fever/internal/table"
	"git.lost.host/meutraa/fever/internal/testdata"
)

func open(t *testing.T) *Store {
	s, err := Open(":memory:")
	if nil != err {
		t.Fatal("unable to open history", err)
	}
	return s
}

func calculate(t *testing.T, song *game.Song, v float64) *score.Result {
	quiet := log.New(ioutil.Discard, "", 0)
	tbl, err := table.Read(strings.NewReader(testdata.StatSheet(table.DefaultRows)), table.DefaultRows, quiet)
	if nil != err {
		t.Fatal(err)
	}
	var stats game.Stats
	for i := range stats {
		stats[i] = v
	}
	r, err := score.NewDefaultScorer(tbl, quiet).Calculate(song, stats)
	if nil != err {
		t.Fatal(err)
	}
	return r
}

func TestSaveAndLoad(t *testing.T) {
	s := open(t)
	defer s.Close()

	song := testdata.Song(300, 0.25)
	low := calculate(t, song, 10)
	high := calculate(t, song, 120)

	first, err := s.Save(song, high)
	if nil != err {
		t.Fatal(err)
	}
	second, err := s.Save(song, low)
	if nil != err {
		t.Fatal(err)
	}
	if first == second || len(first) != 36 {
		t.Errorf("unexpected run ids %q %q", first, second)
	}

	runs, err := s.Load(song)
	if nil != err {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %v", len(runs))
	}
	if runs[0].RunID != second || runs[0].Total != low.Total {
		t.Errorf("expected the newest run first, got %+v", runs[0])
	}
	expected := low.Blocks()
	if len(runs[0].Blocks) != len(expected) {
		t.Fatalf("expected %v blocks, got %v", len(expected), len(runs[0].Blocks))
	}
	for i := range expected {
		if runs[0].Blocks[i] != expected[i] {
			t.Errorf("block %v: got %+v, expected %+v", i, runs[0].Blocks[i], expected[i])
		}
	}

	best, err := s.Best(song)
	if nil != err {
		t.Fatal(err)
	}
	if nil == best || best.RunID != first || best.Total != high.Total {
		t.Errorf("expected the high run to be best, got %+v", best)
	}
}

func TestBestWithoutRuns(t *testing.T) {
	s := open(t)
	defer s.Close()

	best, err := s.Best(testdata.Song(3, 1))
	if nil != err || nil != best {
		t.Errorf("expected no best run, got %v %v", best, err)
	}
	runs, err := s.Load(testdata.Song(3, 1))
	if nil != err || len(runs) != 0 {
		t.Errorf("expected no runs, got %v %v", runs, err)
	}
}

func TestHash(t *testing.T) {
	a := testdata.Song(10, 1)
	b := testdata.Song(10, 1)
	if Hash(a) != Hash(b) {
		t.Error("expected equal songs to hash equally")
	}
	b.Notes[9].Time = 9.5
	if Hash(a) == Hash(b) {
		t.Error("expected a changed timeline to change the hash")
	}
	b = testdata.Song(10, 1)
	b.Difficulty = game.Easy
	if Hash(a) == Hash(b) {
		t.Error("expected the difficulty to change the hash")
	}
}

func TestBlocksPayload(t *testing.T) {
	r := calculate(t, testdata.Song(40, 0.5), 60)
	payload, err := encodeBlocks(r)
	if nil != err {
		t.Fatal(err)
	}
	blocks := decodeBlocks(payload)
	expected := r.Blocks()
	if len(blocks) != len(expected) {
		t.Fatalf("got %v blocks, expected %v", len(blocks), len(expected))
	}
	if !strings.Contains(payload, `"total":`) {
		t.Errorf("expected the total in %s", payload)
	}
}

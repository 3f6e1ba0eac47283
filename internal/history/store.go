package history

import (
	"crypto/sha256"
	"database/sql"
	"encoding/base64"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	"git.lost.host/meutraa/fever/internal/game"
	"git.lost.host/meutraa/fever/internal/score"
)

// Run is one recorded calculation.
type Run struct {
	ID         int64  `db:"id"`
	RunID      string `db:"run_id"`
	Sum        string `db:"sum"`
	Song       string `db:"song"`
	Difficulty string `db:"difficulty"`
	Total      int64  `db:"total"`
	Payload    string `db:"blocks"`
	Created    int64  `db:"created"`

	Blocks []game.Block `db:"-"`
}

type Store struct {
	db *sqlx.DB
}

// Open opens or creates the history database at path.
func Open(path string) (*Store, error) {
	db, err := sqlx.Open("sqlite3", path)
	if nil != err {
		return nil, errors.Wrapf(err, "unable to open history %s", path)
	}
	// An in memory database only lives as long as its connection
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.migrate(); nil != err {
		db.Close()
		return nil, errors.Wrap(err, "unable to create history tables")
	}
	return s, nil
}

func (s *Store) migrate() error {
	initStatement := `
	create table if not exists runs
	  (
		  id integer not null primary key,
		  run_id text not null,
		  sum text not null,
		  song text not null,
		  difficulty text not null,
		  total integer not null,
		  blocks text not null,
		  created integer not null
	  );
	create index if not exists runs_sum on runs(sum);
	`
	_, err := s.db.Exec(initStatement)
	return err
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Hash identifies a song by its name, difficulty and timeline.
func Hash(song *game.Song) string {
	buf := []byte(song.Name)
	buf = append(buf, 0)
	buf = append(buf, string(song.Difficulty)...)
	for _, n := range song.Notes {
		buf = append(buf, 0)
		buf = strconv.AppendFloat(buf, n.Time, 'g', -1, 64)
	}
	sum := sha256.Sum256(buf)
	return base64.StdEncoding.EncodeToString(sum[:])
}

// Save records a result and returns its run id.
func (s *Store) Save(song *game.Song, r *score.Result) (string, error) {
	payload, err := encodeBlocks(r)
	if nil != err {
		return "", errors.Wrap(err, "unable to encode blocks")
	}
	id := uuid.New().String()
	_, err = s.db.Exec(
		"insert into runs(run_id, sum, song, difficulty, total, blocks, created) values(?, ?, ?, ?, ?, ?, ?)",
		id, Hash(song), song.Name, string(song.Difficulty), r.Total, payload, time.Now().UnixNano(),
	)
	if nil != err {
		return "", errors.Wrap(err, "unable to save run")
	}
	return id, nil
}

// Load returns every run of the song, newest first.
func (s *Store) Load(song *game.Song) ([]Run, error) {
	runs := []Run{}
	err := s.db.Select(&runs, "select * from runs where sum = ? order by created desc, id desc", Hash(song))
	if nil != err {
		return nil, errors.Wrap(err, "unable to load runs")
	}
	for i := range runs {
		runs[i].Blocks = decodeBlocks(runs[i].Payload)
	}
	return runs, nil
}

// Best returns the highest scoring run of the song, nil when there is none.
func (s *Store) Best(song *game.Song) (*Run, error) {
	var run Run
	err := s.db.Get(&run, "select * from runs where sum = ? order by total desc, created asc limit 1", Hash(song))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if nil != err {
		return nil, errors.Wrap(err, "unable to load best run")
	}
	run.Blocks = decodeBlocks(run.Payload)
	return &run, nil
}

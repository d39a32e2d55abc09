package score

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
)

type DefaultStore struct {
	Path   string
	Logger logrus.FieldLogger

	db *sql.DB
}

func (s *DefaultStore) Init() error {
	if s.Path == "" {
		s.Path = "./scores.db"
	}
	if s.Logger == nil {
		s.Logger = logrus.StandardLogger()
	}
	db, err := sql.Open("sqlite3", s.Path)
	if err != nil {
		return err
	}

	initStatement := `
	create table if not exists scores
	  (
		  song text not null,
		  difficulty text not null,
		  score integer not null,
		  combo integer not null,
		  max_combo integer not null,
		  misses integer not null,
		  total_notes_hit integer not null,
		  total_notes integer not null,
		  accuracy real not null,
		  inputs blob,
		  played_at timestamp not null,
		  primary key (song, difficulty)
	  );
	`
	if _, err = db.Exec(initStatement); nil != err {
		db.Close()
		return fmt.Errorf("score: create table: %w", err)
	}

	s.db = db
	return nil
}

func (s *DefaultStore) Deinit() {
	if nil != s.db {
		s.db.Close()
		s.db = nil
	}
}

func (s *DefaultStore) Save(r Record) (bool, error) {
	data, err := json.Marshal(compactInputs(r.Inputs))
	if nil != err {
		return false, fmt.Errorf("score: marshal inputs: %w", err)
	}
	if r.PlayedAt.IsZero() {
		r.PlayedAt = time.Now()
	}

	res, err := s.db.Exec(`
		insert into scores (song, difficulty, score, combo, max_combo, misses,
			total_notes_hit, total_notes, accuracy, inputs, played_at)
		values (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		on conflict(song, difficulty) do update set
			score           = excluded.score,
			combo           = excluded.combo,
			max_combo       = excluded.max_combo,
			misses          = excluded.misses,
			total_notes_hit = excluded.total_notes_hit,
			total_notes     = excluded.total_notes,
			accuracy        = excluded.accuracy,
			inputs          = excluded.inputs,
			played_at       = excluded.played_at
		where excluded.score > scores.score
	`, r.Song, r.Difficulty, r.Score, r.Combo, r.MaxCombo, r.Misses,
		r.TotalNotesHit, r.TotalNotes, r.Accuracy, data, r.PlayedAt.UTC())
	if nil != err {
		return false, fmt.Errorf("score: save: %w", err)
	}
	n, err := res.RowsAffected()
	if nil != err {
		return false, fmt.Errorf("score: save: %w", err)
	}

	s.Logger.WithFields(logrus.Fields{
		"song":       r.Song,
		"difficulty": r.Difficulty,
		"score":      r.Score,
		"saved":      n > 0,
	}).Info("score recorded")
	return n > 0, nil
}

const selectRecord = `select song, difficulty, score, combo, max_combo, misses,
	total_notes_hit, total_notes, accuracy, inputs, played_at from scores`

type scanner interface {
	Scan(dest ...any) error
}

func (s *DefaultStore) scan(row scanner) (Record, error) {
	var r Record
	var inputs []byte
	if err := row.Scan(&r.Song, &r.Difficulty, &r.Score, &r.Combo, &r.MaxCombo, &r.Misses,
		&r.TotalNotesHit, &r.TotalNotes, &r.Accuracy, &inputs, &r.PlayedAt); err != nil {
		return r, err
	}
	if len(inputs) > 0 {
		var ins []InputsCompact
		if err := json.Unmarshal(inputs, &ins); nil != err {
			s.Logger.WithError(err).WithField("song", r.Song).Warn("unable to unmarshal input history")
		} else {
			r.Inputs = uncompactInputs(ins)
		}
	}
	return r, nil
}

func (s *DefaultStore) Load(song, difficulty string) (Record, error) {
	row := s.db.QueryRow(selectRecord+` where song = ? and difficulty = ?`, song, difficulty)
	r, err := s.scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, ErrNoRecord
	}
	if nil != err {
		return Record{}, fmt.Errorf("score: load: %w", err)
	}
	return r, nil
}

func (s *DefaultStore) List() ([]Record, error) {
	rows, err := s.db.Query(selectRecord + ` order by song, difficulty`)
	if nil != err {
		return nil, fmt.Errorf("score: list: %w", err)
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		r, err := s.scan(rows)
		if nil != err {
			return nil, fmt.Errorf("score: list: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

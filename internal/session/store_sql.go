package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/manual-labs/quizflow/internal/quiz"
)

// SQLStore keeps sessions in the sessions table as two JSON documents, the
// snapshot written once at insert and the progress rewritten on every save.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Load(ctx context.Context, id string) (Record, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT snapshot_json, progress_json, version FROM sessions WHERE id=$1`, id)
	var (
		rec      Record
		snapJSON string
		progJSON string
	)
	if err := row.Scan(&snapJSON, &progJSON, &rec.Version); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}
	rec.ID = id
	if err := json.Unmarshal([]byte(snapJSON), &rec.Snapshot); err != nil {
		return Record{}, err
	}
	if err := json.Unmarshal([]byte(progJSON), &rec.Progress); err != nil {
		return Record{}, err
	}
	return rec, nil
}

func (s *SQLStore) Insert(ctx context.Context, rec Record) error {
	snapJSON, err := json.Marshal(rec.Snapshot)
	if err != nil {
		return err
	}
	progJSON, err := json.Marshal(rec.Progress)
	if err != nil {
		return err
	}
	now := time.Now().Unix()
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO sessions (id, snapshot_json, progress_json, version, created_at, updated_at)
		 VALUES ($1, $2, $3, 1, $4, $4)`,
		rec.ID, string(snapJSON), string(progJSON), now)
	return err
}

func (s *SQLStore) SaveProgress(ctx context.Context, id string, p quiz.Progress, version int64) error {
	progJSON, err := json.Marshal(p)
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE sessions SET progress_json=$1, version=version+1, updated_at=$2
		 WHERE id=$3 AND version=$4`,
		string(progJSON), time.Now().Unix(), id, version)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		var exists int
		if err := s.db.QueryRowContext(ctx, `SELECT 1 FROM sessions WHERE id=$1`, id).Scan(&exists); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return err
		}
		return ErrVersionConflict
	}
	return nil
}

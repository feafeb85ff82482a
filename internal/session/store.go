package session

import (
	"context"
	"errors"

	"github.com/manual-labs/quizflow/internal/catalog"
	"github.com/manual-labs/quizflow/internal/quiz"
)

var (
	ErrNotFound = errors.New("session not found")

	// ErrVersionConflict means another writer saved the session between our
	// load and save. The caller should retry from a fresh load.
	ErrVersionConflict = errors.New("session was modified concurrently")
)

// Record is one persisted session: the frozen catalog snapshot taken at
// creation, the mutable progress, and a version counter bumped on every save.
type Record struct {
	ID       string
	Snapshot catalog.Snapshot
	Progress quiz.Progress
	Version  int64
}

type Store interface {
	Load(ctx context.Context, id string) (Record, error)
	Insert(ctx context.Context, rec Record) error

	// SaveProgress persists the progress only if version still matches the
	// stored row, and bumps the version. ErrVersionConflict otherwise.
	SaveProgress(ctx context.Context, id string, p quiz.Progress, version int64) error
}

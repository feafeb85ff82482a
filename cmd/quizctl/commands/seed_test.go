package commands

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/manual-labs/quizflow/internal/catalog"
	"github.com/manual-labs/quizflow/internal/db"
)

func TestSeedFromFixture(t *testing.T) {
	ctx := context.Background()
	dsn := "file:" + filepath.Join(t.TempDir(), "seed.db")
	dbh, err := db.Open(ctx, db.DriverSQLite, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = dbh.Close() })
	st := catalog.NewSQLStore(dbh, "sqlite")

	raw, err := os.ReadFile(filepath.Join("testdata", "catalog.yaml"))
	require.NoError(t, err)
	var f seedFile
	require.NoError(t, yaml.Unmarshal(raw, &f))

	require.NoError(t, seed(ctx, st, f))

	snap, err := st.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Questions, 2)
	assert.Equal(t, catalog.StatusPublished, snap.Questions[0].Status)
	assert.Len(t, snap.Questions[0].Answers, 2)
	assert.Len(t, snap.Questions[1].Answers, 3)
	assert.Len(t, snap.Products, 2)
	assert.Len(t, snap.Transitions, 4)
	require.Len(t, snap.Restrictions, 1)
	assert.Equal(t, snap.Questions[0].Answers[0].ID, snap.Restrictions[0].AnswerID)
}

func TestSeedRejectsUnknownKeys(t *testing.T) {
	ctx := context.Background()
	dsn := "file:" + filepath.Join(t.TempDir(), "seed.db")
	dbh, err := db.Open(ctx, db.DriverSQLite, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = dbh.Close() })
	st := catalog.NewSQLStore(dbh, "sqlite")

	f := seedFile{}
	f.Transitions = append(f.Transitions, struct {
		Answer       string `yaml:"answer"`
		NextQuestion string `yaml:"next_question"`
		Product      string `yaml:"product"`
	}{Answer: "missing"})

	err = seed(ctx, st, f)
	require.ErrorContains(t, err, `unknown answer key "missing"`)
}

package commands

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/manual-labs/quizflow/internal/catalog"
	"github.com/manual-labs/quizflow/internal/db"
)

var (
	dbDriver string
	dbDSN    string

	dbh   *sql.DB
	store *catalog.SQLStore
)

func Execute() error {
	root := &cobra.Command{
		Use:          "quizctl",
		Short:        "Manage the quizflow catalog",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			dbh, err = db.Open(cmd.Context(), db.Driver(dbDriver), dbDSN)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			store = catalog.NewSQLStore(dbh, dbDriver)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if dbh != nil {
				_ = dbh.Close()
			}
		},
	}

	root.PersistentFlags().StringVar(&dbDriver, "db-driver", envOr("DB_DRIVER", "sqlite"), "database driver (sqlite|postgres)")
	root.PersistentFlags().StringVar(&dbDSN, "db-dsn", os.Getenv("DB_DSN"), "database DSN")

	root.AddCommand(seedCmd(), questionCmd(), answerCmd(), productCmd())
	return root.Execute()
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

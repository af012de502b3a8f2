package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/weekjournal/internal/server/repositories/repomanager"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	var dsn string
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending server database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dsn == "" {
				return fmt.Errorf("--dsn or JOURNAL_DATABASE_DSN required")
			}
			db, err := sql.Open("pgx", dsn)
			if err != nil {
				return fmt.Errorf("db init error: %w", err)
			}
			defer db.Close()
			return runMigrate(cmd.Context(), db, repomanager.NewPostgresRepositoryManager(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&dsn, "dsn", "d", os.Getenv("JOURNAL_DATABASE_DSN"), "PostgreSQL connection string")
	return cmd
}

type migrator interface {
	RunMigrations(context.Context, *sql.DB) error
}

func runMigrate(ctx context.Context, db *sql.DB, m migrator, out io.Writer) error {
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("database unavailable: %w", err)
	}
	if err := m.RunMigrations(ctx, db); err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}
	_, _ = fmt.Fprintln(out, "migrations applied")
	return nil
}

package client

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"

	"github.com/dmitrijs2005/weekjournal/internal/client/migrations"
	"github.com/dmitrijs2005/weekjournal/internal/dbx"
	"github.com/dmitrijs2005/weekjournal/internal/filex"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

func RunMigrations(ctx context.Context, db *sql.DB) error {
	_, err := dbx.Migrate(ctx, db, goose.DialectSQLite3, migrations.Migrations)
	return err
}

// OpenDatabase opens the local SQLite file at path, creating its parent
// directory when missing, and brings the schema up to date.
func OpenDatabase(ctx context.Context, path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := filex.EnsureDir(dir); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	// A single connection keeps writes from racing on the file lock.
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

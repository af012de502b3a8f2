// Package repomanager wires the PostgreSQL repositories and the embedded
// schema migrations together.
package repomanager

import (
	"context"
	"database/sql"
	"io/fs"

	"github.com/dmitrijs2005/weekjournal/internal/dbx"
	"github.com/dmitrijs2005/weekjournal/internal/server/migrations"
	"github.com/dmitrijs2005/weekjournal/internal/server/repositories/profiles"
	"github.com/dmitrijs2005/weekjournal/internal/server/repositories/reflections"
	"github.com/dmitrijs2005/weekjournal/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/weekjournal/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

type PostgresRepositoryManager struct {
	migrations fs.FS
	migrate    func(ctx context.Context, db *sql.DB, dialect goose.Dialect, fsys fs.FS) (int, error)
}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) RefreshTokens(db dbx.DBTX) refreshtokens.Repository {
	return refreshtokens.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Profiles(db dbx.DBTX) profiles.Repository {
	return profiles.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Reflections(db dbx.DBTX) reflections.Repository {
	return reflections.NewPostgresRepository(db)
}

// RunMigrations applies the embedded schema migrations.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	_, err := m.migrate(ctx, db, goose.DialectPostgres, m.migrations)
	return err
}

func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{
		migrations: migrations.Migrations,
		migrate:    dbx.Migrate,
	}
}

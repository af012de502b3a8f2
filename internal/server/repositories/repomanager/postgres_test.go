package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/weekjournal/internal/server/migrations"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDB(t *testing.T) *sql.DB {
	t.Helper()
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestFactories_ReturnRepos(t *testing.T) {
	db := newDB(t)
	var m RepositoryManager = NewPostgresRepositoryManager()

	assert.NotNil(t, m.Users(db))
	assert.NotNil(t, m.RefreshTokens(db))
	assert.NotNil(t, m.Profiles(db))
	assert.NotNil(t, m.Reflections(db))
}

func TestRunMigrations_UsesEmbeddedPostgresSchema(t *testing.T) {
	db := newDB(t)
	m := NewPostgresRepositoryManager()

	var called bool
	m.migrate = func(ctx context.Context, got *sql.DB, dialect goose.Dialect, fsys fs.FS) (int, error) {
		called = true
		assert.Same(t, db, got)
		assert.Equal(t, goose.DialectPostgres, dialect)
		assert.Equal(t, migrations.Migrations, fsys)
		return 3, nil
	}

	require.NoError(t, m.RunMigrations(context.Background(), db))
	assert.True(t, called)
}

func TestRunMigrations_Error(t *testing.T) {
	db := newDB(t)
	m := NewPostgresRepositoryManager()
	m.migrate = func(context.Context, *sql.DB, goose.Dialect, fs.FS) (int, error) {
		return 0, errors.New("boom")
	}

	assert.EqualError(t, m.RunMigrations(context.Background(), db), "boom")
}

func TestEmbeddedMigrations_Present(t *testing.T) {
	names, err := fs.Glob(migrations.Migrations, "*.sql")
	require.NoError(t, err)
	assert.Equal(t, []string{"00001_users.sql", "00002_profiles.sql", "00003_reflections.sql"}, names)
}

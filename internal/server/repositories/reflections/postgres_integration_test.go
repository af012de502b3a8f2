//go:build integration

package reflections

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/dmitrijs2005/weekjournal/internal/common"
	"github.com/dmitrijs2005/weekjournal/internal/dbx"
	"github.com/dmitrijs2005/weekjournal/internal/server/migrations"
	"github.com/dmitrijs2005/weekjournal/internal/server/models"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startPostgres(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "journal",
				"POSTGRES_PASSWORD": "journal",
				"POSTGRES_DB":       "journal",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Terminate(ctx) })

	host, err := c.Host(ctx)
	require.NoError(t, err)
	port, err := c.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://journal:journal@%s:%s/journal?sslmode=disable", host, port.Port())
	db, err := sql.Open("pgx", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = dbx.Migrate(ctx, db, goose.DialectPostgres, migrations.Migrations)
	require.NoError(t, err)
	return db
}

func TestPostgresRepository_Integration(t *testing.T) {
	db := startPostgres(t)
	ctx := context.Background()
	repo := NewPostgresRepository(db)

	var userID string
	require.NoError(t, db.QueryRowContext(ctx,
		`INSERT INTO users (username, salt, master_key_verifier) VALUES ('alice', '\x00', '\x00') RETURNING id`).Scan(&userID))

	week := civil.Date{Year: 2024, Month: time.January, Day: 7}

	draft, err := repo.Upsert(ctx, &models.Reflection{UserID: userID, WeekStartDate: week, EncryptedContent: "draft"})
	require.NoError(t, err)
	assert.False(t, draft.IsCompleted)
	assert.Equal(t, week, draft.WeekStartDate)

	final, err := repo.Upsert(ctx, &models.Reflection{UserID: userID, WeekStartDate: week, EncryptedContent: "final", IsCompleted: true})
	require.NoError(t, err)
	assert.Equal(t, draft.ID, final.ID)
	assert.True(t, final.IsCompleted)

	_, err = repo.Upsert(ctx, &models.Reflection{UserID: userID, WeekStartDate: week.AddDays(-7), EncryptedContent: "older"})
	require.NoError(t, err)

	list, err := repo.ListByUser(ctx, userID, true)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, week, list[0].WeekStartDate)
	assert.Equal(t, "final", list[0].EncryptedContent)

	require.NoError(t, repo.SoftDelete(ctx, userID, final.ID))
	_, err = repo.Get(ctx, userID, week)
	require.ErrorIs(t, err, common.ErrorNotFound)

	require.NoError(t, repo.Restore(ctx, userID, final.ID))
	got, err := repo.Get(ctx, userID, week)
	require.NoError(t, err)
	assert.Equal(t, "final", got.EncryptedContent)

	at := time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.MarkLocked(ctx, got.ID, at))
	require.NoError(t, repo.MarkLocked(ctx, got.ID, at.Add(time.Hour)))
	got, err = repo.Get(ctx, userID, week)
	require.NoError(t, err)
	require.NotNil(t, got.LockedAt)
	assert.True(t, got.LockedAt.Equal(at))
}

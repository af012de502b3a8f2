package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/weekjournal/internal/common"
	"github.com/dmitrijs2005/weekjournal/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	insertQuery = `(?s)^\s*INSERT\s+INTO\s+users\s*\(username,\s*salt,\s*master_key_verifier\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*RETURNING\s+id,\s*created_at\s*$`
	selectQuery = `(?s)^\s*SELECT\s+id,\s*username,\s*master_key_verifier,\s*salt,\s*created_at\s+FROM\s+users\s+WHERE\s+username\s*=\s*\$1\s*$`
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Date(2024, 1, 7, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery(insertQuery).
		WithArgs("alice", []byte("salt"), []byte("verifier")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("42", created))

	got, err := repo.Create(context.Background(), &models.User{UserName: "alice", Salt: []byte("salt"), Verifier: []byte("verifier")})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != "42" || got.UserName != "alice" || !got.CreatedAt.Equal(created) {
		t.Fatalf("unexpected user: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreate_DuplicateUsername(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQuery).
		WithArgs("alice", []byte("salt"), []byte("verifier")).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.Create(context.Background(), &models.User{UserName: "alice", Salt: []byte("salt"), Verifier: []byte("verifier")})
	if !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("want common.ErrorAlreadyExists, got %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQuery).
		WithArgs("alice", []byte("salt"), []byte("verifier")).
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.User{UserName: "alice", Salt: []byte("salt"), Verifier: []byte("verifier")})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGetUserByLogin(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(selectQuery).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "master_key_verifier", "salt", "created_at"}).
			AddRow("u-1", "alice", []byte("ver"), []byte("salt"), time.Now()))
	mock.ExpectQuery(selectQuery).WithArgs("ghost").WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(selectQuery).WithArgs("alice").WillReturnError(errors.New("db err"))

	got, err := repo.GetUserByLogin(context.Background(), "alice")
	if err != nil {
		t.Fatalf("GetUserByLogin error: %v", err)
	}
	if got.ID != "u-1" || string(got.Verifier) != "ver" || string(got.Salt) != "salt" {
		t.Fatalf("unexpected user: %+v", got)
	}

	if _, err := repo.GetUserByLogin(context.Background(), "ghost"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}

	_, err = repo.GetUserByLogin(context.Background(), "alice")
	if err == nil || errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected db error, got %v", err)
	}
}

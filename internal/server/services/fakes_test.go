package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/weekjournal/internal/common"
	"github.com/dmitrijs2005/weekjournal/internal/dbx"
	"github.com/dmitrijs2005/weekjournal/internal/server/models"
	"github.com/dmitrijs2005/weekjournal/internal/server/repositories/profiles"
	"github.com/dmitrijs2005/weekjournal/internal/server/repositories/reflections"
	"github.com/dmitrijs2005/weekjournal/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/weekjournal/internal/server/repositories/users"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

type fakeUsersRepo struct {
	createOut *models.User
	createErr error
	getOut    *models.User
	getErr    error
}

func (f *fakeUsersRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}

func (f *fakeUsersRepo) GetUserByLogin(context.Context, string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

type fakeRefreshRepo struct {
	findOut   *models.RefreshToken
	findErr   error
	delErr    error
	createErr error

	created     []*models.RefreshToken
	deleted     []string
	purgeBefore time.Time
}

func (f *fakeRefreshRepo) Create(_ context.Context, t *models.RefreshToken) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, t)
	return nil
}

func (f *fakeRefreshRepo) Find(context.Context, string) (*models.RefreshToken, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findOut, nil
}

func (f *fakeRefreshRepo) Delete(_ context.Context, token string) error {
	if f.delErr != nil {
		return f.delErr
	}
	f.deleted = append(f.deleted, token)
	return nil
}

func (f *fakeRefreshRepo) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	f.purgeBefore = now
	return 3, nil
}

type fakeProfilesRepo struct {
	rows      map[string]*models.Profile
	getErr    error
	upsertErr error
	upserts   int
}

func (f *fakeProfilesRepo) Get(_ context.Context, userID string) (*models.Profile, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	p, ok := f.rows[userID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProfilesRepo) Upsert(_ context.Context, p *models.Profile) (*models.Profile, error) {
	if f.upsertErr != nil {
		return nil, f.upsertErr
	}
	f.upserts++
	if f.rows == nil {
		f.rows = map[string]*models.Profile{}
	}
	cp := *p
	f.rows[p.UserID] = &cp
	out := cp
	return &out, nil
}

type reflectionKey struct {
	user string
	week civil.Date
}

// fakeReflectionsRepo keeps rows in memory with the same keying and soft
// delete rules as the SQL repository.
type fakeReflectionsRepo struct {
	mu     sync.Mutex
	rows   map[reflectionKey]*models.Reflection
	nextID int
	marked map[string]time.Time
	err    error
}

func newFakeReflectionsRepo() *fakeReflectionsRepo {
	return &fakeReflectionsRepo{
		rows:   map[reflectionKey]*models.Reflection{},
		marked: map[string]time.Time{},
	}
}

func (f *fakeReflectionsRepo) Upsert(_ context.Context, in *models.Reflection) (*models.Reflection, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	k := reflectionKey{in.UserID, in.WeekStartDate}
	row, ok := f.rows[k]
	if !ok {
		f.nextID++
		row = &models.Reflection{
			ID:            fmt.Sprintf("r%d", f.nextID),
			UserID:        in.UserID,
			WeekStartDate: in.WeekStartDate,
		}
		f.rows[k] = row
	}
	row.EncryptedContent = in.EncryptedContent
	row.IsCompleted = in.IsCompleted
	row.IsDeleted = false
	cp := *row
	return &cp, nil
}

func (f *fakeReflectionsRepo) Get(_ context.Context, userID string, weekStart civil.Date) (*models.Reflection, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[reflectionKey{userID, weekStart}]
	if !ok || row.IsDeleted {
		return nil, common.ErrorNotFound
	}
	cp := *row
	return &cp, nil
}

func (f *fakeReflectionsRepo) ListByUser(_ context.Context, userID string, withContent bool) ([]*models.Reflection, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Reflection
	for _, row := range f.rows {
		if row.UserID != userID || row.IsDeleted {
			continue
		}
		cp := *row
		if !withContent {
			cp.EncryptedContent = ""
		}
		out = append(out, &cp)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].WeekStartDate.After(out[j-1].WeekStartDate); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out, nil
}

func (f *fakeReflectionsRepo) setDeleted(userID, id string, deleted bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, row := range f.rows {
		if row.ID == id && row.UserID == userID {
			row.IsDeleted = deleted
			return nil
		}
	}
	return common.ErrorNotFound
}

func (f *fakeReflectionsRepo) SoftDelete(_ context.Context, userID, id string) error {
	return f.setDeleted(userID, id, true)
}

func (f *fakeReflectionsRepo) Restore(_ context.Context, userID, id string) error {
	return f.setDeleted(userID, id, false)
}

func (f *fakeReflectionsRepo) MarkLocked(_ context.Context, id string, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.marked[id]; ok {
		return nil
	}
	f.marked[id] = at
	for _, row := range f.rows {
		if row.ID == id {
			row.LockedAt = &at
		}
	}
	return nil
}

type fakeRepoManager struct {
	u  *fakeUsersRepo
	r  *fakeRefreshRepo
	p  *fakeProfilesRepo
	rf *fakeReflectionsRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error    { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository                 { return m.u }
func (m *fakeRepoManager) RefreshTokens(dbx.DBTX) refreshtokens.Repository { return m.r }
func (m *fakeRepoManager) Profiles(dbx.DBTX) profiles.Repository           { return m.p }
func (m *fakeRepoManager) Reflections(dbx.DBTX) reflections.Repository     { return m.rf }

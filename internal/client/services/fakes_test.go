package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/dmitrijs2005/weekjournal/internal/client/client"
	"github.com/dmitrijs2005/weekjournal/internal/client/models"
	"github.com/dmitrijs2005/weekjournal/internal/common"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

// Sunday 2024-01-07 15:00 UTC: the week of Jan 7 is open, Dec 31 is locked.
var testNow = time.Date(2024, time.January, 7, 15, 0, 0, 0, time.UTC)

var (
	jan7  = civil.Date{Year: 2024, Month: time.January, Day: 7}
	dec31 = civil.Date{Year: 2023, Month: time.December, Day: 31}
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := client.OpenDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func getMeta(t *testing.T, db *sql.DB, k string) []byte {
	t.Helper()
	var v []byte
	err := db.QueryRow(`SELECT value FROM metadata WHERE key=?`, k).Scan(&v)
	require.NoError(t, err)
	return v
}

func countRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM `+table).Scan(&n))
	return n
}

// fakeClient is an in-memory server. Setting unavailable makes every call
// fail the way an unreachable server does.
type fakeClient struct {
	unavailable bool
	err         error

	registerUser, registerSalt, registerVerifier []byte
	loginUser                                    string
	loginVerifier                                []byte
	salt                                         []byte
	loggedOut                                    bool
	closeErr                                     error

	profile      models.Profile
	reflections  map[civil.Date]*models.Reflection
	deleted      map[string]bool
	nextID       int
	saves        int
	uploadKey    string
	uploadURL    string
	downloadURLs map[string]string
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		profile:      models.Profile{Timezone: "UTC"},
		reflections:  map[civil.Date]*models.Reflection{},
		deleted:      map[string]bool{},
		downloadURLs: map[string]string{},
	}
}

func (f *fakeClient) fail() error {
	if f.unavailable {
		return client.ErrUnavailable
	}
	return f.err
}

func (f *fakeClient) Close() error { return f.closeErr }

func (f *fakeClient) Register(_ context.Context, username string, salt, verifier []byte) error {
	f.registerUser = []byte(username)
	f.registerSalt = append([]byte(nil), salt...)
	f.registerVerifier = append([]byte(nil), verifier...)
	return f.fail()
}

func (f *fakeClient) GetSalt(context.Context, string) ([]byte, error) {
	if err := f.fail(); err != nil {
		return nil, err
	}
	return append([]byte(nil), f.salt...), nil
}

func (f *fakeClient) Login(_ context.Context, username string, verifier []byte) error {
	f.loginUser = username
	f.loginVerifier = append([]byte(nil), verifier...)
	return f.fail()
}

func (f *fakeClient) Logout() { f.loggedOut = true }

func (f *fakeClient) Ping(context.Context) error { return f.fail() }

func (f *fakeClient) GetProfile(context.Context) (*models.Profile, error) {
	if err := f.fail(); err != nil {
		return nil, err
	}
	p := f.profile
	return &p, nil
}

func (f *fakeClient) UpdateProfile(_ context.Context, p *models.Profile) (*models.Profile, error) {
	if err := f.fail(); err != nil {
		return nil, err
	}
	f.profile = *p
	out := f.profile
	return &out, nil
}

func (f *fakeClient) SaveReflection(_ context.Context, weekStart civil.Date, content string, completed bool) (*models.Reflection, error) {
	if err := f.fail(); err != nil {
		return nil, err
	}
	f.saves++
	r, ok := f.reflections[weekStart]
	if !ok {
		f.nextID++
		r = &models.Reflection{ID: fmt.Sprintf("r%d", f.nextID), WeekStartDate: weekStart, CreatedAt: testNow}
		f.reflections[weekStart] = r
	}
	delete(f.deleted, r.ID)
	r.EncryptedContent = content
	r.IsCompleted = completed
	r.UpdatedAt = testNow
	out := *r
	return &out, nil
}

func (f *fakeClient) GetReflection(_ context.Context, weekStart civil.Date) (*models.Reflection, error) {
	if err := f.fail(); err != nil {
		return nil, err
	}
	r, ok := f.reflections[weekStart]
	if !ok || f.deleted[r.ID] {
		return nil, common.ErrorNotFound
	}
	out := *r
	return &out, nil
}

func (f *fakeClient) ListReflections(_ context.Context, withContent bool) ([]models.Reflection, error) {
	if err := f.fail(); err != nil {
		return nil, err
	}
	var out []models.Reflection
	for _, r := range f.reflections {
		if f.deleted[r.ID] {
			continue
		}
		c := *r
		if !withContent {
			c.EncryptedContent = ""
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].WeekStartDate.After(out[j].WeekStartDate) })
	return out, nil
}

func (f *fakeClient) find(id string) bool {
	for _, r := range f.reflections {
		if r.ID == id {
			return true
		}
	}
	return false
}

func (f *fakeClient) DeleteReflection(_ context.Context, id string) error {
	if err := f.fail(); err != nil {
		return err
	}
	if !f.find(id) || f.deleted[id] {
		return common.ErrorNotFound
	}
	f.deleted[id] = true
	return nil
}

func (f *fakeClient) RestoreReflection(_ context.Context, id string) error {
	if err := f.fail(); err != nil {
		return err
	}
	if !f.deleted[id] {
		return common.ErrorNotFound
	}
	delete(f.deleted, id)
	return nil
}

func (f *fakeClient) ArchiveUploadURL(context.Context) (string, string, error) {
	if err := f.fail(); err != nil {
		return "", "", err
	}
	return f.uploadKey, f.uploadURL, nil
}

func (f *fakeClient) ArchiveDownloadURL(_ context.Context, key string) (string, error) {
	if err := f.fail(); err != nil {
		return "", err
	}
	u, ok := f.downloadURLs[key]
	if !ok {
		return "", common.ErrorNotFound
	}
	return u, nil
}

var _ client.Client = (*fakeClient)(nil)

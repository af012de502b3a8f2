package cli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/dmitrijs2005/weekjournal/internal/client/models"
	"github.com/dmitrijs2005/weekjournal/internal/client/services"
	"github.com/dmitrijs2005/weekjournal/internal/common"
	"github.com/dmitrijs2005/weekjournal/internal/reflection"
)

var jan7 = civil.Date{Year: 2024, Month: time.January, Day: 7}

type fakeAuth struct {
	regUser string
	regPass []byte
	regErr  error

	onlineUser string
	onlinePass []byte
	onlineErr  error

	offlineUser string
	offlineErr  error

	username    string
	logoutCalls int
	logoutErr   error
	pingErr     error
}

func (f *fakeAuth) Register(_ context.Context, user string, pass []byte) error {
	f.regUser, f.regPass = user, append([]byte(nil), pass...)
	return f.regErr
}

func (f *fakeAuth) OnlineLogin(_ context.Context, user string, pass []byte) error {
	f.onlineUser, f.onlinePass = user, append([]byte(nil), pass...)
	return f.onlineErr
}

func (f *fakeAuth) OfflineLogin(_ context.Context, user string, _ []byte) error {
	f.offlineUser = user
	return f.offlineErr
}

func (f *fakeAuth) Logout(context.Context) error {
	f.logoutCalls++
	return f.logoutErr
}

func (f *fakeAuth) Username(context.Context) (string, error) {
	if f.username == "" {
		return "", common.ErrorNotFound
	}
	return f.username, nil
}

func (f *fakeAuth) Ping(context.Context) error  { return f.pingErr }
func (f *fakeAuth) Close(context.Context) error { return nil }

type fakeReflections struct {
	current  civil.Date
	week     *services.Week
	loadErr  error
	loadPass string

	saved    *reflection.Answers
	savePass string
	complete bool
	saveErr  error

	list    []services.WeekSummary
	listErr error

	verifyErr  error
	verifyPass string

	deleted, restored []string
	idErr             error
}

func (f *fakeReflections) CurrentWeek(context.Context) (civil.Date, error) { return f.current, nil }

func (f *fakeReflections) Load(_ context.Context, weekStart civil.Date, passphrase string) (*services.Week, error) {
	f.loadPass = passphrase
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	if f.week == nil {
		return &services.Week{Start: weekStart}, nil
	}
	return f.week, nil
}

func (f *fakeReflections) Save(_ context.Context, weekStart civil.Date, a *reflection.Answers, passphrase string, markCompleted bool) (*models.Reflection, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	f.saved, f.savePass, f.complete = a, passphrase, markCompleted
	return &models.Reflection{ID: "r1", WeekStartDate: weekStart, IsCompleted: markCompleted}, nil
}

func (f *fakeReflections) List(context.Context) ([]services.WeekSummary, error) {
	return f.list, f.listErr
}

func (f *fakeReflections) Delete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return f.idErr
}

func (f *fakeReflections) Restore(_ context.Context, id string) error {
	f.restored = append(f.restored, id)
	return f.idErr
}

func (f *fakeReflections) VerifyPassphrase(_ context.Context, passphrase string) error {
	f.verifyPass = passphrase
	return f.verifyErr
}

type fakeProfiles struct {
	profile models.Profile
	err     error
}

func (f *fakeProfiles) Get(context.Context) (*models.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	p := f.profile
	return &p, nil
}

func (f *fakeProfiles) Update(_ context.Context, p *models.Profile) (*models.Profile, error) {
	if _, err := time.LoadLocation(p.Timezone); err != nil {
		return nil, common.ErrUnknownTimezone
	}
	f.profile = *p
	out := f.profile
	return &out, nil
}

type fakeArchives struct {
	key    string
	n      int
	bundle *services.Bundle
	err    error
}

func (f *fakeArchives) Upload(context.Context) (string, int, error) { return f.key, f.n, f.err }
func (f *fakeArchives) Download(context.Context, string) (*services.Bundle, error) {
	return f.bundle, f.err
}

func newTestApp(t *testing.T) (*App, *bytes.Buffer, *fakeReflections) {
	t.Helper()
	var out bytes.Buffer
	refl := &fakeReflections{current: jan7}
	a := &App{
		authService: &fakeAuth{},
		reflections: refl,
		profiles:    &fakeProfiles{profile: models.Profile{Timezone: "UTC"}},
		archives:    &fakeArchives{},
		reader:      bufio.NewReader(strings.NewReader("")),
		out:         &out,
		loggedIn:    true,
	}
	return a, &out, refl
}

// stubInputs replaces the interactive helpers for one test. Passwords are
// handed out in order, one per prompt.
func stubInputs(t *testing.T, username string, passwords ...string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(*bufio.Reader, string, io.Writer) (string, error) { return username, nil }
	getPassword = func(string, io.Writer) ([]byte, error) {
		if len(passwords) == 0 {
			return nil, io.EOF
		}
		p := passwords[0]
		passwords = passwords[1:]
		return []byte(p), nil
	}
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

func stubAnswers(t *testing.T, confirmed bool, answers ...string) {
	t.Helper()
	origML, origConfirm := getMultiline, confirm
	getMultiline = func(_ *bufio.Reader, prompt string, w io.Writer) (string, error) {
		fmt.Fprintln(w, prompt)
		if len(answers) == 0 {
			return "", nil
		}
		a := answers[0]
		answers = answers[1:]
		return a, nil
	}
	confirm = func(*bufio.Reader, string, io.Writer) (bool, error) { return confirmed, nil }
	t.Cleanup(func() {
		getMultiline = origML
		confirm = origConfirm
	})
}

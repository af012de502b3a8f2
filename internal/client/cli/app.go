package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"cloud.google.com/go/civil"
	"github.com/dmitrijs2005/weekjournal/internal/client/client"
	"github.com/dmitrijs2005/weekjournal/internal/client/config"
	"github.com/dmitrijs2005/weekjournal/internal/client/models"
	"github.com/dmitrijs2005/weekjournal/internal/client/services"
	"github.com/dmitrijs2005/weekjournal/internal/envelope"
	"github.com/dmitrijs2005/weekjournal/internal/netx"
	"github.com/dmitrijs2005/weekjournal/internal/reflection"
	"github.com/dmitrijs2005/weekjournal/internal/week"
)

type Mode string

const (
	ModeOffline  Mode = "offline"
	ModeOnline   Mode = "online"
	ModeDisabled Mode = "disabled"
)

type reflectionService interface {
	CurrentWeek(ctx context.Context) (civil.Date, error)
	Load(ctx context.Context, weekStart civil.Date, passphrase string) (*services.Week, error)
	Save(ctx context.Context, weekStart civil.Date, answers *reflection.Answers, passphrase string, markCompleted bool) (*models.Reflection, error)
	List(ctx context.Context) ([]services.WeekSummary, error)
	Delete(ctx context.Context, id string) error
	Restore(ctx context.Context, id string) error
	VerifyPassphrase(ctx context.Context, passphrase string) error
}

type profileService interface {
	Get(ctx context.Context) (*models.Profile, error)
	Update(ctx context.Context, p *models.Profile) (*models.Profile, error)
}

type archiveService interface {
	Upload(ctx context.Context) (string, int, error)
	Download(ctx context.Context, key string) (*services.Bundle, error)
}

type App struct {
	config      *config.Config
	authService services.AuthService
	reflections reflectionService
	profiles    profileService
	archives    archiveService

	reader *bufio.Reader
	out    io.Writer

	userName   string
	loggedIn   bool
	passphrase string

	mu   sync.Mutex
	mode Mode
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	db, err := client.OpenDatabase(ctx, c.LocalDatabasePath)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	apiClient, err := client.NewJournalClient(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}

	sealer, err := newSealer(c)
	if err != nil {
		return nil, err
	}

	profiles := services.NewProfileService(apiClient, db)

	return &App{
		config:      c,
		authService: services.NewAuthService(apiClient, db),
		profiles:    profiles,
		reflections: services.NewReflectionService(apiClient, db, profiles,
			sealer, week.NewCalculator()),
		archives: services.NewArchiveService(apiClient, netx.NewUploader(30*time.Second)),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

// newSealer builds the envelope writer from the configured format and
// iteration count.
func newSealer(c *config.Config) (*envelope.Sealer, error) {
	format, err := envelope.ParseFormat(c.EnvelopeFormat)
	if err != nil {
		return nil, err
	}
	return envelope.New(envelope.WithFormat(format), envelope.WithIterations(c.EnvelopeIterations)), nil
}

func (a *App) Mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.mode != mode {
		a.mode = mode
		log.Printf("Switched to %s mode\n", mode)
	}
}

func (a *App) isLoggedIn() bool {
	return a.loggedIn
}

func (a *App) getStatus() string {
	s := ""
	if a.userName != "" {
		s = a.userName + " "
	}
	if m := a.Mode(); m != "" {
		s += string(m)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) Run(ctx context.Context) {
	defer a.authService.Close(ctx)

	if name, err := a.authService.Username(ctx); err == nil {
		a.userName = name
	}

	fmt.Fprintln(a.out, "Welcome to Week Journal (type 'help' for commands)")

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, a.reader)
}

// StartOnlineStatusWatcher pings the server every interval and flips the
// mode between online and offline until ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pctx, cancel := context.WithTimeout(ctx, 3*time.Second)
			err := a.authService.Ping(pctx)
			cancel()

			if err != nil {
				if a.Mode() == ModeOnline {
					a.setMode(ModeOffline)
				}
			} else if a.Mode() != ModeOnline {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}

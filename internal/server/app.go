// Package server assembles the journal server: it connects to PostgreSQL,
// applies migrations, and runs the gRPC API and the ops HTTP endpoints until
// a termination signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/dmitrijs2005/weekjournal/internal/logging"
	"github.com/dmitrijs2005/weekjournal/internal/server/config"
	"github.com/dmitrijs2005/weekjournal/internal/server/ops"
	"github.com/dmitrijs2005/weekjournal/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/weekjournal/internal/server/services"
	"github.com/dmitrijs2005/weekjournal/internal/week"

	gs "github.com/dmitrijs2005/weekjournal/internal/server/grpc"
)

// tokenPurgeInterval is how often expired refresh tokens are deleted.
const tokenPurgeInterval = time.Hour

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	users       *services.UserService
	profiles    *services.ProfileService
	reflections *services.ReflectionService
	archives    *services.ArchiveService
}

func NewApp(cfg *config.Config) (*App, error) {
	logger, err := logging.New(cfg.LogBackend, os.Stdout)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	calendar := week.NewCalculator()

	return &App{
		config:      cfg,
		logger:      logger,
		db:          db,
		repomanager: rm,
		users:       services.NewUserService(db, rm, cfg),
		profiles:    services.NewProfileService(db, rm),
		reflections: services.NewReflectionService(db, rm, calendar),
		archives:    services.NewArchiveService(cfg),
	}, nil
}

// waitForDB pings the database with exponential backoff until it answers or
// DBConnectTimeout elapses.
func (app *App) waitForDB(ctx context.Context) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxElapsedTime = app.config.DBConnectTimeout

	attempt := 0
	return backoff.Retry(func() error {
		attempt++
		err := app.db.PingContext(ctx)
		if err != nil {
			app.logger.Warn(ctx, "database not ready", "attempt", attempt, "error", err.Error())
		}
		return err
	}, backoff.WithContext(b, ctx))
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) purgeTokens(ctx context.Context) {
	ticker := time.NewTicker(tokenPurgeInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := app.users.PurgeExpiredTokens(ctx)
			if err != nil {
				app.logger.Error(ctx, "refresh token purge failed", "error", err.Error())
				continue
			}
			app.logger.Debug(ctx, "refresh tokens purged", "count", n)
		}
	}
}

// Run blocks until a signal arrives or one of the servers fails.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()
	defer app.db.Close()

	app.logger.Info(ctx, "Starting app...")
	app.initSignalHandler(cancelFunc)

	if err := app.waitForDB(ctx); err != nil {
		return fmt.Errorf("database unavailable: %w", err)
	}
	if err := app.repomanager.RunMigrations(ctx, app.db); err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}

	grpcServer := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger,
		app.users, app.profiles, app.reflections, app.archives, app.config.SecretKey)
	opsServer := ops.NewServer(app.config.OpsAddrHTTP, app.db, app.logger)

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)
	run := func(name string, fn func(context.Context) error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(ctx); err != nil {
				app.logger.Error(ctx, "server stopped", "server", name, "error", err.Error())
				errOnce.Do(func() { firstErr = err })
				cancelFunc()
			}
		}()
	}

	run("grpc", grpcServer.Run)
	run("ops", opsServer.Run)

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.purgeTokens(ctx)
	}()

	wg.Wait()
	app.logger.Info(context.Background(), "App stopped")
	return firstErr
}

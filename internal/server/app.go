// Package server initializes and runs the application: it resolves
// configuration, connects the storage backend, wires the services, starts
// the HTTP endpoint, and handles graceful shutdown.
package server

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/blackmessages/backend/internal/cqlx"
	"github.com/blackmessages/backend/internal/logging"
	"github.com/blackmessages/backend/internal/server/config"
	hs "github.com/blackmessages/backend/internal/server/http"
	"github.com/blackmessages/backend/internal/server/repositories/repomanager"
	"github.com/blackmessages/backend/internal/server/services"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	repos       repomanager.RepositoryManager
	credentials *services.CredentialService
	locals      *services.LocalizationService
	messages    *services.MessageService
}

// NewApp wires the application. A storage bootstrap failure is not fatal:
// the server still starts and every storage-dependent operation fails until
// connectivity is restored by a restart. There is no reconnection loop.
func NewApp(ctx context.Context, cfg *config.Config) *App {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	var repos repomanager.RepositoryManager
	m, err := repomanager.NewCassandraRepositoryManager(repomanager.Options{
		Hosts:           cfg.StorageHosts,
		Keyspace:        cfg.StorageKeyspace,
		LocalDatacenter: cfg.StorageLocalDC,
		Username:        cfg.StorageUsername,
		Password:        cfg.StoragePassword,
	})
	if err != nil {
		logger.Error(ctx, "storage bootstrap failed, serving in degraded mode", "error", err.Error())
		repos = repomanager.NewFromQuerier(&cqlx.Unavailable{Err: err})
	} else {
		if err := m.EnsureSchema(ctx); err != nil {
			logger.Error(ctx, "schema bootstrap failed", "error", err.Error())
		}
		repos = m
	}

	return &App{
		config:      cfg,
		logger:      logger,
		repos:       repos,
		credentials: services.NewCredentialService(repos.Users(), repos.Devices()),
		locals:      services.NewLocalizationService(repos.Localizations()),
		messages:    services.NewMessageService(repos.Messages(), cfg),
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := hs.NewServer(app.config.EndpointAddrHTTP, app.logger,
		app.credentials, app.locals, app.messages)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.repos.Close()
}

// Package server initializes and runs the markbook server: it selects the
// storage backend, wires the services, and serves the HTTP API with
// graceful shutdown.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"markbook/internal/logging"
	"markbook/internal/server/config"
	"markbook/internal/server/httpapi"
	"markbook/internal/server/repositories/repomanager"
	"markbook/internal/server/services"
	"markbook/internal/server/session"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	manager  repomanager.Manager
	auth     *services.AuthService
	records  *services.RecordService
	sessions *session.Manager
}

func NewApp(cfg *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout)

	var (
		m   repomanager.Manager
		err error
	)
	if cfg.DatabaseDSN != "" {
		m, err = repomanager.NewPostgresManager(cfg.DatabaseDSN)
	} else {
		m, err = repomanager.NewFileManager(cfg.DataDir, cfg.LockTimeout)
	}
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	return &App{
		config:   cfg,
		logger:   logger,
		manager:  m,
		auth:     services.NewAuthService(m.Accounts()),
		records:  services.NewRecordService(m.Records()),
		sessions: session.NewManager(),
	}, nil
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
	s := httpapi.NewServer(app.config.EndpointAddr, app.logger, app.auth, app.records, app.sessions)

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

	if err := app.manager.Close(); err != nil {
		app.logger.Error(ctx, "storage close error", "error", err.Error())
	}
}

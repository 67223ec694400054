// Package server initializes and runs the CareKeeper backend: it wires the
// in-memory stores, the credential and user-data services, the welcome
// mailer, and the HTTP gateway, and handles graceful shutdown on OS
// signals.
package server

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/carekeeper/internal/clockx"
	"github.com/dmitrijs2005/carekeeper/internal/logging"
	"github.com/dmitrijs2005/carekeeper/internal/server/config"
	"github.com/dmitrijs2005/carekeeper/internal/server/mailer"
	"github.com/dmitrijs2005/carekeeper/internal/server/rest"
	"github.com/dmitrijs2005/carekeeper/internal/server/userdata"
	"github.com/dmitrijs2005/carekeeper/internal/server/users"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	userService *users.Service
	dataService *userdata.Service
}

func NewApp(cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	clock := clockx.Real{}

	dataRepo := userdata.NewInMemoryRepository(clock)
	dataService := userdata.NewService(dataRepo)

	m := mailer.NewSMTPMailer(cfg, logger)

	userRepo := users.NewInMemoryRepository()
	userService := users.NewService(userRepo, dataRepo, m, logger, clock, cfg)

	return &App{
		config:      cfg,
		logger:      logger,
		userService: userService,
		dataService: dataService,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := rest.NewHTTPServer(app.config.EndpointAddr, app.logger, app.userService, app.dataService, app.config.SecretKey)

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
}

// Package cli implements the interactive CareKeeper command-line client:
// a small REPL over the session store.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/carekeeper/internal/client/api"
	"github.com/dmitrijs2005/carekeeper/internal/client/config"
	"github.com/dmitrijs2005/carekeeper/internal/client/localstore"
	"github.com/dmitrijs2005/carekeeper/internal/client/session"
	"github.com/dmitrijs2005/carekeeper/internal/clockx"
	"github.com/dmitrijs2005/carekeeper/internal/logging"
)

type App struct {
	config    *config.Config
	session   *session.Store
	store     *localstore.Store
	apiClient api.Client
	logger    logging.Logger
	clock     clockx.Clock
	db        *sql.DB
	reader    *bufio.Reader
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	store, db, err := localstore.Open(ctx, c.DatabasePath)
	if err != nil {
		return nil, err
	}

	clock := clockx.Real{}
	client := api.NewHTTPClient(c.ServerBaseURL, c.RequestTimeout, logger)

	return &App{
		config:    c,
		session:   session.NewStore(client, store, logger, clock),
		store:     store,
		apiClient: client,
		logger:    logger,
		clock:     clock,
		db:        db,
		reader:    bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.session.SignedIn()
}

// greetReturning announces whose session is being restored, from the
// locally cached name, before the server round-trip confirms it.
func (a *App) greetReturning(ctx context.Context) {
	name, err := a.store.UserName(ctx)
	if err != nil || name == "" {
		return
	}
	printlnFn("Restoring session for", name, "...")
}

// Run restores any persisted session and enters the REPL. It blocks
// until the user exits or stdin is closed.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	a.greetReturning(ctx)
	if a.session.Restore(ctx) {
		printlnFn("Welcome back,", a.session.User().Name)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

// Ping checks whether the backend answers on its health endpoint.
func (a *App) Ping(ctx context.Context) error {
	if err := a.apiClient.Ping(ctx); err != nil {
		printlnFn("Server unreachable:", err.Error())
		return err
	}
	printlnFn("Server is up")
	return nil
}

func (a *App) getStatus() string {
	if u := a.session.User(); u != nil {
		return "(" + u.Name + ")"
	}
	return ""
}

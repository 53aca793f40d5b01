package client

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/ashakirov/go-fit-keeper/internal/adapter"
	"github.com/ashakirov/go-fit-keeper/internal/config"
	"github.com/ashakirov/go-fit-keeper/internal/logger"
	"github.com/ashakirov/go-fit-keeper/internal/server"
	"github.com/ashakirov/go-fit-keeper/internal/service"
	"github.com/ashakirov/go-fit-keeper/internal/store"
	"github.com/ashakirov/go-fit-keeper/internal/utils"
)

type App struct {
	cfg      *config.ClientConfig
	logger   *logger.Logger
	store    store.LocalStore
	remote   adapter.RemoteService
	services *service.ClientServices
	debug    *server.DebugServer
}

// NewApp wires the full client: opens (and migrates) the local cache,
// constructs the remote adapter with the configured bearer token, tags the
// cache with the token's user id, and prepares the replay machinery plus the
// optional diagnostics endpoint.
func NewApp(cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	ctx := log.WithContext(context.Background())

	db, err := store.Open(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, fmt.Errorf("open local cache: %w", err)
	}

	localStore, err := store.NewLocalStore(ctx, db, log)
	if err != nil {
		return nil, fmt.Errorf("create local store: %w", err)
	}

	remote, err := adapter.NewHTTPRemoteService(cfg.Remote, log)
	if err != nil {
		return nil, fmt.Errorf("create remote adapter: %w", err)
	}

	if cfg.App.Token != "" {
		remote.SetToken(cfg.App.Token)

		if userID, err := utils.ParseUserIDFromJWT(cfg.App.Token); err != nil {
			log.Warn().Err(err).Msg("cannot read user id from token, cache stays untagged")
		} else if err := localStore.SetOwner(ctx, userID); err != nil {
			return nil, fmt.Errorf("tag cache owner: %w", err)
		}
	}

	app := &App{
		cfg:      cfg,
		logger:   log,
		store:    localStore,
		remote:   remote,
		services: service.NewClientServices(localStore, remote, log),
	}

	if cfg.Debug.HTTPAddress != "" {
		app.debug = server.NewDebugServer(cfg.Debug, server.NewHandler(localStore, log), log)
	}

	return app, nil
}

// Run implements [Client]. It performs one immediate replay attempt, starts
// the periodic replay job and the diagnostics endpoint, then blocks until the
// process receives SIGINT or SIGTERM.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = a.logger.WithContext(ctx)

	if a.debug != nil {
		go a.debug.Run()
	}

	// startup drain; failure is expected when offline
	if replayed, err := a.services.Replay.Replay(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("startup replay incomplete, queue kept")
	} else if replayed > 0 {
		a.logger.Info().Int("replayed", replayed).Msg("startup replay drained queue")
	}

	a.services.Job.Start(ctx, a.cfg.Workers.SyncInterval)
	defer a.services.Job.Stop()

	<-ctx.Done()
	a.logger.Info().Msg("shutting down")

	if a.debug != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		a.debug.Shutdown(shutdownCtx)
	}

	return nil
}

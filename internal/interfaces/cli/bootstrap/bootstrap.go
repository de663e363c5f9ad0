// Package bootstrap turns the global CLI flags into a configured ticket
// service. Every command that touches tickets starts here.
package bootstrap

import (
	"context"
	"fmt"

	ticketApp "helpdesk/internal/application/ticket"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/kvstore"
	"helpdesk/internal/infrastructure/permission"
	"helpdesk/internal/infrastructure/repository"
	"helpdesk/internal/infrastructure/seed"
	"helpdesk/internal/shared/biztime"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/services/markdown"
)

// Flags are the persistent flags shared by every subcommand.
type Flags struct {
	Env        string
	ConfigPath string
	JSON       bool
}

// App is a ready-to-use service plus the resources behind it.
type App struct {
	Config  *config.Config
	Service *ticketApp.Service
	Logger  logger.Interface

	closeStore kvstore.CloseFunc
}

// Close releases the storage backend and flushes the logger.
func (a *App) Close() {
	if a.closeStore != nil {
		if err := a.closeStore(); err != nil {
			a.Logger.Warnw("failed to close storage", "error", err)
		}
	}
	_ = logger.Sync()
}

// InitEnv loads configuration and initializes logging and the business
// timezone. It does not open storage.
func InitEnv(flags *Flags) (*config.Config, logger.Interface, error) {
	// HELPDESK_ENV is read by config.Load when --env is not given.
	cfg, err := config.Load(flags.Env, flags.ConfigPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := biztime.Init(cfg.App.Timezone); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	return cfg, logger.NewLogger().Named("cli"), nil
}

// New wires the full ticket service against the configured storage backend.
func New(ctx context.Context, flags *Flags) (*App, error) {
	cfg, log, err := InitEnv(flags)
	if err != nil {
		return nil, err
	}

	ds, err := loadSeed(cfg.App.SeedFile)
	if err != nil {
		return nil, err
	}

	store, closeStore, err := kvstore.Open(ctx, &cfg.Storage, log.Named("kvstore"))
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	enforcer, err := permission.NewEnforcer(log.Named("permission"))
	if err != nil {
		_ = closeStore()
		return nil, fmt.Errorf("failed to initialize permissions: %w", err)
	}

	avg := cfg.App.AvgFirstResponseTime
	if avg == "" {
		avg = ds.AvgFirstResponseTime
	}

	svcLog := log.Named("ticket")
	svc := ticketApp.NewService(
		repository.NewTicketRepository(store, ds, svcLog),
		repository.NewMessageRepository(store, ds, svcLog),
		ticket.NewSequenceNumberGenerator(repository.NewSequenceRepository(store)),
		ds,
		enforcer,
		markdown.NewRenderer(),
		ticketApp.Options{
			Location:             biztime.Location(),
			AvgFirstResponseTime: avg,
		},
		svcLog,
	)

	log.Debugw("helpdesk ready",
		"env", cfg.Env,
		"storage", cfg.Storage.Driver,
		"timezone", biztime.Location().String(),
	)

	return &App{
		Config:     cfg,
		Service:    svc,
		Logger:     log,
		closeStore: closeStore,
	}, nil
}

func loadSeed(path string) (*seed.Dataset, error) {
	if path == "" {
		ds, err := seed.Default()
		if err != nil {
			return nil, fmt.Errorf("failed to load embedded seed data: %w", err)
		}
		return ds, nil
	}

	ds, err := seed.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load seed file %s: %w", path, err)
	}
	return ds, nil
}

// Run opens the app for one command invocation and closes it afterwards.
func Run(ctx context.Context, flags *Flags, fn func(ctx context.Context, app *App) error) error {
	app, err := New(ctx, flags)
	if err != nil {
		return err
	}
	defer app.Close()
	return fn(ctx, app)
}

package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"strings"

	corecfg "github.com/bigsister-lab/bigsister/internal/core/config"
	"github.com/bigsister-lab/bigsister/internal/core/storage"
	"github.com/bigsister-lab/bigsister/internal/core/storage/badgerstore"
	"github.com/bigsister-lab/bigsister/internal/core/storage/postgres"
	"github.com/bigsister-lab/bigsister/internal/directory"
	"github.com/bigsister-lab/bigsister/internal/migrations"
	"github.com/bigsister-lab/bigsister/internal/notify"
	"github.com/bigsister-lab/bigsister/internal/platform"
	_ "github.com/lib/pq"
)

// eventStore is what the binary needs from a backend beyond the store contract.
type eventStore interface {
	storage.EventStore
	Ping(ctx context.Context) error
	Close() error
}

// loadConfig reads the config file and installs the process-wide logger.
func loadConfig() (*corecfg.Config, error) {
	cfg, err := corecfg.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	slog.SetDefault(newLogger(cfg.Logging.Level))
	return cfg, nil
}

func newLogger(level string) *slog.Logger {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: l}))
}

// openStore opens the configured backend. Postgres schema migrations run
// first, on their own connection, when database.auto_migrate is set.
func openStore(cfg *corecfg.Config) (eventStore, error) {
	switch cfg.Database.Type {
	case "badger":
		store, err := badgerstore.Open(cfg.Database.BadgerPath, cfg.Database.OpTimeout, slog.Default())
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		if err := withMigrationDB(cfg, func(db *sql.DB) error {
			return migrations.RunMigrations(db, cfg.Database.AutoMigrate)
		}); err != nil {
			return nil, err
		}
		adapter, err := postgres.NewAdapter(
			cfg.Database.DSN,
			cfg.Database.MaxOpenConns,
			cfg.Database.MaxIdleConns,
			cfg.Database.OpTimeout,
		)
		if err != nil {
			return nil, err
		}
		return adapter, nil
	}
}

func withMigrationDB(cfg *corecfg.Config, fn func(db *sql.DB) error) error {
	if cfg.Database.Type != "postgres" {
		return fmt.Errorf("migrations apply to postgres only (database.type is %q)", cfg.Database.Type)
	}
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("failed to open postgres database: %w", err)
	}
	defer db.Close()
	return fn(db)
}

// collaborators builds the identity, channel directory and notifier.
func collaborators(cfg *corecfg.Config) (platform.Collaborators, error) {
	dir, err := directory.Load(cfg.Directory.Path)
	if err != nil {
		return platform.Collaborators{}, err
	}

	var notifier platform.Notifier
	switch cfg.Notify.Type {
	case "telegram":
		notifier, err = notify.NewTelegram(cfg.Notify.Telegram.Token, cfg.Notify.Telegram.ChatID, cfg.Notify.Telegram.Mention, cfg.Notify.Timeout)
		if err != nil {
			return platform.Collaborators{}, err
		}
	default:
		notifier = notify.NewLog(slog.Default())
	}

	return platform.Collaborators{Identity: dir, Channels: dir, Notifier: notifier}, nil
}

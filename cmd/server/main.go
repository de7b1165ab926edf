// Package main implements the entry point for the Mnemo API server,
// which stores users' spaced repetition flashcards in a folder hierarchy
// and answers which cards are due for review.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/mnemo-app/mnemo-api/internal/config"
	"github.com/mnemo-app/mnemo-api/internal/platform/logger"
	"github.com/mnemo-app/mnemo-api/internal/platform/memstore"
	"github.com/mnemo-app/mnemo-api/internal/platform/sqlstore"
	"github.com/mnemo-app/mnemo-api/internal/service"
	"github.com/mnemo-app/mnemo-api/internal/service/review"
	"github.com/mnemo-app/mnemo-api/internal/store"
)

// application bundles the server's dependencies after initialization.
type application struct {
	config        *config.Config
	logger        *slog.Logger
	docs          store.DocumentStore
	setService    *service.SetService
	reviewService *review.Service
	cleanup       func()
}

func main() {
	app, err := initializeApp(context.Background())
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.cleanup()

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		app.logger.Error("Server exited with error", "error", err)
	}
}

// initializeApp loads configuration, sets up logging, opens the document
// store selected by the config, and wires the service layer.
func initializeApp(ctx context.Context) (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.Setup(cfg.Server)
	log.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"store_driver", cfg.Store.Driver)

	docs, cleanup, err := openStore(ctx, cfg.Store, log)
	if err != nil {
		return nil, fmt.Errorf("failed to open document store: %w", err)
	}

	return &application{
		config:        cfg,
		logger:        log,
		docs:          docs,
		setService:    service.NewSetService(docs, log),
		reviewService: review.NewService(docs, nil, log),
		cleanup:       cleanup,
	}, nil
}

// openStore creates the DocumentStore named by the config. The memory driver
// serves local development and tests; pgx and sqlite persist.
func openStore(
	ctx context.Context,
	cfg config.StoreConfig,
	log *slog.Logger,
) (store.DocumentStore, func(), error) {
	switch cfg.Driver {
	case "memory":
		log.Warn("Using in-memory document store; data will not survive restarts")
		return memstore.New(), func() {}, nil

	case sqlstore.DriverPostgres, sqlstore.DriverSQLite:
		s, err := sqlstore.Open(ctx, cfg.Driver, cfg.DSN, log)
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			if err := s.Close(); err != nil {
				log.Error("Failed to close document store", "error", err)
			}
		}
		return s, cleanup, nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}

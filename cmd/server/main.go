package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sheikh-saqib/marketplace-ledger-system/internal/config"
	"github.com/sheikh-saqib/marketplace-ledger-system/internal/events/kafka"
	"github.com/sheikh-saqib/marketplace-ledger-system/internal/market"
	"github.com/sheikh-saqib/marketplace-ledger-system/internal/server"
	"github.com/sheikh-saqib/marketplace-ledger-system/internal/storage"
	"github.com/sheikh-saqib/marketplace-ledger-system/internal/storage/jsonfile"
	"github.com/sheikh-saqib/marketplace-ledger-system/internal/storage/memory"
	"github.com/sheikh-saqib/marketplace-ledger-system/internal/storage/postgres"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	store, cleanup, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	// A load failure other than a missing file aborts startup here:
	// running against partial state would corrupt the ledger.
	m, err := market.New(context.Background(), store)
	if err != nil {
		return fmt.Errorf("loading ledger: %w", err)
	}

	if len(cfg.KafkaBrokers) > 0 {
		publisher := kafka.NewPublisher(cfg.KafkaBrokers)
		defer publisher.Close()
		m.SetPublisher(publisher)
		slog.Info("event publication enabled", "brokers", cfg.KafkaBrokers)
	}

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: server.New(m, slog.Default()).Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	slog.Info("server listening", "addr", cfg.Addr, "storage", cfg.Storage)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-sig:
		slog.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}
}

func openStore(cfg *config.Config) (storage.Store, func(), error) {
	switch cfg.Storage {
	case "jsonfile":
		return jsonfile.New(cfg.DataFile), func() {}, nil
	case "memory":
		return memory.NewStore(), func() {}, nil
	case "postgres":
		db, err := postgres.Open(cfg.PostgresURL)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to postgres: %w", err)
		}
		if err := postgres.EnsureSchema(context.Background(), db); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("preparing schema: %w", err)
		}
		return postgres.NewStore(db), func() { db.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage)
	}
}

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

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ericfisherdev/formfill/internal/adapter/driven/memory"
	sqliteadapter "github.com/ericfisherdev/formfill/internal/adapter/driven/sqlite"
	"github.com/ericfisherdev/formfill/internal/adapter/driven/webfetch"
	httphandler "github.com/ericfisherdev/formfill/internal/adapter/driving/http"
	"github.com/ericfisherdev/formfill/internal/application"
	"github.com/ericfisherdev/formfill/internal/config"
	"github.com/ericfisherdev/formfill/internal/domain/port/driven"
	"github.com/ericfisherdev/formfill/internal/logging"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP autofill service",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	// 1. Load configuration.
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := logging.Init(os.Stderr, cfg.LogFormat, logging.ParseLevel(cfg.LogLevel))
	logger.Info("config loaded",
		"listen_addr", cfg.ListenAddr,
		"db_path", cfg.DBPath,
		"fetch_timeout", cfg.FetchTimeout,
		"fetch_cache_entries", cfg.FetchCacheEntries,
		"profile_path", cfg.ProfilePath,
	)

	profile, err := config.LoadProfile(cfg.ProfilePath)
	if err != nil {
		return err
	}

	// 2. Setup signal-based context (SIGINT, SIGTERM).
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Open the credential store.
	store, closeStore, err := openCredentialStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	// 4. Wire services.
	profiles := application.NewProfileProvider(profile)
	classifier := application.NewFieldClassifier(logger)
	builder := application.NewSuggestionBuilder(store, profiles, logger)
	autofillSvc := application.NewAutofillService(classifier, builder, store, logger)
	detector := application.NewFormDetector(webfetch.NewFetcher(
		webfetch.WithTimeout(cfg.FetchTimeout),
		webfetch.WithCacheEntries(cfg.FetchCacheEntries),
	), logger)

	// 5. Create HTTP handler.
	apiHandler := httphandler.NewHandler(autofillSvc, detector, profiles, logger)

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           httphandler.NewServeMux(apiHandler, logger),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server starting", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	// 6. Wait for shutdown signal or server failure, then drain.
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("shutdown complete")
	return nil
}

// openCredentialStore returns the SQLite-backed store when a database path is
// configured and the in-memory store otherwise. The returned func releases it.
func openCredentialStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (driven.CredentialStore, func(), error) {
	if !cfg.UsesPersistentStore() {
		logger.Info("using in-memory credential store")
		return memory.NewCredentialStore(), func() {}, nil
	}

	// Dual reader/writer with WAL mode.
	db, err := sqliteadapter.NewDB(ctx, cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("database opened", "path", db.Path())

	version, err := sqliteadapter.RunMigrations(db.Writer, logger)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	logger.Info("migrations complete", "schema_version", version)

	closeFn := func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.Error("error closing database", "error", closeErr)
		}
	}
	return sqliteadapter.NewCredentialRepo(db), closeFn, nil
}

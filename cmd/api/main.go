// @title MedTracker API
// @version 1.0
// @description Medicamentos, registro de tomas, notas y adherencia.
// @BasePath /
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medtracker/internal/adapters/druginfo/openfda"
	pg "medtracker/internal/adapters/storage/postgres"
	"medtracker/internal/config"
	"medtracker/internal/platform/logger"
	"medtracker/internal/router"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "medtracker",
		Short: "MedTracker API server",
		// sin subcomando => serve
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations (requires DB_DSN)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := bootstrap()
			if err != nil {
				return err
			}
			if !cfg.UsesPostgres() {
				return errors.New("DB_DSN is required to run migrations")
			}

			db, err := pg.Open(cfg.DBDSN)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer db.Close()

			n, err := pg.Migrate(cmd.Context(), db)
			if err != nil {
				return err
			}
			log.Info("migrations applied", map[string]any{"count": n})
			return nil
		},
	}
}

func bootstrap() (*config.Config, logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})
	return cfg, log, nil
}

func runServer() error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}

	opts := router.Options{Logger: log}

	if cfg.UsesPostgres() {
		db, err := pg.Open(cfg.DBDSN)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer db.Close()

		n, err := pg.Migrate(context.Background(), db)
		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		log.Info("using postgres store", map[string]any{"migrations_applied": n})
		opts.DB = db
	} else {
		fields := map[string]any{"env": cfg.Env}
		if cfg.IsDev() {
			log.Info("DB_DSN not set, using in-memory store", fields)
		} else {
			log.Warn("DB_DSN not set, using in-memory store; data is lost on restart", fields)
		}
	}

	client, err := openfda.NewClient(openfda.Config{
		BaseURL: cfg.DrugInfoBaseURL,
		APIKey:  cfg.DrugInfoAPIKey,
		Timeout: cfg.DrugInfoTimeout,
	})
	if err != nil {
		return fmt.Errorf("drug info client: %w", err)
	}
	if client.IsConfigured() {
		opts.DrugInfo = openfda.NewLookup(client, log)
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.NewRouter(opts),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "env": cfg.Env})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case sig := <-stop:
		log.Info("shutting down", map[string]any{"signal": sig.String()})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

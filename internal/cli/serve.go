package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/dompetku/backend/internal/config"
	v1 "github.com/dompetku/backend/internal/controllers/v1"
	"github.com/dompetku/backend/internal/metrics"
	"github.com/dompetku/backend/internal/models"
	"github.com/dompetku/backend/internal/router"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func serveCmd(cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the API server",
		Long: `Run the API server.

The server shuts down gracefully on SIGINT and SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*cfgFile)
			if err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			setupLogging(cfg, stdout)
			return serve(cmd.Context(), cfg)
		},
	}
}

// serve runs the API server until ctx is cancelled.
func serve(ctx context.Context, cfg config.Config) error {
	url, err := cfg.URL()
	if err != nil {
		return err
	}

	formatter, err := cfg.Formatter()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(cfg.DBPath), os.ModePerm)
	if err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	db, err := models.Connect(cfg.DBPath)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	m, err := metrics.New()
	if err != nil {
		return err
	}

	r, err := router.Config(url, router.Options{
		AllowOrigins: cfg.CORSAllowOrigins,
		EnablePprof:  cfg.EnablePprof,
		LogWriter:    stdout,
	})
	if err != nil {
		return err
	}

	router.AttachRoutes(v1.Controller{DB: db, Formatter: formatter, Metrics: m}, r.Group("/"))

	server := &http.Server{
		Addr:              cfg.ListenAddress,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info().Str("address", cfg.ListenAddress).Str("url", url.String()).Str("version", router.Version()).Msg("starting server")
		errc <- server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	return nil
}

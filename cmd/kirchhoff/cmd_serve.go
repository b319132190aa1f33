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

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"kirchhoff"
	"kirchhoff/internal/logging"
	"kirchhoff/internal/server"
)

const shutdownTimeout = 15 * time.Second

func newServeCmd(opts *rootOptions) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the student form and the JSON API",
		Long: `Starts the HTTP server. The form is served on /, the JSON API under /v1,
health on /health and Prometheus metrics on /metrics.

Configured answer keys are cross-checked against the solved circuits at
startup and disagreements are logged as warnings.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts, listen)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "listen address, overrides the configured one")
	return cmd
}

func runServe(cmd *cobra.Command, opts *rootOptions, listen string) error {
	log := logging.New("serve")

	cfg, repo, err := opts.load()
	if err != nil {
		return err
	}
	if listen != "" {
		cfg.Listen = listen
	}

	discrepancies, err := repo.CrossCheck(cfg.Tolerance)
	if err != nil {
		return fmt.Errorf("cross-check answer keys: %w", err)
	}
	for _, d := range discrepancies {
		log.Warn("configured answer disagrees with solved circuit",
			"set", d.SetID, "configured", d.Configured.String(), "derived", d.Derived.String())
	}

	if !log.Enabled(cmd.Context(), slog.LevelDebug) {
		gin.SetMode(gin.ReleaseMode)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	logger := kirchhoff.NewLogger(cfg.Logging)
	srv := server.New(cfg, repo, logger, reg)

	httpServer := &http.Server{
		Addr:              cfg.Listen,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("listening", "addr", cfg.Listen, "variant", cfg.Variant, "sets", repo.Len())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		err := httpServer.Shutdown(shutdownCtx)
		srv.Wait()
		return err
	})

	return g.Wait()
}

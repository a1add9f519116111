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

	"github.com/spf13/cobra"

	"github.com/vimldn/invis"
	"github.com/vimldn/invis/api"
	"github.com/vimldn/invis/catalog"
	"github.com/vimldn/invis/leads"
	"github.com/vimldn/invis/storage"
	"github.com/vimldn/invis/tracing"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context())
		},
	}
	cmd.Flags().String("addr", ":8080", "listen address")
	cmd.Flags().Bool("cors", true, "send CORS headers")
	cmd.Flags().String("leads-endpoint", "", "lead intake script URL")
	return cmd
}

// newLoader builds the article loader from configuration
func (a *app) newLoader(ctx context.Context) (*invis.Loader, error) {
	source, err := storage.NewSource(ctx, a.config.StorageConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create articles source: %w", err)
	}
	schedule, err := a.config.PublishSchedule()
	if err != nil {
		return nil, err
	}
	return invis.NewLoader(source, schedule, a.logger), nil
}

func (a *app) serve(ctx context.Context) error {
	logger := a.logger
	cfg := a.config

	logger.Info("invis service initializing")

	shutdownTracer, err := tracing.InitTracer(ctx, cfg.Tracing.ServiceName, cfg.Tracing.Endpoint)
	if err != nil {
		logger.Warn("failed to initialize tracer, continuing without tracing", "error", err)
	} else {
		defer func() {
			if err := shutdownTracer(context.Background()); err != nil {
				logger.Error("error shutting down tracer", "error", err)
			}
		}()
	}

	loader, err := a.newLoader(ctx)
	if err != nil {
		return err
	}

	cat, err := catalog.Load()
	if err != nil {
		return err
	}

	server := api.NewServer(api.Config{
		Addr:        cfg.Addr,
		CORSEnabled: cfg.CORSEnabled,
		View:        invis.DefaultViewOptions(),
		Logger:      logger,
	}, loader, cat, leads.NewClient(cfg.LeadClientConfig(), logger))

	errCh := make(chan error, 1)
	go func() {
		logger.Info("invis service starting",
			"addr", cfg.Addr,
			"articles_source", cfg.Articles.Source,
			"leads_endpoint", cfg.Leads.Endpoint,
			"cors_enabled", cfg.CORSEnabled,
		)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-quit:
	}

	logger.Info("shutting down gracefully")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

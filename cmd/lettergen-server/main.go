// lettergen-server serves the form catalog, client records and document
// generation over HTTP.
//
// Configuration comes from the environment:
//
//	LETTERGEN_ADDR         listen address (default :8080)
//	LETTERGEN_DB           sqlite database path (default lettergen.db)
//	LETTERGEN_WEBHOOK_URL  delivery endpoint; sending is disabled when unset
//	LETTERGEN_DEBUG        verbose development logging
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

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"

	"github.com/goliatone/go-lettergen/internal/server"
	clientsqlite "github.com/goliatone/go-lettergen/pkg/client/sqlite"
	"github.com/goliatone/go-lettergen/pkg/delivery"
	"github.com/goliatone/go-lettergen/pkg/generator"
)

type config struct {
	Addr       string `env:"LETTERGEN_ADDR" envDefault:":8080"`
	DBPath     string `env:"LETTERGEN_DB" envDefault:"lettergen.db"`
	WebhookURL string `env:"LETTERGEN_WEBHOOK_URL"`
	Debug      bool   `env:"LETTERGEN_DEBUG"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "lettergen-server: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		return err
	}
	defer logger.Sync()

	store, err := clientsqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	genOpts := []generator.Option{
		generator.WithStore(store),
		generator.WithLogger(logger),
	}
	if cfg.WebhookURL != "" {
		sink, err := delivery.NewWebhookSink(cfg.WebhookURL, delivery.WithLogger(logger))
		if err != nil {
			return fmt.Errorf("webhook sink: %w", err)
		}
		genOpts = append(genOpts, generator.WithSink(sink))
	}

	srv, err := server.New(generator.New(genOpts...), store, server.WithLogger(logger))
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening",
			zap.String("addr", cfg.Addr),
			zap.String("db", cfg.DBPath),
			zap.Bool("delivery", cfg.WebhookURL != ""))
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	}

	return nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/julienschmidt/httprouter"
	"simdshare.ubdc.ac.uk/internal/app"
	"simdshare.ubdc.ac.uk/internal/logging"
	"simdshare.ubdc.ac.uk/internal/restapi"
	"simdshare.ubdc.ac.uk/internal/simd"
	"simdshare.ubdc.ac.uk/internal/webui"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns the process exit code. Deferred cleanup runs before main exits.
func run(args []string) int {
	cfg, simdCfg, err := parseFlags(args, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := logging.NewStructuredLogger(os.Stdout, level)
	slog.SetDefault(logger)

	if err != nil {
		_ = logging.ReplaceLogFatal(logger, "invalid configuration", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	simdManager, err := simd.InitManager(ctx, simdCfg, logger)
	if err != nil {
		_ = logging.ReplaceLogFatal(logger, "failed to load SIMD data", err)
		return 1
	}
	defer simdManager.Shutdown()

	simdManager.PrintStatistics(ctx)

	application := &app.Application{
		Config:      cfg,
		SimdConfig:  simdCfg,
		Logger:      logger,
		SimdManager: simdManager,
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      routes(application),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	if err := serve(ctx, srv, logger); err != nil {
		logging.LogError(logger, "server stopped", err)
		return 1
	}
	return 0
}

// serve runs srv until it fails or ctx is cancelled, then shuts it down gracefully.
func serve(ctx context.Context, srv *http.Server, logger *slog.Logger) error {
	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", srv.Addr)
		serverErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logging.LogError(logger, "graceful shutdown failed", err)
		}
		return nil
	}
}

// routes mounts the API and the web UI on one router behind the API middleware chain.
func routes(application *app.Application) http.Handler {
	router := httprouter.New()

	api := restapi.NewRestAPI(application)
	api.SetRoutes(router)
	webui.NewWebUI(application).SetWebUIRoutes(router)

	return api.Middleware(router)
}

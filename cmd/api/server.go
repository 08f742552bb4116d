package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/julienschmidt/httprouter"
	"ownerboard.dev/internal/app"
	"ownerboard.dev/internal/appconf"
	"ownerboard.dev/internal/logging"
	"ownerboard.dev/internal/restapi"
	"ownerboard.dev/internal/webui"
)

const shutdownTimeout = 10 * time.Second

// run loads the dataset and serves until ctx is cancelled or a termination
// signal arrives. Dataset errors are fatal.
func run(ctx context.Context, cfg appconf.Config, logOut io.Writer) error {
	level, err := appconf.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := logging.NewStructuredLogger(logOut, level)

	application, err := app.New(cfg, logger)
	if err != nil {
		logging.LogError(logger, "failed to load dataset", err,
			slog.String("data_path", cfg.DataPath))
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Port))
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	return serve(ctx, application, ln)
}

// newHandler assembles every route behind the shared middleware chain.
func newHandler(application *app.Application) (http.Handler, *restapi.RestAPI) {
	router := httprouter.New()

	api := restapi.NewRestAPI(application)
	api.SetRoutes(router)
	webui.NewWebUI(application).SetWebUIRoutes(router)

	return api.Handler(router), api
}

// serve runs the HTTP server on ln and shuts it down gracefully once ctx is done.
func serve(ctx context.Context, application *app.Application, ln net.Listener) error {
	handler, api := newHandler(application)
	defer api.Shutdown()

	logger := application.Logger
	srv := &http.Server{
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	logger.Info("starting server",
		slog.String("addr", ln.Addr().String()),
		slog.String("env", application.Config.Env.String()),
		slog.Int("records", application.Table.Len()))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// Package server initializes and runs the reference contacts API. It wires
// configuration, logging and the in-memory store into an HTTP server and
// shuts it down gracefully on SIGINT/SIGTERM.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/contacto/internal/logging"
	"github.com/dmitrijs2005/contacto/internal/server/api"
	"github.com/dmitrijs2005/contacto/internal/server/config"
	"github.com/dmitrijs2005/contacto/internal/server/store"
)

type App struct {
	config *config.Config
	logger logging.Logger
	server *http.Server
}

func NewApp(c *config.Config) *App {
	logger := logging.New(os.Stdout, logging.ParseLevel(c.LogLevel)).With("app", "contacto-server")
	s := store.NewMemory(nil)

	return &App{
		config: c,
		logger: logger,
		server: &http.Server{Addr: c.Addr, Handler: api.NewRouter(s, logger)},
	}
}

// initSignalHandler cancels ctx on a termination signal. The returned stop
// func unregisters the handler and waits for its goroutine to exit.
func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) (stop func()) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	done := make(chan struct{})
	go func() {
		defer close(done)
		select {
		case <-sigs:
			cancelFunc()
		case <-ctx.Done():
		}
	}()

	return func() {
		signal.Stop(sigs)
		cancelFunc()
		<-done
	}
}

// Run listens on the configured address until ctx is cancelled or a
// termination signal arrives.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	stop := app.initSignalHandler(ctx, cancelFunc)
	defer stop()

	ln, err := net.Listen("tcp", app.config.Addr)
	if err != nil {
		return err
	}
	return app.serve(ctx, ln)
}

func (app *App) serve(ctx context.Context, ln net.Listener) error {
	app.logger.Info(ctx, "Starting app...", "addr", ln.Addr().String())

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.server.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	app.logger.Info(context.Background(), "Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), app.config.ShutdownTimeout)
	defer cancel()

	if err := app.server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

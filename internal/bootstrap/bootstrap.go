// Package bootstrap runs a process until it is interrupted and then releases
// its resources.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

// DefaultShutdownTimeout bounds the time all shutdown hooks may take.
const DefaultShutdownTimeout = 10 * time.Second

type shutdownHook struct {
	name string
	fn   func(ctx context.Context) error
}

// App owns the shutdown hooks of a process.
type App struct {
	mu              sync.Mutex
	hooks           []shutdownHook
	shutdownTimeout time.Duration
	signals         []os.Signal
}

// New creates an App stopping on SIGINT and SIGTERM.
func New() *App {
	return &App{
		shutdownTimeout: DefaultShutdownTimeout,
		signals:         []os.Signal{os.Interrupt, syscall.SIGTERM},
	}
}

// AddShutdownHook registers fn under name. Hooks run in reverse registration
// order, so a resource opened first is closed last.
func (a *App) AddShutdownHook(name string, fn func(ctx context.Context) error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.hooks = append(a.hooks, shutdownHook{name: name, fn: fn})
}

// Run calls run and waits until it returns or a stop signal arrives.
// Shutdown hooks run in both cases. The error of run is returned together
// with any hook errors.
func (a *App) Run(ctx context.Context, run func(ctx context.Context) error) error {
	ctx, cancel := signal.NotifyContext(ctx, a.signals...)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(ctx)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		slog.Info("shutting down", "reason", context.Cause(ctx))
	case runErr = <-errCh:
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer cancelShutdown()
	return errors.Join(runErr, a.shutdown(shutdownCtx))
}

func (a *App) shutdown(ctx context.Context) error {
	a.mu.Lock()
	hooks := a.hooks
	a.hooks = nil
	a.mu.Unlock()

	var errs []error
	for i := len(hooks) - 1; i >= 0; i-- {
		hook := hooks[i]
		slog.Debug("running shutdown hook", "name", hook.name)
		if err := hook.fn(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutdown %s > %w", hook.name, err))
		}
	}
	return errors.Join(errs...)
}

// Package shutdown runs a long-lived component until it finishes or the
// process is asked to stop.
package shutdown

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// Signals are the OS signals that trigger a graceful stop.
var Signals = []os.Signal{syscall.SIGINT, syscall.SIGTERM}

// RunWithGracefulShutdown starts runner and blocks until it returns or a stop
// is requested. A stop is either one of Signals or cancellation of ctx.
//
// On stop, the runner's context is cancelled and shutdown is called with a
// context bounded by timeout. The runner then gets the same budget to return.
// A runner that exits with its context's error (Canceled or
// DeadlineExceeded) after a stop is not an error.
func RunWithGracefulShutdown(
	ctx context.Context,
	logger *slog.Logger,
	timeout time.Duration,
	runner func(ctx context.Context) error,
	shutdown func(ctx context.Context) error,
) error {
	runCtx, runCancel := context.WithCancel(ctx)
	defer runCancel()

	runDone := make(chan error, 1)
	go func() {
		runDone <- runner(runCtx)
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, Signals...)
	defer signal.Stop(sigChan)

	select {
	case err := <-runDone:
		if ctx.Err() != nil && isStopErr(err) {
			return nil
		}
		return err
	case sig := <-sigChan:
		logger.Info("received signal, initiating shutdown", "signal", sig)
	case <-ctx.Done():
		logger.Info("context cancelled, initiating shutdown")
	}
	runCancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), timeout)
	defer shutdownCancel()

	if shutdown != nil {
		if err := shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown error", "error", err)
		}
	}

	select {
	case err := <-runDone:
		if err != nil && !isStopErr(err) {
			return err
		}
	case <-shutdownCtx.Done():
		logger.Warn("shutdown timeout exceeded")
	}

	logger.Info("shutdown complete")
	return nil
}

// isStopErr reports whether err only says that a context ended.
func isStopErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

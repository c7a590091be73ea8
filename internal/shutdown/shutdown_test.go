package shutdown

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestRunnerFinishesOnItsOwn(t *testing.T) {
	want := errors.New("boom")
	var shutdownCalled atomic.Bool

	err := RunWithGracefulShutdown(context.Background(), discard, time.Second,
		func(context.Context) error { return want },
		func(context.Context) error { shutdownCalled.Store(true); return nil },
	)

	if !errors.Is(err, want) {
		t.Errorf("err = %v, want %v", err, want)
	}
	if shutdownCalled.Load() {
		t.Error("shutdown should not run when the runner exits by itself")
	}
}

func TestContextCancelTriggersShutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var shutdownCalled atomic.Bool

	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	err := RunWithGracefulShutdown(ctx, discard, time.Second,
		func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		},
		func(context.Context) error { shutdownCalled.Store(true); return nil },
	)

	if err != nil {
		t.Errorf("err = %v, want nil", err)
	}
	if !shutdownCalled.Load() {
		t.Error("expected shutdown to be called")
	}
}

func TestShutdownTimeout(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	release := make(chan struct{})
	defer close(release)

	start := time.Now()
	err := RunWithGracefulShutdown(ctx, discard, 30*time.Millisecond,
		func(context.Context) error {
			<-release
			return nil
		},
		nil,
	)

	if err != nil {
		t.Errorf("err = %v, want nil", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("returned after %v, expected the timeout to bound the wait", elapsed)
	}
}

func TestRunnerErrorAfterStopIsReported(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	want := errors.New("flush failed")

	err := RunWithGracefulShutdown(ctx, discard, time.Second,
		func(ctx context.Context) error {
			<-ctx.Done()
			return want
		},
		nil,
	)

	if !errors.Is(err, want) {
		t.Errorf("err = %v, want %v", err, want)
	}
}

func TestContextDeadlineIsCleanStop(t *testing.T) {
	tests := []struct {
		name   string
		runner func(ctx context.Context) error
	}{
		{"runner returns ctx error", func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		}},
		{"runner returns wrapped deadline", func(ctx context.Context) error {
			<-ctx.Done()
			return fmt.Errorf("run: %w", context.DeadlineExceeded)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
			defer cancel()

			if err := RunWithGracefulShutdown(ctx, discard, time.Second, tt.runner, nil); err != nil {
				t.Errorf("err = %v, want nil", err)
			}
		})
	}
}

func TestDeadlineErrorWithoutStopIsReported(t *testing.T) {
	err := RunWithGracefulShutdown(context.Background(), discard, time.Second,
		func(context.Context) error { return context.DeadlineExceeded },
		nil,
	)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("err = %v, want DeadlineExceeded", err)
	}
}

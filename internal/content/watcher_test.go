package content

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte("header:\n  brand: First\n"), 0644))

	var (
		mu     sync.Mutex
		brands []string
		errs   []error
	)
	w := NewWatcher(path, func(doc *Document) {
		mu.Lock()
		defer mu.Unlock()
		brands = append(brands, doc.Header.Brand)
	}, WithDebounce(20*time.Millisecond), WithOnError(func(err error) {
		mu.Lock()
		defer mu.Unlock()
		errs = append(errs, err)
	}))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	defer func() {
		cancel()
		require.NoError(t, <-done)
	}()

	// Give the watch a moment to register before writing.
	time.Sleep(50 * time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("header:\n  brand: Second\n"), 0644))
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(brands) > 0 && brands[len(brands)-1] == "Second"
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("header:\n  brand: \"\"\n"), 0644))
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(errs) > 0
	}, 2*time.Second, 10*time.Millisecond)

	mu.Lock()
	require.ErrorIs(t, errs[len(errs)-1], ErrInvalid)
	mu.Unlock()
}

func TestWatcherIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte("header:\n  brand: Only\n"), 0644))

	calls := make(chan struct{}, 4)
	w := NewWatcher(path, func(*Document) { calls <- struct{}{} }, WithDebounce(10*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0644))

	select {
	case <-calls:
		t.Fatal("sibling write triggered reload")
	case <-time.After(150 * time.Millisecond):
	}

	cancel()
	require.NoError(t, <-done)
}

func TestWatcherMissingDirectory(t *testing.T) {
	w := NewWatcher(filepath.Join(t.TempDir(), "gone", "content.yaml"), nil)
	require.Error(t, w.Run(context.Background()))
}

// Package testutil holds fixtures and helpers shared by package tests.
package testutil

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/npratt/showcase/internal/events"
)

// WriteFile writes content to a file in the given directory.
// It creates parent directories as needed and returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// ReadFile reads a file and returns its contents.
// It fails the test if the file cannot be read.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

// FileExists checks if a file exists.
func FileExists(t *testing.T, path string) bool {
	t.Helper()
	_, err := os.Stat(path)
	return err == nil
}

// SetupTestDir creates a test directory with a .showcase/content.yaml holding
// SampleContentYAML. It returns the directory and the content path.
func SetupTestDir(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	path := WriteFile(t, dir, ".showcase/content.yaml", SampleContentYAML)
	return dir, path
}

// Recorder is an events.Publisher that keeps everything it is given.
type Recorder struct {
	mu     sync.Mutex
	events []events.Event
}

// Emit records e.
func (r *Recorder) Emit(e events.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []events.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]events.Event(nil), r.events...)
}

// OfType returns the recorded events of type typ, oldest first.
func (r *Recorder) OfType(typ events.EventType) []events.Event {
	var out []events.Event
	for _, e := range r.Events() {
		if e.Type() == typ {
			out = append(out, e)
		}
	}
	return out
}

// WaitFor polls until an event of type typ has been recorded or timeout
// elapses, and reports whether one arrived.
func (r *Recorder) WaitFor(typ events.EventType, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if len(r.OfType(typ)) > 0 {
			return true
		}
		time.Sleep(time.Millisecond)
	}
	return len(r.OfType(typ)) > 0
}

package events

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNewLogSink(t *testing.T) {
	sink := NewLogSink("/tmp/test.log", nil)
	if sink == nil {
		t.Fatal("NewLogSink returned nil")
	}
	if sink.Path() != "/tmp/test.log" {
		t.Errorf("Path() = %q, want %q", sink.Path(), "/tmp/test.log")
	}
	if sink.logger == nil {
		t.Error("expected default logger")
	}
}

func TestLogSinkCreatesDirectory(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "subdir", "nested", "events.log")

	sink := NewLogSink(path, nil)
	events := make(chan Event, 10)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := sink.Start(ctx, events); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	if _, err := os.Stat(filepath.Dir(path)); os.IsNotExist(err) {
		t.Error("expected directory to be created")
	}

	cancel()
	_ = sink.Stop()
}

func TestLogSinkWritesDecodableLines(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "events.log")

	sink := NewLogSink(path, nil)
	events := make(chan Event, 10)

	if err := sink.Start(context.Background(), events); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	events <- &PreviewStartEvent{
		BaseEvent:   NewInternalEvent(EventPreviewStart),
		ContentPath: "content.yaml",
		Headless:    true,
	}
	events <- testEvent(2)
	events <- &StateChangedEvent{
		BaseEvent: NewRotationEvent(EventStateChanged, time.Now()),
		Section:   "clients",
		From:      "running",
		To:        "paused",
	}
	close(events)

	if err := sink.Stop(); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	if sink.Written() != 3 {
		t.Errorf("Written() = %d, want 3", sink.Written())
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	defer func() { _ = f.Close() }()

	var decoded []Event
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		e, err := Decode(scanner.Bytes())
		if err != nil {
			t.Fatalf("decode %q: %v", scanner.Text(), err)
		}
		decoded = append(decoded, e)
	}

	if len(decoded) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(decoded))
	}
	if start, ok := decoded[0].(*PreviewStartEvent); !ok || !start.Headless {
		t.Errorf("expected headless preview start, got %#v", decoded[0])
	}
	if idx, ok := decoded[1].(*IndexChangedEvent); !ok || idx.Index != 2 || idx.Cause != CauseTimer {
		t.Errorf("unexpected index event %#v", decoded[1])
	}
	if st, ok := decoded[2].(*StateChangedEvent); !ok || st.To != "paused" {
		t.Errorf("unexpected state event %#v", decoded[2])
	}
}

func TestLogSinkRotatesExistingFile(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "events.log")

	initial := `{"type":"preview.stop","timestamp":"2024-01-01T00:00:00Z","source":"showcase"}` + "\n"
	if err := os.WriteFile(path, []byte(initial), 0644); err != nil {
		t.Fatalf("failed to write initial content: %v", err)
	}

	sink := NewLogSink(path, nil)
	events := make(chan Event, 1)
	if err := sink.Start(context.Background(), events); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	events <- &PreviewStopEvent{BaseEvent: NewInternalEvent(EventPreviewStop), Reason: "test"}
	close(events)
	_ = sink.Stop()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if strings.Contains(string(data), "2024-01-01") {
		t.Error("expected previous session to be moved aside")
	}
	if !strings.Contains(string(data), `"reason":"test"`) {
		t.Error("expected new event in fresh log")
	}

	backups, err := filepath.Glob(path + ".*.bak")
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(backups) != 1 {
		t.Fatalf("expected one backup, got %v", backups)
	}
}

func TestLogSinkHandlesClosedChannel(t *testing.T) {
	tmp := t.TempDir()
	sink := NewLogSink(filepath.Join(tmp, "events.log"), nil)
	events := make(chan Event, 10)

	if err := sink.Start(context.Background(), events); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	close(events)

	done := make(chan struct{})
	go func() {
		_ = sink.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Error("Stop timed out after channel close")
	}
}

func TestDecodeUnknownType(t *testing.T) {
	_, err := Decode([]byte(`{"type":"drain.start"}`))
	if err == nil || !strings.Contains(err.Error(), "drain.start") {
		t.Errorf("expected unknown type error, got %v", err)
	}
	if _, err := Decode([]byte("not json")); err == nil {
		t.Error("expected error for malformed line")
	}
}

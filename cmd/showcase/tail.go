package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/npratt/showcase/internal/events"
)

const followPollInterval = 100 * time.Millisecond

// tailLast prints the last n events from the log file.
func tailLast(w io.Writer, path string, n int) error {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			_, _ = fmt.Fprintln(w, "No events yet (log file does not exist)")
			return nil
		}
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Keep only the last n lines
	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
		if n > 0 && len(lines) > n {
			lines = lines[1:]
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read log file: %w", err)
	}

	if len(lines) == 0 {
		_, _ = fmt.Fprintln(w, "No events yet")
		return nil
	}

	for _, line := range lines {
		printEventLine(w, line)
	}
	return nil
}

// waitForFile waits for a file to be created and returns the opened file.
func waitForFile(ctx context.Context, path string) (*os.File, error) {
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
			file, err := os.Open(path)
			if err == nil {
				return file, nil
			}
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("open file: %w", err)
			}
		}
	}
}

// tailFollow prints new events as they are appended until ctx is cancelled.
func tailFollow(ctx context.Context, w io.Writer, path string) error {
	file, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("open log file: %w", err)
		}
		_, _ = fmt.Fprintln(w, "Waiting for log file to be created...")
		file, err = waitForFile(ctx, path)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}
	}
	defer func() { _ = file.Close() }()

	if _, err := file.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("seek to end: %w", err)
	}

	_, _ = fmt.Fprintln(w, "Following events (Ctrl+C to stop)...")
	reader := bufio.NewReader(file)
	var partial string
	for {
		line, err := reader.ReadString('\n')
		if err == nil {
			printEventLine(w, strings.TrimSuffix(partial+line, "\n"))
			partial = ""
			continue
		}
		if !errors.Is(err, io.EOF) {
			return fmt.Errorf("read log: %w", err)
		}
		// Hold an unterminated write until the rest arrives.
		partial += line

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(followPollInterval):
		}
	}
}

// printEventLine prints a single event line in a human-readable format.
// Lines that do not decode are printed as-is.
func printEventLine(w io.Writer, line string) {
	if strings.TrimSpace(line) == "" {
		return
	}
	event, err := events.Decode([]byte(line))
	if err != nil {
		_, _ = fmt.Fprintln(w, line)
		return
	}
	text := events.FormatWithTimestamp(event)
	if text == "" {
		text = fmt.Sprintf("[%s] %s", event.Timestamp().Format("15:04:05"), event.Type())
	}
	_, _ = fmt.Fprintln(w, text)
}

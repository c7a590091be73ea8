package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindProjectRoot(t *testing.T) {
	tests := []struct {
		name   string
		marker string
	}{
		{"showcase dir", ProjectConfigDir},
		{"git dir", ".git"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			if err := os.MkdirAll(filepath.Join(root, tt.marker), 0755); err != nil {
				t.Fatal(err)
			}
			nested := filepath.Join(root, "a", "b")
			if err := os.MkdirAll(nested, 0755); err != nil {
				t.Fatal(err)
			}

			if got := FindProjectRoot(nested); got != root {
				t.Errorf("FindProjectRoot() = %q, want %q", got, root)
			}
		})
	}
}

func TestFindProjectRoot_NoMarker(t *testing.T) {
	dir := t.TempDir()
	if got := FindProjectRoot(dir); got != dir {
		t.Errorf("FindProjectRoot() = %q, want %q", got, dir)
	}
}

func TestResolvePaths(t *testing.T) {
	cfg := Default()
	cfg.Paths.TUILog = "/var/log/showcase.log"

	if err := cfg.ResolvePaths("/srv/site"); err != nil {
		t.Fatal(err)
	}

	if cfg.Content.Path != filepath.Join("/srv/site", ".showcase", "content.yaml") {
		t.Errorf("Content.Path = %q", cfg.Content.Path)
	}
	if cfg.Paths.Log != filepath.Join("/srv/site", ".showcase", "events.log") {
		t.Errorf("Paths.Log = %q", cfg.Paths.Log)
	}
	if cfg.Paths.TUILog != "/var/log/showcase.log" {
		t.Errorf("absolute path should be kept, got %q", cfg.Paths.TUILog)
	}
}

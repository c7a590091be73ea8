package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"github.com/npratt/showcase/internal/testutil"
)

// chdirTemp moves into a fresh directory with no global config.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	logger := slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))
	cmd := newRootCmd(viper.New(), logger, &slog.LevelVar{})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "showcase "+version {
		t.Errorf("unexpected output %q", out)
	}
}

func TestInitThenValidate(t *testing.T) {
	dir := chdirTemp(t)

	out, err := execute(t, "init")
	if err != nil {
		t.Fatalf("init: %v\n%s", err, out)
	}
	if !testutil.FileExists(t, filepath.Join(dir, ".showcase", "content.yaml")) {
		t.Fatal("content.yaml not scaffolded")
	}

	// validate with no argument reads content.path from the scaffolded config
	out, err = execute(t, "validate")
	if err != nil {
		t.Fatalf("validate: %v\n%s", err, out)
	}
	if !strings.Contains(out, ".showcase/content.yaml: ok") {
		t.Errorf("unexpected validate output %q", out)
	}
}

func TestInitDryRunFlag(t *testing.T) {
	dir := chdirTemp(t)

	out, err := execute(t, "init", "--dry-run", "--dir", "site")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "DRY RUN") {
		t.Errorf("unexpected output %q", out)
	}
	if testutil.FileExists(t, filepath.Join(dir, "site")) {
		t.Error("dry run should not create the directory")
	}
}

func TestValidateCommandWithPath(t *testing.T) {
	chdirTemp(t)
	path := testutil.WriteFile(t, t.TempDir(), "bad.yaml", testutil.InvalidContentYAML)

	out, err := execute(t, "validate", path, "--json")
	if err == nil {
		t.Fatal("expected an error for invalid content")
	}
	if !strings.Contains(out, `"valid": false`) {
		t.Errorf("unexpected output %q", out)
	}
}

func TestEventsCommandUsesLogFileFlag(t *testing.T) {
	chdirTemp(t)
	path := filepath.Join(t.TempDir(), "events.log")
	writeEventLog(t, path, indexEvent(1), indexEvent(2))

	out, err := execute(t, "events", "--log-file", path, "--count", "1")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "[09:30:05] clients: 1 -> 2 of 3 (timer)" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestPreviewRejectsConflictingModes(t *testing.T) {
	chdirTemp(t)

	_, err := execute(t, "preview", "--tui", "--headless")
	if err == nil || !strings.Contains(err.Error(), "incompatible") {
		t.Fatalf("expected incompatible flags error, got %v", err)
	}
}

func TestConfigFromEnvironment(t *testing.T) {
	chdirTemp(t)
	t.Setenv("SHOWCASE_ROTATION_INTERVAL", "0s")

	_, err := execute(t, "validate")
	if err == nil || !strings.Contains(err.Error(), "rotation.interval") {
		t.Fatalf("expected rotation.interval error from env override, got %v", err)
	}
}

func TestCommandName(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"showcase"}, "showcase"},
		{[]string{"showcase", "--verbose", "preview"}, "preview"},
		{[]string{"showcase", "events", "--follow"}, "events"},
	}
	for _, tt := range tests {
		if got := commandName(tt.args); got != tt.want {
			t.Errorf("commandName(%v) = %q, want %q", tt.args, got, tt.want)
		}
	}
}

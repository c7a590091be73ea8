package initcmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npratt/showcase/internal/content"
)

func TestBuildFileList(t *testing.T) {
	files := BuildFileList()
	if len(files) != 3 {
		t.Fatalf("expected 3 files, got %d", len(files))
	}

	want := map[string]bool{"config.yaml": false, "content.yaml": false, ".gitignore": true}
	for _, f := range files {
		isAppend, ok := want[f.Path]
		if !ok {
			t.Errorf("unexpected file %s", f.Path)
			continue
		}
		if f.IsAppend != isAppend {
			t.Errorf("%s: IsAppend = %v, want %v", f.Path, f.IsAppend, isAppend)
		}
		if f.Content == "" {
			t.Errorf("%s: empty content", f.Path)
		}
	}
}

func TestStarterContentIsValid(t *testing.T) {
	doc, err := content.Parse([]byte(MustReadTemplate("content.yaml")), content.FormatYAML)
	if err != nil {
		t.Fatalf("starter content does not parse: %v", err)
	}
	if err := doc.Validate(); err != nil {
		t.Fatalf("starter content does not validate: %v", err)
	}
	if len(doc.Clients.Items) < 2 {
		t.Errorf("starter clients should rotate, got %d items", len(doc.Clients.Items))
	}
}

func TestRun_DryRun(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".showcase")
	var buf bytes.Buffer

	result, err := Run(Options{DryRun: true, Dir: dir, Writer: &buf})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("dry run should not create the directory")
	}
	out := buf.String()
	if !strings.Contains(out, "DRY RUN") {
		t.Error("output should mention DRY RUN")
	}
	if !strings.Contains(out, "Would create:") {
		t.Error("output should list files to create")
	}
	if len(result.Created) != 2 || len(result.Appended) != 1 {
		t.Errorf("created=%v appended=%v", result.Created, result.Appended)
	}
}

func TestRun_Install(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".showcase")
	var buf bytes.Buffer

	result, err := Run(Options{Dir: dir, Writer: &buf})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, name := range []string{"config.yaml", "content.yaml", ".gitignore"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("%s not created: %v", name, err)
		}
	}
	if len(result.Created) != 2 {
		t.Errorf("expected 2 created, got %v", result.Created)
	}
	if !strings.Contains(buf.String(), "showcase initialized") {
		t.Errorf("missing success message in %q", buf.String())
	}
}

func TestRun_DefaultDir(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	tmp := t.TempDir()
	if err := os.Chdir(tmp); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	result, err := Run(Options{Writer: &bytes.Buffer{}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TargetDir != DefaultDir {
		t.Errorf("TargetDir = %q, want %q", result.TargetDir, DefaultDir)
	}
	if _, err := os.Stat(filepath.Join(tmp, DefaultDir, "content.yaml")); err != nil {
		t.Errorf("content.yaml not created in default dir: %v", err)
	}
}

func TestRun_ChangesWithoutForce(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("rotation:\n  interval: 9s\n"), 0644); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer

	result, err := Run(Options{Dir: dir, Writer: &buf})
	if !errors.Is(err, ErrChanges) {
		t.Fatalf("expected ErrChanges, got %v", err)
	}

	data, _ := os.ReadFile(configPath)
	if string(data) != "rotation:\n  interval: 9s\n" {
		t.Error("existing file should not be modified without --force")
	}
	if len(result.Skipped) != 1 || result.Skipped[0] != "config.yaml" {
		t.Errorf("skipped = %v", result.Skipped)
	}
	out := buf.String()
	if !strings.Contains(out, "-  interval: 9s") {
		t.Errorf("output should include a diff, got %q", out)
	}
	if !strings.Contains(out, "--force") {
		t.Error("output should suggest --force")
	}
}

func TestRun_ForceOverwrites(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}

	result, err := Run(Options{Dir: dir, Force: true, Writer: &bytes.Buffer{}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, _ := os.ReadFile(configPath)
	if string(data) != MustReadTemplate("config.yaml") {
		t.Error("config.yaml should be overwritten with the template")
	}
	if len(result.Overwritten) != 1 || result.Overwritten[0] != "config.yaml" {
		t.Errorf("overwritten = %v", result.Overwritten)
	}
}

func TestRun_SkipsUnchangedFiles(t *testing.T) {
	dir := t.TempDir()
	if _, err := Run(Options{Dir: dir, Writer: &bytes.Buffer{}}); err != nil {
		t.Fatalf("first run: %v", err)
	}

	var buf bytes.Buffer
	result, err := Run(Options{Dir: dir, Writer: &buf})
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if len(result.Unchanged) != 3 {
		t.Errorf("expected 3 unchanged, got %v", result.Unchanged)
	}
	if !strings.Contains(buf.String(), "already set up") {
		t.Errorf("expected already set up message, got %q", buf.String())
	}
}

func TestRun_GitignoreKeepsUserLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".gitignore")
	if err := os.WriteFile(path, []byte("drafts/\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Run(Options{Dir: dir, Writer: &bytes.Buffer{}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, _ := os.ReadFile(path)
	got := string(data)
	if !strings.HasPrefix(got, "drafts/\n\n") {
		t.Errorf("user lines should be kept first, got %q", got)
	}
	if strings.Count(got, managedSectionBegin) != 1 {
		t.Errorf("expected one managed section, got %q", got)
	}
}

func TestHandleManagedSection(t *testing.T) {
	section := managedSectionBegin + "\nnew\n" + managedSectionEnd + "\n"

	tests := []struct {
		name     string
		existing string
		want     string
	}{
		{"empty", "", section},
		{"append", "a\n", "a\n\n" + section},
		{
			"replace in place",
			"a\n\n" + managedSectionBegin + "\nold\n" + managedSectionEnd + "\n\nb\n",
			"a\n\n" + managedSectionBegin + "\nnew\n" + managedSectionEnd + "\n\nb\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := handleManagedSection(tt.existing, section); got != tt.want {
				t.Errorf("handleManagedSection() = %q, want %q", got, tt.want)
			}
		})
	}
}

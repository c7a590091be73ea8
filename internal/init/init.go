// Package initcmd scaffolds a .showcase directory with a starter config and
// content document.
package initcmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/npratt/showcase/internal/content"
)

// DefaultDir is where init writes unless told otherwise.
const DefaultDir = ".showcase"

// ErrChanges is returned when existing files differ and Force is not set.
var ErrChanges = errors.New("files have changes (use --force to overwrite)")

// Options configures the init command behavior.
type Options struct {
	DryRun bool
	Force  bool
	Dir    string    // Target directory (defaults to DefaultDir)
	Writer io.Writer // Output writer (defaults to os.Stdout)
}

// InstallFile represents a file to be installed.
type InstallFile struct {
	Path     string // Relative path within the target directory
	Content  string // File content
	IsAppend bool   // If true, maintain a managed section instead of replacing
}

// Result contains the outcome of the init operation.
type Result struct {
	TargetDir   string
	Created     []string
	Appended    []string
	Skipped     []string
	Unchanged   []string
	Overwritten []string
}

// FileStatus represents the status of a file to be installed.
type FileStatus struct {
	Path      string // Relative path within the target directory
	Exists    bool   // True if file exists
	Unchanged bool   // True if existing content matches new content
	Diff      string // Unified diff if changed (empty if unchanged or new)
}

const (
	managedSectionBegin = "# >>> showcase-managed"
	managedSectionEnd   = "# <<< showcase-managed"
)

// BuildFileList returns the files init installs.
func BuildFileList() []InstallFile {
	return []InstallFile{
		{Path: "config.yaml", Content: MustReadTemplate("config.yaml")},
		{Path: "content.yaml", Content: MustReadTemplate("content.yaml")},
		{
			Path: ".gitignore",
			Content: managedSectionBegin + "\n" +
				"events.log\nevents.log.*.bak\nshowcase*.log\n" +
				managedSectionEnd + "\n",
			IsAppend: true,
		},
	}
}

// Run executes the init command with the given options.
func Run(opts Options) (*Result, error) {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}
	if opts.Dir == "" {
		opts.Dir = DefaultDir
	}

	files := BuildFileList()
	statuses := checkFileStatuses(opts.Dir, files)

	if opts.DryRun {
		return showDryRun(opts.Writer, opts.Dir, files, statuses), nil
	}

	var changed []FileStatus
	for _, s := range statuses {
		if s.Exists && !s.Unchanged {
			changed = append(changed, s)
		}
	}
	if len(changed) > 0 && !opts.Force {
		return showChanges(opts.Writer, opts.Dir, statuses), ErrChanges
	}

	return installFiles(opts.Writer, opts.Dir, files, statuses)
}

// checkFileStatuses compares each file against what is on disk. Managed
// section files compare only their managed block.
func checkFileStatuses(targetDir string, files []InstallFile) []FileStatus {
	statuses := make([]FileStatus, 0, len(files))
	for _, f := range files {
		status := FileStatus{Path: f.Path}
		path := filepath.Join(targetDir, f.Path)

		data, err := os.ReadFile(path)
		if err != nil {
			statuses = append(statuses, status)
			continue
		}
		existing := string(data)

		if f.IsAppend {
			// Managed sections never clobber user lines, so they never need --force.
			if section, ok := managedSection(existing); ok &&
				strings.TrimSpace(section) == strings.TrimSpace(f.Content) {
				status.Exists = true
				status.Unchanged = true
			}
			statuses = append(statuses, status)
			continue
		}

		status.Exists = true
		if existing == f.Content {
			status.Unchanged = true
		} else {
			status.Diff = UnifiedDiff("existing", "new", existing, f.Content)
		}
		statuses = append(statuses, status)
	}
	return statuses
}

// showDryRun displays what would be changed without making changes.
func showDryRun(w io.Writer, targetDir string, files []InstallFile, statuses []FileStatus) *Result {
	_, _ = fmt.Fprintln(w, "DRY RUN - No changes will be made")
	_, _ = fmt.Fprintln(w)

	result := &Result{TargetDir: targetDir}
	for i, f := range files {
		path := filepath.Join(targetDir, f.Path)
		status := statuses[i]

		switch {
		case status.Exists && status.Unchanged:
			_, _ = fmt.Fprintf(w, "Already up to date: %s\n", path)
			result.Unchanged = append(result.Unchanged, f.Path)
		case status.Exists:
			_, _ = fmt.Fprintf(w, "Would overwrite (has changes): %s\n", path)
			_, _ = fmt.Fprintln(w, status.Diff)
			result.Skipped = append(result.Skipped, f.Path)
		case f.IsAppend:
			_, _ = fmt.Fprintf(w, "Would update managed section: %s\n", path)
			result.Appended = append(result.Appended, f.Path)
		default:
			_, _ = fmt.Fprintf(w, "Would create: %s\n", path)
			result.Created = append(result.Created, f.Path)
		}
	}

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Run without --dry-run to apply changes.")
	return result
}

// showChanges displays files with changes and their diffs.
func showChanges(w io.Writer, targetDir string, statuses []FileStatus) *Result {
	result := &Result{TargetDir: targetDir}

	_, _ = fmt.Fprintln(w, "The following files have changes:")
	_, _ = fmt.Fprintln(w)
	for _, s := range statuses {
		if !s.Exists {
			continue
		}
		if s.Unchanged {
			result.Unchanged = append(result.Unchanged, s.Path)
			continue
		}
		_, _ = fmt.Fprintf(w, "%s:\n", filepath.Join(targetDir, s.Path))
		_, _ = fmt.Fprintln(w, s.Diff)
		result.Skipped = append(result.Skipped, s.Path)
	}

	_, _ = fmt.Fprintln(w, "Use --force to overwrite changed files.")
	return result
}

// installFiles creates the directory and writes files.
func installFiles(w io.Writer, targetDir string, files []InstallFile, statuses []FileStatus) (*Result, error) {
	result := &Result{TargetDir: targetDir}

	if err := os.MkdirAll(targetDir, 0755); err != nil {
		return result, fmt.Errorf("create directory %s: %w", targetDir, err)
	}

	for i, f := range files {
		path := filepath.Join(targetDir, f.Path)
		status := statuses[i]

		if status.Exists && status.Unchanged {
			_, _ = fmt.Fprintf(w, "Already up to date: %s\n", path)
			result.Unchanged = append(result.Unchanged, f.Path)
			continue
		}

		if f.IsAppend {
			existing := ""
			if data, err := os.ReadFile(path); err == nil {
				existing = string(data)
			}
			if err := os.WriteFile(path, []byte(handleManagedSection(existing, f.Content)), 0644); err != nil {
				return result, fmt.Errorf("write %s: %w", path, err)
			}
			_, _ = fmt.Fprintf(w, "Updated: %s\n", path)
			result.Appended = append(result.Appended, f.Path)
			continue
		}

		if err := os.WriteFile(path, []byte(f.Content), 0644); err != nil {
			return result, fmt.Errorf("write %s: %w", path, err)
		}
		if status.Exists {
			_, _ = fmt.Fprintf(w, "Overwritten: %s\n", path)
			result.Overwritten = append(result.Overwritten, f.Path)
		} else {
			_, _ = fmt.Fprintf(w, "Created: %s\n", path)
			result.Created = append(result.Created, f.Path)
		}
	}

	// The starter content must always load.
	if _, err := content.Load(filepath.Join(targetDir, "content.yaml")); err != nil {
		return result, fmt.Errorf("check scaffolded content: %w", err)
	}

	if len(result.Created)+len(result.Overwritten)+len(result.Appended) == 0 {
		_, _ = fmt.Fprintln(w)
		_, _ = fmt.Fprintln(w, "showcase is already set up.")
		return result, nil
	}

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "showcase initialized.")
	_, _ = fmt.Fprintln(w, "Edit content.yaml, then run 'showcase preview'.")
	return result, nil
}

// handleManagedSection replaces the managed block in existingContent, or
// appends it when absent.
func handleManagedSection(existingContent, newSection string) string {
	beginIdx := strings.Index(existingContent, managedSectionBegin)
	endIdx := strings.Index(existingContent, managedSectionEnd)

	if beginIdx >= 0 && endIdx > beginIdx {
		before := strings.TrimRight(existingContent[:beginIdx], "\n")
		after := strings.TrimLeft(existingContent[endIdx+len(managedSectionEnd):], "\n")

		out := newSection
		if before != "" {
			out = before + "\n\n" + out
		}
		if after != "" {
			out = strings.TrimRight(out, "\n") + "\n\n" + after
		}
		return out
	}

	if len(existingContent) > 0 {
		return strings.TrimRight(existingContent, "\n") + "\n\n" + newSection
	}
	return newSection
}

// managedSection extracts the managed block, markers included.
func managedSection(s string) (string, bool) {
	beginIdx := strings.Index(s, managedSectionBegin)
	endIdx := strings.Index(s, managedSectionEnd)
	if beginIdx < 0 || endIdx < beginIdx {
		return "", false
	}
	return s[beginIdx : endIdx+len(managedSectionEnd)], true
}

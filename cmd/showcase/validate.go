package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npratt/showcase/internal/content"
)

// ErrValidation is returned when the content document has problems.
var ErrValidation = errors.New("content is invalid")

// sectionReport summarizes one rotating section for validate output.
type sectionReport struct {
	Name       string `json:"name"`
	Items      int    `json:"items"`
	IntervalMs int64  `json:"interval_ms"`
	Enabled    bool   `json:"enabled"`
	Rotates    bool   `json:"rotates"`
}

// validateReport is the validate command's JSON output.
type validateReport struct {
	Path     string          `json:"path"`
	Valid    bool            `json:"valid"`
	Problems []string        `json:"problems,omitempty"`
	Sections []sectionReport `json:"sections,omitempty"`
}

// runValidate loads path and reports problems. Decode failures and invalid
// documents both return ErrValidation after printing the report.
func runValidate(w io.Writer, path string, asJSON bool) error {
	report := validateReport{Path: path, Valid: true}

	doc, err := loadForReport(path)
	if err != nil {
		report.Valid = false
		report.Problems = splitProblems(err)
	} else {
		for _, name := range content.RotatingNames() {
			r, _ := doc.Rotating(name)
			report.Sections = append(report.Sections, sectionReport{
				Name:       name,
				Items:      len(r.Items),
				IntervalMs: r.Interval().Milliseconds(),
				Enabled:    r.IsEnabled(),
				Rotates:    r.IsEnabled() && len(r.Items) > 1,
			})
		}
	}

	if asJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal report: %w", err)
		}
		_, _ = fmt.Fprintln(w, string(data))
	} else {
		printReport(w, report)
	}

	if !report.Valid {
		return fmt.Errorf("%w: %s", ErrValidation, path)
	}
	return nil
}

// loadForReport is content.Load without the path prefix on validation
// errors, so each problem prints on its own line.
func loadForReport(path string) (*content.Document, error) {
	format, err := content.FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := content.Parse(data, format)
	if err != nil {
		return nil, err
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

func printReport(w io.Writer, report validateReport) {
	if !report.Valid {
		_, _ = fmt.Fprintf(w, "%s: invalid\n", report.Path)
		for _, p := range report.Problems {
			_, _ = fmt.Fprintf(w, "  - %s\n", p)
		}
		return
	}

	_, _ = fmt.Fprintf(w, "%s: ok\n", report.Path)
	for _, s := range report.Sections {
		mode := "static"
		if s.Rotates {
			mode = fmt.Sprintf("rotates every %dms", s.IntervalMs)
		}
		_, _ = fmt.Fprintf(w, "  %s: %d items, %s\n", s.Name, s.Items, mode)
	}
}

// splitProblems flattens a joined error into one message per line.
func splitProblems(err error) []string {
	var problems []string
	for _, line := range strings.Split(err.Error(), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			problems = append(problems, line)
		}
	}
	return problems
}

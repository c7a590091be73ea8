package initcmd

import (
	"strings"
	"testing"
)

func TestUnifiedDiff_Identical(t *testing.T) {
	if got := UnifiedDiff("a", "b", "same\n", "same\n"); got != "" {
		t.Errorf("expected empty diff, got %q", got)
	}
}

func TestUnifiedDiff_Changes(t *testing.T) {
	tests := []struct {
		name     string
		old, new string
		contains []string
	}{
		{"add line", "a\n", "a\nb\n", []string{"+b"}},
		{"remove line", "a\nb\n", "a\n", []string{"-b"}},
		{"modify line", "interval: 4s\n", "interval: 9s\n", []string{"-interval: 4s", "+interval: 9s"}},
		{"headers", "x\n", "y\n", []string{"--- existing", "+++ new", "@@"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diff := UnifiedDiff("existing", "new", tt.old, tt.new)
			for _, want := range tt.contains {
				if !strings.Contains(diff, want) {
					t.Errorf("diff missing %q:\n%s", want, diff)
				}
			}
		})
	}
}

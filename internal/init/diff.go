package initcmd

import "github.com/aymanbagabas/go-udiff"

// UnifiedDiff generates a unified diff between two strings.
// Returns empty string if contents are identical.
func UnifiedDiff(oldName, newName, oldContent, newContent string) string {
	if oldContent == newContent {
		return ""
	}
	return udiff.Unified(oldName, newName, oldContent, newContent)
}

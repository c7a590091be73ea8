package events

import (
	"fmt"
	"strings"
)

const (
	maxListItems      = 5
	truncateIndicator = "..."
)

// Format converts an event to a one-line human-readable string.
// Returns empty string for nil or unknown event types.
func Format(event Event) string {
	if event == nil {
		return ""
	}

	switch e := event.(type) {
	case *IndexChangedEvent:
		return fmt.Sprintf("%s: %d -> %d of %d (%s)", e.Section, e.Previous, e.Index, e.ItemCount, e.Cause)
	case *VisibilityEvent:
		if e.Visible {
			return fmt.Sprintf("%s: items shown", e.Section)
		}
		return fmt.Sprintf("%s: items hidden", e.Section)
	case *StateChangedEvent:
		return fmt.Sprintf("%s: %s -> %s", e.Section, e.From, e.To)
	case *ContentLoadedEvent:
		return fmt.Sprintf("content loaded from %s [%s]", e.Path, joinLimited(e.Sections))
	case *ContentReloadedEvent:
		return formatContentReloaded(e)
	case *PreviewStartEvent:
		mode := "tui"
		if e.Headless {
			mode = "headless"
		}
		return fmt.Sprintf("preview started (%s) with %s", mode, e.ContentPath)
	case *PreviewStopEvent:
		if e.Reason == "" {
			return "preview stopped"
		}
		return "preview stopped: " + e.Reason
	case *ErrorEvent:
		return fmt.Sprintf("%s: %s", strings.ToUpper(e.Severity), e.Message)
	default:
		return ""
	}
}

// FormatWithTimestamp formats an event with a clock-time prefix.
func FormatWithTimestamp(event Event) string {
	text := Format(event)
	if text == "" {
		return ""
	}
	return fmt.Sprintf("[%s] %s", event.Timestamp().Format("15:04:05"), text)
}

func formatContentReloaded(e *ContentReloadedEvent) string {
	var parts []string
	if len(e.Reset) > 0 {
		parts = append(parts, "reset "+joinLimited(e.Reset))
	}
	if len(e.Remounted) > 0 {
		parts = append(parts, "remounted "+joinLimited(e.Remounted))
	}
	if len(parts) == 0 {
		return "content reloaded"
	}
	return "content reloaded: " + strings.Join(parts, ", ")
}

// joinLimited joins names, eliding past maxListItems.
func joinLimited(names []string) string {
	if len(names) <= maxListItems {
		return strings.Join(names, ", ")
	}
	return strings.Join(names[:maxListItems], ", ") + ", " + truncateIndicator
}

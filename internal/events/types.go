// Package events defines the event taxonomy and the pub/sub plumbing that
// carries rotation and content changes to presentation consumers.
package events

import "time"

// EventType identifies the category and nature of an event.
type EventType string

// Event types.
const (
	// Rotation events
	EventIndexChanged EventType = "rotation.index_changed"
	EventVisibility   EventType = "rotation.visibility"
	EventStateChanged EventType = "rotation.state_changed"

	// Content events
	EventContentLoaded   EventType = "content.loaded"
	EventContentReloaded EventType = "content.reloaded"

	// Preview lifecycle events
	EventPreviewStart EventType = "preview.start"
	EventPreviewStop  EventType = "preview.stop"

	// Error events
	EventError EventType = "error"
)

// Source constants identify the origin of events.
const (
	SourceRotation = "rotation"
	SourceContent  = "content"
	SourceInternal = "showcase"
)

// Cause describes who moved the active index.
type Cause string

// Index change causes. Only these three writers may touch the index.
const (
	CauseTimer  Cause = "timer"
	CauseSelect Cause = "select"
	CauseReset  Cause = "reset"
)

// Event is the base interface for all events in the system.
type Event interface {
	Type() EventType
	Timestamp() time.Time
	Source() string
}

// Publisher accepts events. Router implements it; tests may substitute a recorder.
type Publisher interface {
	Emit(event Event)
}

// BaseEvent provides the common fields for all events.
type BaseEvent struct {
	EventType EventType `json:"type"`
	Time      time.Time `json:"timestamp"`
	Src       string    `json:"source"`
}

// Type returns the event type.
func (e BaseEvent) Type() EventType {
	return e.EventType
}

// Timestamp returns when the event occurred.
func (e BaseEvent) Timestamp() time.Time {
	return e.Time
}

// Source returns the origin of the event.
func (e BaseEvent) Source() string {
	return e.Src
}

// IndexChangedEvent is emitted whenever a controller's active index moves.
type IndexChangedEvent struct {
	BaseEvent
	ControllerID string `json:"controller_id"`
	Section      string `json:"section"`
	Index        int    `json:"index"`
	Previous     int    `json:"previous"`
	ItemCount    int    `json:"item_count"`
	Cause        Cause  `json:"cause"`
}

// VisibilityEvent is emitted when the items-visible flag flips.
type VisibilityEvent struct {
	BaseEvent
	ControllerID string `json:"controller_id"`
	Section      string `json:"section"`
	Visible      bool   `json:"visible"`
}

// StateChangedEvent is emitted on rotation state transitions.
type StateChangedEvent struct {
	BaseEvent
	ControllerID string `json:"controller_id"`
	Section      string `json:"section"`
	From         string `json:"from"`
	To           string `json:"to"`
}

// ContentLoadedEvent is emitted when a content document is first loaded.
type ContentLoadedEvent struct {
	BaseEvent
	Path     string   `json:"path"`
	Sections []string `json:"sections"`
}

// ContentReloadedEvent is emitted after a content document is swapped in.
type ContentReloadedEvent struct {
	BaseEvent
	Path      string   `json:"path,omitempty"`
	Remounted []string `json:"remounted,omitempty"`
	Reset     []string `json:"reset,omitempty"`
}

// PreviewStartEvent is emitted when the preview starts.
type PreviewStartEvent struct {
	BaseEvent
	ContentPath string `json:"content_path"`
	Headless    bool   `json:"headless"`
}

// PreviewStopEvent is emitted when the preview stops.
type PreviewStopEvent struct {
	BaseEvent
	Reason string `json:"reason,omitempty"`
}

// Severity constants for error events.
const (
	SeverityWarning = "warning"
	SeverityError   = "error"
)

// ErrorEvent is emitted for any error condition.
type ErrorEvent struct {
	BaseEvent
	Message  string            `json:"message"`
	Severity string            `json:"severity"`
	Context  map[string]string `json:"context,omitempty"`
}

// NewEvent creates a BaseEvent with the given type and source.
func NewEvent(eventType EventType, source string) BaseEvent {
	return BaseEvent{
		EventType: eventType,
		Time:      time.Now(),
		Src:       source,
	}
}

// NewRotationEvent creates a BaseEvent stamped with the given time and the
// rotation source. Controllers pass their clock's time so fake clocks line up.
func NewRotationEvent(eventType EventType, at time.Time) BaseEvent {
	return BaseEvent{
		EventType: eventType,
		Time:      at,
		Src:       SourceRotation,
	}
}

// NewContentEvent creates a BaseEvent with content as the source.
func NewContentEvent(eventType EventType) BaseEvent {
	return NewEvent(eventType, SourceContent)
}

// NewInternalEvent creates a BaseEvent with showcase as the source.
func NewInternalEvent(eventType EventType) BaseEvent {
	return NewEvent(eventType, SourceInternal)
}

package events

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownEventType is returned by Decode for types this build does not know.
var ErrUnknownEventType = errors.New("unknown event type")

// Decode parses one JSON line written by LogSink back into its concrete event.
func Decode(line []byte) (Event, error) {
	var envelope struct {
		Type EventType `json:"type"`
	}
	if err := json.Unmarshal(line, &envelope); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}

	var event Event
	switch envelope.Type {
	case EventIndexChanged:
		event = &IndexChangedEvent{}
	case EventVisibility:
		event = &VisibilityEvent{}
	case EventStateChanged:
		event = &StateChangedEvent{}
	case EventContentLoaded:
		event = &ContentLoadedEvent{}
	case EventContentReloaded:
		event = &ContentReloadedEvent{}
	case EventPreviewStart:
		event = &PreviewStartEvent{}
	case EventPreviewStop:
		event = &PreviewStopEvent{}
	case EventError:
		event = &ErrorEvent{}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEventType, envelope.Type)
	}

	if err := json.Unmarshal(line, event); err != nil {
		return nil, fmt.Errorf("decode %s: %w", envelope.Type, err)
	}
	return event, nil
}

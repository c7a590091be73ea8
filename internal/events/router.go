package events

import (
	"log/slog"
	"sync"
	"sync/atomic"
)

// DefaultBufferSize is the default channel buffer size for subscribers.
const DefaultBufferSize = 100

// subscriberEntry holds a subscriber channel and its metadata.
type subscriberEntry struct {
	ch chan Event
}

// Router fans events out from controllers and loaders to presentation
// consumers. Each subscriber gets its own buffered channel.
type Router struct {
	subscribers []subscriberEntry
	bufferSize  int
	logger      *slog.Logger
	dropped     atomic.Int64
	mu          sync.RWMutex
	closed      bool
}

// RouterOption configures a Router.
type RouterOption func(*Router)

// WithRouterLogger sets the logger used for drop warnings.
func WithRouterLogger(logger *slog.Logger) RouterOption {
	return func(r *Router) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRouter creates a new event router with the specified default buffer size.
// If bufferSize is 0 or negative, DefaultBufferSize is used.
func NewRouter(bufferSize int, opts ...RouterOption) *Router {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	r := &Router{
		bufferSize: bufferSize,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Emit publishes an event to all subscribers.
// Delivery never blocks: a full subscriber channel drops the event and the
// drop is counted. Emit is safe to call concurrently and after Close.
func (r *Router) Emit(event Event) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return
	}

	for _, sub := range r.subscribers {
		select {
		case sub.ch <- event:
		default:
			r.dropped.Add(1)
			r.logger.Warn("event dropped: subscriber channel full",
				"event_type", event.Type(),
				"source", event.Source(),
			)
		}
	}
}

// Subscribe returns a channel that receives all emitted events.
// The channel has the router's default buffer size and is closed when the
// router is closed.
func (r *Router) Subscribe() <-chan Event {
	return r.SubscribeBuffered(r.bufferSize)
}

// SubscribeBuffered returns a channel with the specified buffer size.
// The TUI uses a larger buffer so bursts of visibility pulses are not lost.
func (r *Router) SubscribeBuffered(size int) <-chan Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		ch := make(chan Event)
		close(ch)
		return ch
	}

	ch := make(chan Event, size)
	r.subscribers = append(r.subscribers, subscriberEntry{ch: ch})
	return ch
}

// Unsubscribe removes a subscription and closes its channel.
// Unknown or already removed channels are ignored.
func (r *Router) Unsubscribe(ch <-chan Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, sub := range r.subscribers {
		if sub.ch == ch {
			r.subscribers = append(r.subscribers[:i], r.subscribers[i+1:]...)
			close(sub.ch)
			return
		}
	}
}

// Dropped reports how many deliveries were dropped because a subscriber was full.
func (r *Router) Dropped() int64 {
	return r.dropped.Load()
}

// Close closes all subscriber channels. Later Emits are no-ops and later
// Subscribes return closed channels. Close is idempotent.
func (r *Router) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}

	r.closed = true
	for _, sub := range r.subscribers {
		close(sub.ch)
	}
	r.subscribers = nil
}

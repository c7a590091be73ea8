// Package rotation implements the timed rotation controller behind the
// auto-advancing sections of the site: a selection index that advances on a
// timer and supports pause, resume, manual selection, and reset when the
// content list changes length.
//
// A Controller owns one RotationState. Only three writers move the active
// index: the Driver tick, Select, and SetItemCount. All of them, together
// with Pause, Resume and Close, run under a single mutex, so a tick can never
// interleave with a user action.
package rotation

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"k8s.io/utils/clock"

	"github.com/npratt/showcase/internal/events"
)

// Defaults applied when Config leaves a duration unset.
const (
	DefaultInterval        = 4 * time.Second
	DefaultVisibilityDelay = 100 * time.Millisecond
)

// State is the controller's externally visible mode.
type State string

// Controller states.
const (
	// StateIdle means there is nothing to rotate: zero items, or a single
	// item that can never move.
	StateIdle     State = "idle"
	StateRunning  State = "running"
	StatePaused   State = "paused"
	StateDisabled State = "disabled"

	// stateUnmounted is only reported in events for mount and Close.
	stateUnmounted State = "unmounted"
)

// Config is the immutable rotation setup supplied by content.
type Config struct {
	ItemCount       int
	Interval        time.Duration
	Enabled         bool
	VisibilityDelay time.Duration
}

func (c Config) normalized() Config {
	if c.ItemCount < 0 {
		c.ItemCount = 0
	}
	if c.Interval <= 0 {
		c.Interval = DefaultInterval
	}
	if c.VisibilityDelay <= 0 {
		c.VisibilityDelay = DefaultVisibilityDelay
	}
	return c
}

// Snapshot is a point-in-time copy of a controller's state.
type Snapshot struct {
	ID           string
	Section      string
	State        State
	ActiveIndex  int
	ItemCount    int
	Paused       bool
	ItemsVisible bool
	Interval     time.Duration
	// TickStarted is when the pending interval began; zero when no tick is armed.
	TickStarted time.Time
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock sets the time source. Tests pass a fake clock.
func WithClock(clk clock.WithDelayedExecution) Option {
	return func(c *Controller) {
		if clk != nil {
			c.clock = clk
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithPublisher sets where state changes are published.
func WithPublisher(pub events.Publisher) Option {
	return func(c *Controller) {
		c.pub = pub
	}
}

// WithSection names the section this controller drives (e.g. "clients").
func WithSection(name string) Option {
	return func(c *Controller) {
		c.section = name
	}
}

// WithID overrides the generated controller ID.
func WithID(id string) Option {
	return func(c *Controller) {
		if id != "" {
			c.id = id
		}
	}
}

// Controller is the rotation state machine.
type Controller struct {
	id      string
	section string
	cfg     Config
	clock   clock.WithDelayedExecution
	logger  *slog.Logger
	pub     events.Publisher
	driver  *Driver

	mu        sync.Mutex
	itemCount int
	active    int
	paused    bool
	vis       visibility
	state     State
	closed    bool
}

// New mounts a controller. It starts running immediately when there is more
// than one item and rotation is enabled.
func New(cfg Config, opts ...Option) *Controller {
	cfg = cfg.normalized()
	c := &Controller{
		id:     uuid.NewString(),
		cfg:    cfg,
		clock:  clock.RealClock{},
		logger: slog.Default(),
		state:  stateUnmounted,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With("section", c.section, "controller_id", c.id)
	c.driver = NewDriver(c.clock)
	c.vis = newVisibility(c.clock, cfg.VisibilityDelay)
	c.itemCount = cfg.ItemCount

	c.mu.Lock()
	defer c.mu.Unlock()
	c.syncLocked()
	c.logger.Debug("rotation mounted", "items", c.itemCount, "interval", cfg.Interval, "enabled", cfg.Enabled)
	return c
}

// ID returns the controller's instance ID.
func (c *Controller) ID() string {
	return c.id
}

// Section returns the section name the controller was created for.
func (c *Controller) Section() string {
	return c.section
}

// Config returns the configuration the controller was mounted with.
func (c *Controller) Config() Config {
	return c.cfg
}

// Advance moves to the next item, wrapping to 0 after the last one.
// It is a no-op with fewer than two items or after Close.
func (c *Controller) Advance() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.advanceLocked()
}

// Select makes i the active item. Out-of-range values are clamped into
// [0, ItemCount). When running, the interval restarts from zero.
func (c *Controller) Select(i int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || c.itemCount <= 1 {
		return
	}

	clamped := clampIndex(i, c.itemCount)
	if clamped != i {
		c.logger.Debug("select index clamped", "requested", i, "index", clamped)
	}
	c.setIndexLocked(clamped, events.CauseSelect)

	if c.state == StateRunning {
		c.startTimerLocked()
	}
}

// Pause suspends automatic advance and keeps the active index. Pausing an
// already paused controller changes nothing.
func (c *Controller) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || c.paused {
		return
	}
	c.paused = true
	c.syncLocked()
}

// Resume re-enables automatic advance with a full fresh interval.
// Resuming a controller that is not paused changes nothing.
func (c *Controller) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || !c.paused {
		return
	}
	c.paused = false
	c.syncLocked()
}

// SetItemCount applies an external change to the content list length. The
// active index is clamped into the new range; zero items releases all timers.
func (c *Controller) SetItemCount(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	if n < 0 {
		n = 0
	}
	if n == c.itemCount {
		return
	}

	c.logger.Debug("item count changed", "from", c.itemCount, "to", n)
	c.itemCount = n

	if n == 0 {
		c.active = 0
		if c.vis.cancel() {
			c.emitVisibilityLocked()
		}
	} else if c.active >= n {
		c.setIndexLocked(n-1, events.CauseReset)
	}
	c.syncLocked()
}

// Close unmounts the controller. Both the rotation timer and any pending
// visibility timer are cancelled before Close returns; nothing fires after.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.driver.StopAll()
	c.vis.stopTimer()
	c.closed = true

	from := c.state
	c.state = stateUnmounted
	c.emitStateLocked(from, stateUnmounted)
	c.logger.Debug("rotation unmounted")
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Snapshot{
		ID:           c.id,
		Section:      c.section,
		State:        c.state,
		ActiveIndex:  c.active,
		ItemCount:    c.itemCount,
		Paused:       c.paused,
		ItemsVisible: c.vis.visible,
		Interval:     c.cfg.Interval,
		TickStarted:  c.driver.ArmedAt(),
	}
}

// ActiveIndex returns the active item index.
func (c *Controller) ActiveIndex() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// ItemsVisible reports whether items should currently be shown.
func (c *Controller) ItemsVisible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.vis.visible
}

// State returns the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// onTick is the Driver callback. Ticks from a handle that was stopped or
// replaced while this callback was queued are discarded.
func (c *Controller) onTick(h Handle) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || c.state != StateRunning || c.driver.Current() != h {
		c.logger.Debug("stale tick discarded", "handle", h)
		return
	}
	c.advanceLocked()
}

// onShow is the visibility timer callback.
func (c *Controller) onShow(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	if c.vis.show(gen) {
		c.emitVisibilityLocked()
	}
}

func (c *Controller) advanceLocked() {
	if c.closed || c.itemCount <= 1 {
		return
	}
	c.setIndexLocked((c.active+1)%c.itemCount, events.CauseTimer)
}

// setIndexLocked is the single point where the active index changes.
func (c *Controller) setIndexLocked(i int, cause events.Cause) {
	if i == c.active {
		return
	}
	prev := c.active
	c.active = i

	if c.pub != nil {
		c.pub.Emit(&events.IndexChangedEvent{
			BaseEvent:    events.NewRotationEvent(events.EventIndexChanged, c.clock.Now()),
			ControllerID: c.id,
			Section:      c.section,
			Index:        i,
			Previous:     prev,
			ItemCount:    c.itemCount,
			Cause:        cause,
		})
	}

	if c.vis.hide(c.onShow) {
		c.emitVisibilityLocked()
	}
}

// syncLocked derives the state from the flags and starts or stops the
// driver to match.
func (c *Controller) syncLocked() {
	next := c.deriveLocked()

	switch {
	case next == StateRunning && !c.driver.Active():
		c.startTimerLocked()
	case next != StateRunning && c.driver.Active():
		c.driver.StopAll()
	}

	if next != c.state {
		from := c.state
		c.state = next
		c.emitStateLocked(from, next)
		c.logger.Debug("rotation state changed", "from", from, "to", next)
	}
}

func (c *Controller) deriveLocked() State {
	switch {
	case c.itemCount <= 1:
		return StateIdle
	case !c.cfg.Enabled:
		return StateDisabled
	case c.paused:
		return StatePaused
	default:
		return StateRunning
	}
}

func (c *Controller) startTimerLocked() {
	c.driver.Start(c.cfg.Interval, c.onTick)
}

func (c *Controller) emitStateLocked(from, to State) {
	if c.pub == nil {
		return
	}
	c.pub.Emit(&events.StateChangedEvent{
		BaseEvent:    events.NewRotationEvent(events.EventStateChanged, c.clock.Now()),
		ControllerID: c.id,
		Section:      c.section,
		From:         string(from),
		To:           string(to),
	})
}

func (c *Controller) emitVisibilityLocked() {
	if c.pub == nil {
		return
	}
	c.pub.Emit(&events.VisibilityEvent{
		BaseEvent:    events.NewRotationEvent(events.EventVisibility, c.clock.Now()),
		ControllerID: c.id,
		Section:      c.section,
		Visible:      c.vis.visible,
	})
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

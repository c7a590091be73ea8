// Package site assembles the per-section rotation controllers for a content
// document and keeps them in step with content reloads.
//
// Each rotating section gets its own Controller and Binding. Nothing is
// shared between sections, so two carousels on one page never influence
// each other.
package site

import (
	"log/slog"
	"sync"
	"time"

	"k8s.io/utils/clock"

	"github.com/npratt/showcase/internal/content"
	"github.com/npratt/showcase/internal/events"
	"github.com/npratt/showcase/internal/rotation"
)

// Defaults fill in rotation settings the content leaves unset.
type Defaults struct {
	Interval        time.Duration
	Enabled         bool
	VisibilityDelay time.Duration
}

// Section is one rotating block of the page.
type Section struct {
	Name       string
	Title      string
	Items      []content.Item
	Controller *rotation.Controller
	Binding    *rotation.Binding
}

// Option configures a Site.
type Option func(*Site)

// WithClock sets the clock handed to every controller.
func WithClock(clk clock.WithDelayedExecution) Option {
	return func(s *Site) {
		if clk != nil {
			s.clock = clk
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Site) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithDefaults sets the rotation defaults.
func WithDefaults(d Defaults) Option {
	return func(s *Site) {
		s.defaults = d
	}
}

// WithContentPath records where the document came from, for events.
func WithContentPath(path string) Option {
	return func(s *Site) {
		s.path = path
	}
}

// Site is the view context for one mounted document.
type Site struct {
	clock    clock.WithDelayedExecution
	logger   *slog.Logger
	pub      events.Publisher
	defaults Defaults
	path     string

	mu       sync.RWMutex
	doc      *content.Document
	sections map[string]*Section
	closed   bool
}

// New mounts a controller for every rotating section of doc.
// pub may be nil.
func New(doc *content.Document, pub events.Publisher, opts ...Option) *Site {
	s := &Site{
		clock:  clock.RealClock{},
		logger: slog.Default(),
		pub:    pub,
		defaults: Defaults{
			Interval: rotation.DefaultInterval,
			Enabled:  true,
		},
		doc:      doc,
		sections: make(map[string]*Section),
	}
	for _, opt := range opts {
		opt(s)
	}

	for _, name := range content.RotatingNames() {
		r, _ := doc.Rotating(name)
		s.sections[name] = s.mount(name, r)
	}

	s.emit(&events.ContentLoadedEvent{
		BaseEvent: events.NewContentEvent(events.EventContentLoaded),
		Path:      s.path,
		Sections:  content.RotatingNames(),
	})
	return s
}

// Document returns the current document.
func (s *Site) Document() *content.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc
}

// Section returns the named rotating section. The returned value is replaced,
// not mutated, when a reload remounts it, so callers should look it up again
// after a reload.
func (s *Site) Section(name string) (*Section, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sec, ok := s.sections[name]
	return sec, ok
}

// Sections returns the rotating sections in page order.
func (s *Site) Sections() []*Section {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Section, 0, len(s.sections))
	for _, name := range content.RotatingNames() {
		if sec, ok := s.sections[name]; ok {
			out = append(out, sec)
		}
	}
	return out
}

// Reload swaps in a new document. A section whose interval and enabled flag
// are unchanged keeps its controller and only has its item count reset; any
// other change unmounts the old controller and mounts a fresh one, carrying
// over hover and modal pauses.
func (s *Site) Reload(doc *content.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	var reset, remounted []string
	for _, name := range content.RotatingNames() {
		r, _ := doc.Rotating(name)
		old := s.sections[name]
		cfg := s.configFor(r)

		if old != nil && old.Controller.Config().Interval == cfg.Interval &&
			old.Controller.Config().Enabled == cfg.Enabled {
			old.Controller.SetItemCount(cfg.ItemCount)
			s.sections[name] = &Section{
				Name:       name,
				Title:      r.Title,
				Items:      r.Items,
				Controller: old.Controller,
				Binding:    old.Binding,
			}
			reset = append(reset, name)
			continue
		}

		next := s.mount(name, r)
		if old != nil {
			old.Controller.Close()
			if old.Binding.Hovering() {
				next.Binding.PointerEnter()
			}
			if old.Binding.ModalOpen() {
				next.Binding.OpenModal()
			}
		}
		s.sections[name] = next
		remounted = append(remounted, name)
	}
	s.doc = doc

	s.logger.Info("content reloaded", "reset", reset, "remounted", remounted)
	s.emit(&events.ContentReloadedEvent{
		BaseEvent: events.NewContentEvent(events.EventContentReloaded),
		Path:      s.path,
		Remounted: remounted,
		Reset:     reset,
	})
}

// Close unmounts every section. It is idempotent.
func (s *Site) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	for _, sec := range s.sections {
		sec.Controller.Close()
	}
}

func (s *Site) mount(name string, r content.Rotating) *Section {
	ctrl := rotation.New(s.configFor(r),
		rotation.WithClock(s.clock),
		rotation.WithLogger(s.logger),
		rotation.WithPublisher(s.pub),
		rotation.WithSection(name),
	)
	return &Section{
		Name:       name,
		Title:      r.Title,
		Items:      r.Items,
		Controller: ctrl,
		Binding:    rotation.NewBinding(ctrl),
	}
}

// configFor resolves a section's rotation config. Content values win over
// defaults; a globally disabled rotation stays disabled.
func (s *Site) configFor(r content.Rotating) rotation.Config {
	cfg := rotation.Config{
		ItemCount:       len(r.Items),
		Interval:        s.defaults.Interval,
		Enabled:         s.defaults.Enabled && r.IsEnabled(),
		VisibilityDelay: s.defaults.VisibilityDelay,
	}
	if r.IntervalMs != nil && *r.IntervalMs > 0 {
		cfg.Interval = r.Interval()
	}
	if cfg.Interval <= 0 {
		cfg.Interval = rotation.DefaultInterval
	}
	return cfg
}

func (s *Site) emit(e events.Event) {
	if s.pub != nil {
		s.pub.Emit(e)
	}
}

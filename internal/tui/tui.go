// Package tui provides a terminal preview of the site using bubbletea. It
// renders the page sections and drives the rotation bindings from the
// keyboard: focusing a rotating section stands in for the pointer hovering
// it, and the details modal is the hard pause.
package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"k8s.io/utils/clock"

	"github.com/npratt/showcase/internal/content"
	"github.com/npratt/showcase/internal/events"
	"github.com/npratt/showcase/internal/site"
)

// DefaultTick is the progress bar refresh rate.
const DefaultTick = 100 * time.Millisecond

// Site is the view context the preview renders.
type Site interface {
	Document() *content.Document
	Section(name string) (*site.Section, bool)
}

// TUI is the terminal preview.
type TUI struct {
	site          Site
	eventChan     <-chan events.Event
	onQuit        func()
	clock         clock.PassiveClock
	tick          time.Duration
	markdownStyle string
	wordWrap      int
}

// Option configures the TUI.
type Option func(*TUI)

// New creates a new TUI for s. eventChan feeds the event strip and should
// come from the same router the site publishes to.
func New(s Site, eventChan <-chan events.Event, opts ...Option) *TUI {
	t := &TUI{
		site:          s,
		eventChan:     eventChan,
		clock:         clock.RealClock{},
		tick:          DefaultTick,
		markdownStyle: "auto",
		wordWrap:      80,
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// WithOnQuit sets the callback invoked when the user quits.
func WithOnQuit(fn func()) Option {
	return func(t *TUI) {
		t.onQuit = fn
	}
}

// WithClock sets the clock used for interval progress. It must be the clock
// the site's controllers run on.
func WithClock(clk clock.PassiveClock) Option {
	return func(t *TUI) {
		if clk != nil {
			t.clock = clk
		}
	}
}

// WithTick sets the progress bar refresh rate.
func WithTick(d time.Duration) Option {
	return func(t *TUI) {
		if d > 0 {
			t.tick = d
		}
	}
}

// WithMarkdown sets the glamour style and wrap width for the details modal.
func WithMarkdown(style string, wordWrap int) Option {
	return func(t *TUI) {
		if style != "" {
			t.markdownStyle = style
		}
		if wordWrap > 0 {
			t.wordWrap = wordWrap
		}
	}
}

// Run starts the TUI and blocks until it exits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	m := newModel(t.site, t.eventChan, t.onQuit,
		withClock(t.clock),
		withTick(t.tick),
		withModal(NewDetailModal(t.markdownStyle, t.wordWrap)),
	)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

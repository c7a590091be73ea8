package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"k8s.io/utils/clock"

	"github.com/npratt/showcase/internal/content"
	"github.com/npratt/showcase/internal/events"
	"github.com/npratt/showcase/internal/site"
)

const (
	// maxEventLines is how many recent events the event strip keeps.
	maxEventLines = 5
	// scrollStep is how far one scroll key moves the page, in percent.
	scrollStep = 10
	// scrollEase is the per-tick smoothing factor toward the scroll target.
	scrollEase = 0.35
)

// focusRing is the tab order. The empty entry means nothing is hovered.
var focusRing = []string{"", content.SectionClients, content.SectionSolutions}

// eventLine represents a formatted event for display.
type eventLine struct {
	Text  string
	Style lipgloss.Style
}

// model is the bubbletea model for the TUI.
type model struct {
	site      Site
	eventChan <-chan events.Event
	onQuit    func()
	clock     clock.PassiveClock
	tick      time.Duration

	keys     keyMap
	help     help.Model
	progress progress.Model
	modal    *DetailModal

	// focus indexes focusRing.
	focus      int
	eventLines []eventLine

	// Scroll position and target, in percent of the page.
	scrollPos    float64
	scrollTarget float64

	width  int
	height int
}

// eventMsg wraps an event for the bubbletea message system.
type eventMsg events.Event

type modelOption func(*model)

func withClock(clk clock.PassiveClock) modelOption {
	return func(m *model) { m.clock = clk }
}

func withTick(d time.Duration) modelOption {
	return func(m *model) { m.tick = d }
}

func withModal(d *DetailModal) modelOption {
	return func(m *model) { m.modal = d }
}

// newModel creates a new model with the given configuration.
func newModel(s Site, eventChan <-chan events.Event, onQuit func(), opts ...modelOption) model {
	m := model{
		site:      s,
		eventChan: eventChan,
		onQuit:    onQuit,
		clock:     clock.RealClock{},
		tick:      DefaultTick,
		keys:      defaultKeyMap(),
		help:      help.New(),
		progress:  progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.modal == nil {
		m.modal = NewDetailModal("notty", 80)
	}
	return m
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return tea.Batch(waitForEvent(m.eventChan), doTick(m.tick))
}

// focusedName returns the hovered section name, or "" when none is.
func (m model) focusedName() string {
	return focusRing[m.focus]
}

// section looks up a rotating section on the live site. Sections are
// replaced on remount, so lookups are never cached.
func (m model) section(name string) (*site.Section, bool) {
	if m.site == nil || name == "" {
		return nil, false
	}
	return m.site.Section(name)
}

// targetName is the section that selection keys act on: the hovered one,
// or clients when nothing is hovered.
func (m model) targetName() string {
	if name := m.focusedName(); name != "" {
		return name
	}
	return content.SectionClients
}

// moveFocus steps the focus ring by delta, translating the change into
// pointer leave and enter on the affected bindings.
func (m *model) moveFocus(delta int) {
	n := len(focusRing)
	next := ((m.focus+delta)%n + n) % n
	if next == m.focus {
		return
	}

	if sec, ok := m.section(m.focusedName()); ok {
		sec.Binding.PointerLeave()
	}
	m.focus = next
	if sec, ok := m.section(m.focusedName()); ok {
		sec.Binding.PointerEnter()
	}
}

// appendEvent adds a line to the event strip, dropping the oldest.
func (m *model) appendEvent(e events.Event) {
	text := events.FormatWithTimestamp(e)
	if text == "" {
		return
	}
	style := styles.Event
	if e.Type() == events.EventError {
		style = styles.Error
	}
	m.eventLines = append(m.eventLines, eventLine{Text: text, Style: style})
	if len(m.eventLines) > maxEventLines {
		m.eventLines = m.eventLines[len(m.eventLines)-maxEventLines:]
	}
}

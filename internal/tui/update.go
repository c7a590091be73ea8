package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/npratt/showcase/internal/events"
	"github.com/npratt/showcase/internal/motion"
)

// channelClosedMsg signals that the event channel was closed.
type channelClosedMsg struct{}

// tickMsg drives the progress bar and smooth scrolling.
type tickMsg time.Time

// waitForEvent creates a command that waits for the next event from the channel.
// Returns channelClosedMsg if the channel is closed.
func waitForEvent(ch <-chan events.Event) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		event, ok := <-ch
		if !ok {
			return channelClosedMsg{}
		}
		return eventMsg(event)
	}
}

// doTick creates a command that waits for the tick interval and sends a tickMsg.
func doTick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model. It handles all message types and updates the model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.progress.Width = max(10, min(40, msg.Width/3))
		m.modal.SetSize(msg.Width, msg.Height)
		return m, nil

	case eventMsg:
		m.appendEvent(events.Event(msg))
		return m, waitForEvent(m.eventChan)

	case channelClosedMsg:
		slog.Info("event channel closed, exiting TUI")
		return m, tea.Quit

	case tickMsg:
		m.scrollPos = motion.Smooth(m.scrollPos, m.scrollTarget, scrollEase)
		return m, doTick(m.tick)

	default:
		return m, nil
	}
}

// handleKey processes keyboard input and returns the updated model and command.
func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c always quits, even with the modal open.
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	if m.modal.IsOpen() {
		if m.modal.HandleKey(msg) {
			m.closeModal()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Focus):
		m.moveFocus(1)

	case key.Matches(msg, m.keys.FocusBack):
		m.moveFocus(-1)

	case key.Matches(msg, m.keys.Open):
		m.openModal()

	case key.Matches(msg, m.keys.Prev):
		m.step(-1)

	case key.Matches(msg, m.keys.Next):
		m.step(1)

	case key.Matches(msg, m.keys.Jump):
		if sec, ok := m.section(m.targetName()); ok {
			sec.Binding.Select(int(msg.Runes[0] - '1'))
		}

	case key.Matches(msg, m.keys.ScrollUp):
		m.scrollTarget = motion.Clamp(m.scrollTarget-scrollStep, 0, 100)

	case key.Matches(msg, m.keys.ScrollDn):
		m.scrollTarget = motion.Clamp(m.scrollTarget+scrollStep, 0, 100)
	}

	return m, nil
}

// step selects the previous or next item of the target section, wrapping.
func (m *model) step(delta int) {
	sec, ok := m.section(m.targetName())
	if !ok {
		return
	}
	n := len(sec.Items)
	if n < 2 {
		return
	}
	next := ((sec.Controller.ActiveIndex()+delta)%n + n) % n
	sec.Binding.Select(next)
}

// openModal shows the active item of the hovered section, defaulting to
// solutions, and takes the hard pause on that section.
func (m *model) openModal() {
	name := m.focusedName()
	if name == "" {
		name = focusRing[2]
	}
	sec, ok := m.section(name)
	if !ok || len(sec.Items) == 0 {
		return
	}
	idx := sec.Controller.ActiveIndex()
	if idx >= len(sec.Items) {
		return
	}
	sec.Binding.OpenModal()
	m.modal.Open(name, sec.Items[idx])
}

// closeModal releases the hard pause taken by openModal.
func (m *model) closeModal() {
	name := m.modal.Section()
	m.modal.Close()
	if sec, ok := m.section(name); ok {
		sec.Binding.CloseModal()
	}
}

func (m model) quit() (tea.Model, tea.Cmd) {
	if m.onQuit != nil {
		m.onQuit()
	}
	return m, tea.Quit
}

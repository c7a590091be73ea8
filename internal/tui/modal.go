package tui

import (
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/npratt/showcase/internal/content"
)

// DetailModal shows an item's full markdown body in an overlay.
type DetailModal struct {
	renderer  *glamour.TermRenderer
	section   string
	item      content.Item
	body      string
	width     int
	height    int
	scrollPos int
	open      bool
}

// NewDetailModal creates a modal that renders markdown in the given glamour
// style. "auto" picks a style from the terminal background.
func NewDetailModal(style string, wordWrap int) *DetailModal {
	styleOpt := glamour.WithStandardStyle(style)
	if style == "auto" {
		styleOpt = glamour.WithAutoStyle()
	}

	renderer, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(wordWrap))
	if err != nil {
		slog.Warn("markdown renderer unavailable, showing raw text", "style", style, "error", err)
		renderer = nil
	}
	return &DetailModal{renderer: renderer}
}

// Open shows item from section. The body is rendered once here.
func (m *DetailModal) Open(section string, item content.Item) {
	m.open = true
	m.section = section
	m.item = item
	m.scrollPos = 0
	m.body = m.render(item)
}

// Close hides the modal.
func (m *DetailModal) Close() {
	m.open = false
	m.section = ""
	m.item = content.Item{}
	m.body = ""
	m.scrollPos = 0
}

// IsOpen returns true if the modal is open.
func (m *DetailModal) IsOpen() bool {
	return m.open
}

// Section returns the section the open item belongs to.
func (m *DetailModal) Section() string {
	return m.section
}

// SetSize updates the parent dimensions.
func (m *DetailModal) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// HandleKey processes a key while open and reports whether the modal
// should close.
func (m *DetailModal) HandleKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "esc", "enter", "q":
		return true

	case "up", "k":
		if m.scrollPos > 0 {
			m.scrollPos--
		}

	case "down", "j":
		// Capped in View based on content height
		m.scrollPos++

	case "home", "g":
		m.scrollPos = 0

	case "end", "G":
		m.scrollPos = 9999
	}
	return false
}

func (m *DetailModal) render(item content.Item) string {
	source := item.Body
	if strings.TrimSpace(source) == "" {
		source = item.Summary
	}
	if m.renderer == nil {
		return source
	}
	out, err := m.renderer.Render(source)
	if err != nil {
		slog.Warn("markdown render failed", "item", item.Name, "error", err)
		return source
	}
	return strings.Trim(out, "\n")
}

// View renders the modal at roughly 80% of the parent size.
func (m *DetailModal) View() string {
	if !m.open {
		return ""
	}

	modalWidth := max(40, m.width*80/100)
	modalHeight := max(10, m.height*80/100)

	var sb strings.Builder
	sb.WriteString(styles.ModalTitle.Render(m.item.Name))
	sb.WriteString("\n")
	if m.item.Company != "" {
		sb.WriteString(styles.Muted.Render(m.item.Company))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(m.body)
	if m.item.Link != "" {
		sb.WriteString("\n\n")
		sb.WriteString(styles.Muted.Render("→ " + m.item.Link))
	}

	lines := strings.Split(sb.String(), "\n")

	// Reserve lines for padding, border and footer.
	visibleHeight := max(3, modalHeight-6)
	maxScroll := max(0, len(lines)-visibleHeight)
	if m.scrollPos > maxScroll {
		m.scrollPos = maxScroll
	}
	end := min(len(lines), m.scrollPos+visibleHeight)
	visible := strings.Join(lines[m.scrollPos:end], "\n")

	scrollInfo := ""
	if maxScroll > 0 {
		scrollInfo = fmt.Sprintf(" | Line %d/%d", m.scrollPos+1, len(lines))
	}
	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true).
		Render("[Enter/Esc] close | [j/k] scroll" + scrollInfo)

	return styles.Modal.
		Width(modalWidth).
		Render(visible + "\n\n" + footer)
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/npratt/showcase/internal/content"
	"github.com/npratt/showcase/internal/motion"
	"github.com/npratt/showcase/internal/rotation"
)

const (
	minWidth  = 50
	minHeight = 15

	// teaserWidth caps the one-line summary under each carousel.
	teaserWidth = 72
)

// View implements tea.Model. This renders the full TUI display.
func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.width < minWidth || m.height < minHeight {
		return fmt.Sprintf("Terminal too small (%dx%d), need at least %dx%d",
			m.width, m.height, minWidth, minHeight)
	}

	if m.modal.IsOpen() {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.modal.View())
	}

	doc := m.document()
	inner := safeWidth(m.width - 4)

	sections := []string{
		m.renderHeader(doc),
		m.renderHero(doc),
		m.renderRotating(content.SectionClients, inner),
		m.renderRotating(content.SectionSolutions, inner),
		m.renderProjects(doc, inner),
		m.renderTeam(doc),
		m.renderContact(doc),
		styles.Muted.Render(doc.Footer.Copyright),
		styles.Divider.Render(strings.Repeat("─", inner)),
		m.renderEvents(),
		m.help.View(m.keys),
	}

	var nonEmpty []string
	for _, s := range sections {
		if s != "" {
			nonEmpty = append(nonEmpty, s)
		}
	}

	rendered := styles.Container.
		Width(safeWidth(m.width - 2)).
		Render(strings.Join(nonEmpty, "\n"))

	return lipgloss.Place(m.width, m.height, lipgloss.Left, lipgloss.Top, rendered)
}

func (m model) document() *content.Document {
	if m.site == nil || m.site.Document() == nil {
		return &content.Document{}
	}
	return m.site.Document()
}

func (m model) renderHeader(doc *content.Document) string {
	var nav []string
	for _, l := range doc.Header.Nav {
		nav = append(nav, l.Label)
	}
	brand := styles.Brand.Render(doc.Header.Brand)
	if len(nav) == 0 {
		return brand
	}
	return brand + "  " + styles.Nav.Render(strings.Join(nav, " · "))
}

func (m model) renderHero(doc *content.Document) string {
	if doc.Hero.Headline == "" {
		return ""
	}
	out := styles.Headline.Render(doc.Hero.Headline)
	if doc.Hero.Tagline != "" {
		out += "\n" + styles.Tagline.Render(doc.Hero.Tagline)
	}
	return out
}

// renderRotating draws one rotating section: title, state, interval
// progress, the item strip, and a teaser for the active item. While the
// items are hidden between index changes the strip is drawn dimmed.
func (m model) renderRotating(name string, width int) string {
	sec, ok := m.section(name)
	if !ok {
		return ""
	}
	snap := sec.Controller.Snapshot()

	title := sec.Title
	if title == "" {
		title = name
	}
	header := styles.Heading.Render(title) + "  " + stateStyle(snap.State).Render(string(snap.State))
	if snap.State == rotation.StateRunning {
		header += "  " + m.progress.ViewAs(motion.TickProgress(snap, m.clock.Now()))
	}

	var strip []string
	for i, item := range sec.Items {
		label := fmt.Sprintf("%d %s", i+1, item.Name)
		style := styles.Item
		if i == snap.ActiveIndex {
			style = styles.ItemActive
			label = "▸ " + item.Name
		}
		if !snap.ItemsVisible {
			style = styles.Hidden
		}
		strip = append(strip, style.Render(label))
	}

	lines := []string{header}
	if len(strip) == 0 {
		lines = append(lines, styles.Muted.Render("(no items)"))
	} else {
		lines = append(lines, strings.Join(strip, "   "))
		if snap.ActiveIndex < len(sec.Items) && snap.ItemsVisible {
			active := sec.Items[snap.ActiveIndex]
			if teaser := content.Teaser(active.Summary, min(width, teaserWidth)); teaser != "" {
				lines = append(lines, styles.Muted.Render(teaser))
			}
		}
	}

	box := styles.UnfocusedBorder
	if m.focusedName() == name {
		box = styles.FocusedBorder
	}
	return box.Width(safeWidth(width - 2)).Render(strings.Join(lines, "\n"))
}

// renderProjects shows the project that the current scroll position lands
// on, with a scroll indicator underneath.
func (m model) renderProjects(doc *content.Document, width int) string {
	items := doc.Projects.Items
	if len(items) == 0 {
		return ""
	}

	progress := m.scrollPos / 100
	idx := motion.IndexAt(progress, len(items))
	p := items[idx]

	line := fmt.Sprintf("%d/%d  %s", idx+1, len(items), p.Name)
	var meta []string
	if p.Location != "" {
		meta = append(meta, p.Location)
	}
	if p.Year != 0 {
		meta = append(meta, fmt.Sprint(p.Year))
	}
	if p.Status != "" {
		meta = append(meta, p.Status)
	}
	if len(meta) > 0 {
		line += "  " + styles.Muted.Render(strings.Join(meta, ", "))
	}

	barWidth := max(10, min(width, 40))
	thumb := int(motion.Interpolate(progress, []float64{0, 1}, []float64{0, float64(barWidth - 1)}))
	bar := strings.Repeat("─", thumb) + "●" + strings.Repeat("─", barWidth-thumb-1)

	title := doc.Projects.Title
	if title == "" {
		title = "Projects"
	}
	return styles.Heading.Render(title) + "\n" + line + "\n" + styles.Divider.Render(bar)
}

func (m model) renderTeam(doc *content.Document) string {
	if len(doc.Team.Members) == 0 {
		return ""
	}
	var people []string
	for _, mem := range doc.Team.Members {
		if mem.Role != "" {
			people = append(people, fmt.Sprintf("%s (%s)", mem.Name, mem.Role))
		} else {
			people = append(people, mem.Name)
		}
	}
	title := doc.Team.Title
	if title == "" {
		title = "Team"
	}
	return styles.Heading.Render(title) + "\n" + strings.Join(people, ", ")
}

func (m model) renderContact(doc *content.Document) string {
	c := doc.Contact
	if c.Email == "" && len(c.Offices) == 0 {
		return ""
	}
	parts := []string{}
	if c.Email != "" {
		parts = append(parts, c.Email)
	}
	for _, o := range c.Offices {
		parts = append(parts, fmt.Sprintf("%s: %s", o.City, o.Address))
	}
	title := c.Title
	if title == "" {
		title = "Contact"
	}
	return styles.Heading.Render(title) + "\n" + strings.Join(parts, " | ")
}

func (m model) renderEvents() string {
	if len(m.eventLines) == 0 {
		return styles.Muted.Render("No events yet")
	}
	lines := make([]string, len(m.eventLines))
	for i, l := range m.eventLines {
		lines[i] = l.Style.Render(l.Text)
	}
	return strings.Join(lines, "\n")
}

func stateStyle(s rotation.State) lipgloss.Style {
	switch s {
	case rotation.StateRunning:
		return styles.StateRunning
	case rotation.StatePaused:
		return styles.StatePaused
	case rotation.StateDisabled:
		return styles.StateDisabled
	default:
		return styles.StateIdle
	}
}

// safeWidth clamps a computed width to at least 1.
func safeWidth(w int) int {
	if w < 1 {
		return 1
	}
	return w
}

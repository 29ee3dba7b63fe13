package prompt

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/raphi011/tprompt/internal/ui/styles"
)

const (
	boxPadX     = 2
	boxPadY     = 1
	boxBorder   = 1
	buttonGap   = 2
	ellipsis    = "…"
	suggestMark = "↳ "
)

// hitRegion is a clickable rectangle in screen cells. ActionNone marks the text field.
type hitRegion struct {
	action     Action
	x, y, w, h int
}

func (r hitRegion) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// Style functions return styles based on the current theme.

func boxStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Primary).
		Padding(boxPadY, boxPadX)
}

func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.Primary)
}

func buttonStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(styles.Normal).
		Background(lipgloss.Color("238")).
		Padding(0, 2)
}

func buttonFocusedStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Background(styles.Accent).
		Bold(true).
		Padding(0, 2)
}

func suggestionStyle(best bool) lipgloss.Style {
	if best {
		return lipgloss.NewStyle().Foreground(styles.Accent)
	}
	return lipgloss.NewStyle().Foreground(styles.Muted)
}

// View renders the modal box. Hit regions are recorded relative to the
// box's top-left corner.
func (m *Modal) View() string {
	return m.Render(0, 0)
}

// Render centers the modal in a width x height screen and records where
// its buttons landed so clicks can be routed. A closed modal renders
// nothing.
func (m *Modal) Render(width, height int) string {
	if m.state == StateClosed {
		m.hits = nil
		return ""
	}

	sections, fieldIdx, placed := m.sections()
	content := lipgloss.NewStyle().Width(m.width)
	box := boxStyle().Render(content.Render(strings.Join(sections, "\n")))

	x0 := max(0, (width-lipgloss.Width(box))/2)
	y0 := max(0, (height-lipgloss.Height(box))/2)

	cx := x0 + boxBorder + boxPadX
	cy := y0 + boxBorder + boxPadY
	rowY := func(idx int) int {
		y := cy
		for _, s := range sections[:idx] {
			y += lipgloss.Height(content.Render(s))
		}
		return y
	}

	hits := []hitRegion{{action: ActionNone, x: cx, y: rowY(fieldIdx), w: m.width, h: 1}}
	for i, b := range m.buttons {
		w := lipgloss.Width(m.renderButton(i, b))
		hits = append(hits, hitRegion{action: b.action, x: cx + placed[i].x, y: rowY(placed[i].row), w: w, h: 1})
	}
	m.hits = hits

	if x0 == 0 && y0 == 0 {
		return box
	}
	return lipgloss.NewStyle().MarginLeft(x0).MarginTop(y0).Render(box)
}

// placement is where a button landed: its section row and x offset
// within the content.
type placement struct {
	row, x int
}

// sections returns the box content rows, the index of the field row and
// each button's placement. Buttons share one row when they fit in the
// content width and are stacked one per row otherwise.
func (m *Modal) sections() ([]string, int, []placement) {
	var sections []string

	title := ansi.Truncate(m.req.Title, m.width, ellipsis)
	sections = append(sections, titleStyle().Render(title), "")

	fieldIdx := len(sections)
	sections = append(sections, m.input.View())

	if len(m.matches) > 0 {
		parts := make([]string, len(m.matches))
		for i, s := range m.matches {
			parts[i] = suggestionStyle(i == 0).Render(s)
		}
		line := styles.MutedStyle.Render(suggestMark) + strings.Join(parts, styles.MutedStyle.Render(" · "))
		sections = append(sections, ansi.Truncate(line, m.width, ellipsis))
	}
	sections = append(sections, "")

	rendered := make([]string, len(m.buttons))
	rowWidth := buttonGap * (len(m.buttons) - 1)
	for i, b := range m.buttons {
		rendered[i] = m.renderButton(i, b)
		rowWidth += lipgloss.Width(rendered[i])
	}

	placed := make([]placement, len(m.buttons))
	if rowWidth <= m.width {
		var row strings.Builder
		for i, r := range rendered {
			if i > 0 {
				row.WriteString(strings.Repeat(" ", buttonGap))
			}
			placed[i] = placement{row: len(sections), x: lipgloss.Width(row.String())}
			row.WriteString(r)
		}
		sections = append(sections, row.String())
	} else {
		for i, r := range rendered {
			placed[i] = placement{row: len(sections)}
			sections = append(sections, r)
		}
	}
	sections = append(sections, "")

	m.help.Styles.ShortKey = lipgloss.NewStyle().Foreground(styles.Info)
	m.help.Styles.ShortDesc = lipgloss.NewStyle().Foreground(styles.Muted)
	m.help.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(styles.Muted)
	if m.focus == fieldFocusIndex {
		sections = append(sections, m.help.ShortHelpView(m.keys.fieldHelp(len(m.candidates) > 0)))
	} else {
		sections = append(sections, m.help.ShortHelpView(m.keys.buttonHelp()))
	}

	return sections, fieldIdx, placed
}

// renderButton draws button i, truncating its label to fit the content width.
func (m *Modal) renderButton(i int, b button) string {
	style := buttonStyle()
	if m.focus == i+1 {
		style = buttonFocusedStyle()
	}
	label := ansi.Truncate(b.label, m.width-style.GetHorizontalFrameSize(), ellipsis)
	return style.Render(label)
}

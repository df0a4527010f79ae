package tui

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	browseTitle = "Claude Code Launcher"
	filterTitle = "Search Projects"
)

// Static help lines; the longest one in each view sets the frame width
const (
	browseHelp = "[1-9] or [↑↓] navigate  •  [enter] select  •  [/] search"
	filterHelp = "[↑↓] navigate  •  [enter] select  •  [esc] back  •  [backspace] delete"
)

var helpKeyPattern = regexp.MustCompile(`\[[^\]]+\]`)

func (m Model) View() string {
	if m.quitting || m.selection != nil {
		return ""
	}
	if m.session.Mode() == ModeFilter {
		return m.filterView()
	}
	return m.browseView()
}

func (m Model) browseView() string {
	s := m.session
	width := frameWidth(browseHelp)

	var b strings.Builder
	b.WriteString(renderHeader(browseTitle, width))
	b.WriteString("\n\n")

	cursor := s.Cursor()
	for i, p := range s.Visible() {
		n := strconv.Itoa(i + 1)
		if i == cursor {
			b.WriteString("  " + SelectedStyle.Render(n+"  "+p.Name))
		} else {
			b.WriteString("  " + NumberStyle.Render(n) + "  " + ProjectStyle.Render(p.Name))
		}
		b.WriteString("\n")
	}

	if hidden := s.HiddenCount(); hidden > 0 {
		b.WriteString("\n")
		b.WriteString(DimStyle.Render(fmt.Sprintf("  ... and %d more (use ", hidden)) +
			HelpKeyStyle.Render("/") +
			DimStyle.Render(" to search)"))
		b.WriteString("\n")
	}

	status := DimStyle.Render("off")
	if s.Dangerous() {
		status = DangerStyle.Render("ON")
	}

	b.WriteString(renderFooter(width,
		renderHelp(browseHelp),
		renderHelp("[d] dangerous ")+status+renderHelp("  •  [q] quit"),
	))

	return b.String()
}

func (m Model) filterView() string {
	s := m.session
	width := frameWidth(filterHelp)

	var b strings.Builder
	b.WriteString(renderHeader(filterTitle, width))
	b.WriteString("\n\n")

	b.WriteString(InputPromptStyle.Render("Search:") + " " + InputStyle.Render(s.FilterText()+"█"))
	b.WriteString("\n\n")

	filtered := s.Filtered()
	switch {
	case len(filtered) == 0 && s.FilterText() == "":
		b.WriteString(DimStyle.Render("  Start typing to search projects..."))
		b.WriteString("\n")
	case len(filtered) == 0:
		b.WriteString(DimStyle.Render(fmt.Sprintf("  No projects found matching %q", s.FilterText())))
		b.WriteString("\n")
	default:
		cursor := s.Cursor()
		for i, p := range filtered {
			if i == cursor {
				b.WriteString("  " + SelectedStyle.Render("● "+p.Name))
			} else {
				b.WriteString("  " + ProjectStyle.Render("○ "+p.Name))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString(renderFooter(width, renderHelp(filterHelp)))

	return b.String()
}

// frameWidth returns the display width of the widest line
func frameWidth(lines ...string) int {
	width := 0
	for _, line := range lines {
		width = max(width, lipgloss.Width(line))
	}
	return width
}

// renderHeader draws the title centred in a box whose inner width is width
func renderHeader(title string, width int) string {
	return HeaderStyle.Width(width).Render(TitleStyle.Render(title))
}

// renderFooter draws the divider and the help lines below it
func renderFooter(width int, lines ...string) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(DividerStyle.Render(strings.Repeat("─", width+2)))
	b.WriteString("\n\n")
	for _, line := range lines {
		b.WriteString("  " + line + "\n")
	}
	return b.String()
}

// renderHelp highlights the [key] tokens of a help line
func renderHelp(line string) string {
	var b strings.Builder
	last := 0
	for _, loc := range helpKeyPattern.FindAllStringIndex(line, -1) {
		if loc[0] > last {
			b.WriteString(HelpDescStyle.Render(line[last:loc[0]]))
		}
		b.WriteString(HelpKeyStyle.Render(line[loc[0]:loc[1]]))
		last = loc[1]
	}
	if last < len(line) {
		b.WriteString(HelpDescStyle.Render(line[last:]))
	}
	return b.String()
}

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-fx/internal/core"
)

// lipglossColor converts a cell color. Default colors map to NoColor so the
// terminal's own colors show through.
func lipglossColor(c core.Color) lipgloss.TerminalColor {
	if c.IsDefault() {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(c.String())
}

// styleFor builds the lipgloss style of a cell style.
func styleFor(r *lipgloss.Renderer, st core.Style) lipgloss.Style {
	s := r.NewStyle().
		Foreground(lipglossColor(st.Fg)).
		Background(lipglossColor(st.Bg))
	if st.Attr.Has(core.AttrBold) {
		s = s.Bold(true)
	}
	if st.Attr.Has(core.AttrDim) {
		s = s.Faint(true)
	}
	if st.Attr.Has(core.AttrItalic) {
		s = s.Italic(true)
	}
	if st.Attr.Has(core.AttrUnderline) {
		s = s.Underline(true)
	}
	if st.Attr.Has(core.AttrReverse) {
		s = s.Reverse(true)
	}
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	return RenderScreenWith(lipgloss.DefaultRenderer(), s)
}

// RenderScreenWith renders using a specific lipgloss renderer, e.g. one
// bound to an SSH session's color profile.
func RenderScreenWith(r *lipgloss.Renderer, s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	styles := make(map[core.Style]lipgloss.Style)

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same style for efficiency
		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y).Style()

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Style() != start {
					break
				}
				// Rune 0 is the trailing half of a wide glyph
				if cell.Rune != 0 {
					run.WriteRune(cell.Rune)
				}
				x++
			}

			style, ok := styles[start]
			if !ok {
				style = styleFor(r, start)
				styles[start] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

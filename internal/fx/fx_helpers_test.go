package fx

import (
	"testing"

	"github.com/vovakirdan/tui-fx/internal/core"
)

var (
	colorA = core.RGB(0, 0, 0)
	colorB = core.RGB(200, 100, 40)
)

// newGrid returns a w x h screen filled with 'x' in white on black.
func newGrid(w, h int) *core.Screen {
	s := core.NewScreen(w, h)
	s.SetPen(core.NewStyle(core.ColorWhite, core.ColorBlack))
	s.Fill('x')
	return s
}

// assertAllFg fails if any cell in the grid does not have foreground c.
func assertAllFg(t *testing.T, s *core.Screen, c core.Color) {
	t.Helper()
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if got := s.GetCell(x, y).Fg; got != c {
				t.Fatalf("cell (%d, %d) fg = %+v, expected %+v", x, y, got, c)
			}
		}
	}
}

package core

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Cell is a single grid position: a glyph plus its style.
// A Rune of 0 marks the trailing half of a wide glyph.
type Cell struct {
	Rune rune
	Fg   Color
	Bg   Color
	Attr Attr
}

// Style returns the visual properties of the cell.
func (c Cell) Style() Style {
	return Style{Fg: c.Fg, Bg: c.Bg, Attr: c.Attr}
}

// blankCell is what Clear writes.
var blankCell = Cell{Rune: ' '}

// Screen is a 2D buffer of styled cells.
// It decouples rendering from the terminal: the app paints into it, effects
// recolor it, and the platform converts it to an escape-coded string.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
	pen    Style
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  Max(width, 0),
		height: Max(height, 0),
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Bounds returns the full screen area.
func (s *Screen) Bounds() Rect {
	return NewRect(0, 0, s.width, s.height)
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	width, height = Max(width, 0), Max(height, 0)
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	copyW := Min(oldW, width)
	copyH := Min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
	}
}

// SetPen sets the style used by subsequent drawing calls.
func (s *Screen) SetPen(st Style) {
	s.pen = st
}

// Clear fills the entire screen with blank, default-styled cells.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blankCell
		}
	}
}

// Fill fills the entire screen with the given rune in the pen style.
func (s *Screen) Fill(r rune) {
	s.DrawRect(s.Bounds(), r)
}

// Set places a rune at the given position using the pen style.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetCell(x, y, Cell{Rune: r, Fg: s.pen.Fg, Bg: s.pen.Bg, Attr: s.pen.Attr})
}

// SetCell replaces the cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetCell(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// GetCell returns a copy of the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blankCell
	}
	return s.cells[y][x]
}

// Cell returns an addressable cell, or nil for out-of-bounds coordinates.
func (s *Screen) Cell(x, y int) *Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return nil
	}
	return &s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Wide glyphs take two columns. Characters beyond screen bounds are clipped.
// Returns the number of columns written.
func (s *Screen) DrawText(x, y int, text string) int {
	col := x
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		s.Set(col, y, r)
		if w == 2 {
			s.Set(col+1, y, 0)
		}
		col += w
	}
	return col - x
}

// DrawTextCenteredIn draws text centered horizontally inside r at row y.
func (s *Screen) DrawTextCenteredIn(r Rect, y int, text string) {
	x := r.X + (r.W-runewidth.StringWidth(text))/2
	s.DrawText(x, y, text)
}

// DrawRect fills a rectangular area with the given rune.
func (s *Screen) DrawRect(r Rect, fill rune) {
	r = r.Intersect(s.Bounds())
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.Set(x, y, fill)
		}
	}
}

// BorderRunes lists the glyphs of a box outline.
type BorderRunes struct {
	TopLeft, TopRight, BottomLeft, BottomRight rune
	Horizontal, Vertical                       rune
}

// BorderRounded is the outline the demo panel uses.
var BorderRounded = BorderRunes{'╭', '╮', '╰', '╯', '─', '│'}

// DrawBorder draws a box outline using the given glyph set.
func (s *Screen) DrawBorder(r Rect, b BorderRunes) {
	if r.W <= 0 || r.H <= 0 {
		return
	}

	// Corners
	s.Set(r.X, r.Y, b.TopLeft)
	s.Set(r.Right()-1, r.Y, b.TopRight)
	s.Set(r.X, r.Bottom()-1, b.BottomLeft)
	s.Set(r.Right()-1, r.Bottom()-1, b.BottomRight)

	s.DrawHLine(r.X+1, r.Y, r.W-2, b.Horizontal)
	s.DrawHLine(r.X+1, r.Bottom()-1, r.W-2, b.Horizontal)
	s.DrawVLine(r.X, r.Y+1, r.H-2, b.Vertical)
	s.DrawVLine(r.Right()-1, r.Y+1, r.H-2, b.Vertical)
}

// DrawHLine draws a horizontal line from (x, y) with the given length.
func (s *Screen) DrawHLine(x, y, length int, r rune) {
	for i := 0; i < length; i++ {
		s.Set(x+i, y, r)
	}
}

// DrawVLine draws a vertical line from (x, y) with the given length.
func (s *Screen) DrawVLine(x, y, length int, r rune) {
	for i := 0; i < length; i++ {
		s.Set(x, y+i, r)
	}
}

// String converts the screen buffer to plain text, one line per row.
// Styles are dropped; see the platform renderer for colored output.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		s.writeRow(&sb, y)
	}
	return sb.String()
}

func (s *Screen) writeRow(sb *strings.Builder, y int) {
	for x := 0; x < s.width; x++ {
		if r := s.cells[y][x].Rune; r != 0 {
			sb.WriteRune(r)
		}
	}
}

package fx

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/tui-fx/internal/core"
)

type filterKind uint8

const (
	filterAll filterKind = iota
	filterText
	filterArea
	filterInner
	filterOuter
	filterFg
	filterBg
	filterAllOf
	filterAnyOf
	filterNot
)

// CellFilter restricts which cells of a paint area an effect touches.
// The zero value matches every cell. Filters are immutable values and can be
// shared between effects.
type CellFilter struct {
	kind   filterKind
	area   core.Rect
	margin int
	color  core.Color
	nested []CellFilter
}

// All matches every cell.
func All() CellFilter {
	return CellFilter{}
}

// Text matches cells holding a visible glyph: not blank, not whitespace, and
// not the trailing half of a wide glyph.
func Text() CellFilter {
	return CellFilter{kind: filterText}
}

// Area matches cells inside r, independent of the effect's paint area.
func Area(r core.Rect) CellFilter {
	return CellFilter{kind: filterArea, area: r}
}

// Inner matches cells at least margin cells away from the paint area's edge.
func Inner(margin int) CellFilter {
	return CellFilter{kind: filterInner, margin: margin}
}

// Outer matches cells within margin cells of the paint area's edge.
func Outer(margin int) CellFilter {
	return CellFilter{kind: filterOuter, margin: margin}
}

// FgColor matches cells whose foreground is exactly c.
func FgColor(c core.Color) CellFilter {
	return CellFilter{kind: filterFg, color: c}
}

// BgColor matches cells whose background is exactly c.
func BgColor(c core.Color) CellFilter {
	return CellFilter{kind: filterBg, color: c}
}

// AllOf matches cells matched by every filter. AllOf() matches everything.
func AllOf(filters ...CellFilter) CellFilter {
	return CellFilter{kind: filterAllOf, nested: append([]CellFilter(nil), filters...)}
}

// AnyOf matches cells matched by at least one filter. AnyOf() matches nothing.
func AnyOf(filters ...CellFilter) CellFilter {
	return CellFilter{kind: filterAnyOf, nested: append([]CellFilter(nil), filters...)}
}

// Not inverts f.
func Not(f CellFilter) CellFilter {
	return CellFilter{kind: filterNot, nested: []CellFilter{f}}
}

// And narrows f by other. All is the identity on either side.
func (f CellFilter) And(other CellFilter) CellFilter {
	if f.kind == filterAll {
		return other
	}
	if other.kind == filterAll {
		return f
	}
	return AllOf(f, other)
}

// IsAll reports whether f matches every cell unconditionally.
func (f CellFilter) IsAll() bool {
	return f.kind == filterAll
}

// Matches reports whether the cell at (x, y) passes the filter.
// area is the effect's paint area; Inner and Outer are relative to it.
func (f CellFilter) Matches(x, y int, cell core.Cell, area core.Rect) bool {
	switch f.kind {
	case filterAll:
		return true
	case filterText:
		return isText(cell.Rune)
	case filterArea:
		return f.area.Contains(x, y)
	case filterInner:
		return area.Inset(f.margin).Contains(x, y)
	case filterOuter:
		return area.Contains(x, y) && !area.Inset(f.margin).Contains(x, y)
	case filterFg:
		return cell.Fg == f.color
	case filterBg:
		return cell.Bg == f.color
	case filterAllOf:
		for _, n := range f.nested {
			if !n.Matches(x, y, cell, area) {
				return false
			}
		}
		return true
	case filterAnyOf:
		for _, n := range f.nested {
			if n.Matches(x, y, cell, area) {
				return true
			}
		}
		return false
	case filterNot:
		return !f.nested[0].Matches(x, y, cell, area)
	default:
		return false
	}
}

func isText(r rune) bool {
	return r != 0 && !unicode.IsSpace(r) && runewidth.RuneWidth(r) > 0
}

// String describes the filter, e.g. "AllOf(Text, Area(0,0 10x2))".
func (f CellFilter) String() string {
	switch f.kind {
	case filterAll:
		return "All"
	case filterText:
		return "Text"
	case filterArea:
		return fmt.Sprintf("Area(%d,%d %dx%d)", f.area.X, f.area.Y, f.area.W, f.area.H)
	case filterInner:
		return fmt.Sprintf("Inner(%d)", f.margin)
	case filterOuter:
		return fmt.Sprintf("Outer(%d)", f.margin)
	case filterFg:
		return fmt.Sprintf("FgColor(%s)", f.color)
	case filterBg:
		return fmt.Sprintf("BgColor(%s)", f.color)
	case filterAllOf, filterAnyOf:
		parts := make([]string, len(f.nested))
		for i, n := range f.nested {
			parts[i] = n.String()
		}
		name := "AllOf"
		if f.kind == filterAnyOf {
			name = "AnyOf"
		}
		return name + "(" + strings.Join(parts, ", ") + ")"
	case filterNot:
		return "Not(" + f.nested[0].String() + ")"
	default:
		return "Unknown"
	}
}

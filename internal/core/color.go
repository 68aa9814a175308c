package core

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorKind tells how a Color value should be interpreted.
type ColorKind uint8

const (
	ColorKindDefault ColorKind = iota // Terminal default color
	ColorKindIndexed                  // ANSI 256-color palette entry
	ColorKindRGB                      // 24-bit true color
)

// Color is a cell foreground or background color.
// The zero value is the terminal's default color.
type Color struct {
	Kind    ColorKind
	Index   uint8 // Palette index, used when Kind is ColorKindIndexed
	R, G, B uint8 // Channels, used when Kind is ColorKindRGB
}

// Predefined colors.
var (
	ColorDefault = Color{}
	ColorBlack   = Indexed(0)
	ColorRed     = Indexed(1)
	ColorGreen   = Indexed(2)
	ColorYellow  = Indexed(3)
	ColorBlue    = Indexed(4)
	ColorMagenta = Indexed(5)
	ColorCyan    = Indexed(6)
	ColorWhite   = Indexed(7)
	ColorGray    = Indexed(245)
	ColorOrange  = Indexed(208)
)

// Colors the terminal default resolves to when a default-colored cell is interpolated.
var (
	DefaultForeground = RGB(0xc0, 0xc0, 0xc0)
	DefaultBackground = RGB(0x00, 0x00, 0x00)
)

// RGB creates a true color.
func RGB(r, g, b uint8) Color {
	return Color{Kind: ColorKindRGB, R: r, G: g, B: b}
}

// Hex creates a true color from a 0xRRGGBB value.
func Hex(v uint32) Color {
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v))
}

// Indexed creates a 256-color palette color.
func Indexed(i uint8) Color {
	return Color{Kind: ColorKindIndexed, Index: i}
}

// ParseColor parses "#rrggbb", "#rgb", a palette index ("208") or "default".
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch {
	case s == "" || s == "default":
		return ColorDefault, nil
	case strings.HasPrefix(s, "#"):
		hex := s[1:]
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) != 6 {
			return ColorDefault, fmt.Errorf("color: invalid hex %q", s)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return ColorDefault, fmt.Errorf("color: invalid hex %q: %w", s, err)
		}
		return Hex(uint32(v)), nil
	default:
		v, err := strconv.ParseUint(s, 10, 8)
		if err != nil {
			return ColorDefault, fmt.Errorf("color: invalid palette index %q: %w", s, err)
		}
		return Indexed(uint8(v)), nil
	}
}

// IsDefault reports whether c is the terminal default color.
func (c Color) IsDefault() bool {
	return c.Kind == ColorKindDefault
}

// String returns the lipgloss-compatible form: "#rrggbb", a palette index, or "".
func (c Color) String() string {
	switch c.Kind {
	case ColorKindRGB:
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	case ColorKindIndexed:
		return strconv.Itoa(int(c.Index))
	default:
		return ""
	}
}

// ToRGB resolves c to a true color. Default colors resolve to fallback.
func (c Color) ToRGB(fallback Color) Color {
	switch c.Kind {
	case ColorKindRGB:
		return c
	case ColorKindIndexed:
		return paletteRGB(c.Index)
	default:
		if fallback.Kind == ColorKindDefault {
			return DefaultBackground
		}
		return fallback.ToRGB(DefaultBackground)
	}
}

// Lerp interpolates from c towards to by t in [0, 1].
// Returns c unchanged for t <= 0 and exactly to for t >= 1.
// Colors are resolved to RGB before blending; fallback resolves default colors.
func (c Color) Lerp(to Color, t float64, fallback Color) Color {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return to
	}
	a := c.ToRGB(fallback)
	b := to.ToRGB(fallback)
	r, g, bl := a.colorful().BlendRgb(b.colorful(), t).Clamped().RGB255()
	return RGB(r, g, bl)
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// ansi16 holds the xterm values of the 16 system colors.
var ansi16 = [16]uint32{
	0x000000, 0x800000, 0x008000, 0x808000, 0x000080, 0x800080, 0x008080, 0xc0c0c0,
	0x808080, 0xff0000, 0x00ff00, 0xffff00, 0x0000ff, 0xff00ff, 0x00ffff, 0xffffff,
}

// paletteRGB maps a 256-color index to its xterm RGB value.
func paletteRGB(i uint8) Color {
	switch {
	case i < 16:
		return Hex(ansi16[i])
	case i < 232:
		// 6x6x6 color cube
		n := int(i) - 16
		level := func(v int) uint8 {
			if v == 0 {
				return 0
			}
			return uint8(55 + v*40)
		}
		return RGB(level(n/36), level((n/6)%6), level(n%6))
	default:
		gray := uint8(8 + (int(i)-232)*10)
		return RGB(gray, gray, gray)
	}
}

// Attr is a bit set of text attributes.
type Attr uint8

const (
	AttrBold Attr = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrReverse
)

// Has reports whether all bits of a are set.
func (at Attr) Has(a Attr) bool {
	return at&a == a
}

// Style groups the visual properties of a cell.
type Style struct {
	Fg   Color
	Bg   Color
	Attr Attr
}

// NewStyle returns a style with the given colors and no attributes.
func NewStyle(fg, bg Color) Style {
	return Style{Fg: fg, Bg: bg}
}

package easel

import (
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Color implements color.Color, so it can be handed to any image API directly.
type Color struct {
	R, G, B, A float64
}

// RGBA implements color.Color with alpha-premultiplied 16-bit components.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(clamp01(c.A) * 0xffff)
	r = uint32(clamp01(c.R) * clamp01(c.A) * 0xffff)
	g = uint32(clamp01(c.G) * clamp01(c.A) * 0xffff)
	b = uint32(clamp01(c.B) * clamp01(c.A) * 0xffff)
	return
}

// NRGBA converts c to an 8-bit straight-alpha color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

// Hex formats c as "#rrggbb", or "#rrggbbaa" when not fully opaque.
func (c Color) Hex() string {
	n := c.NRGBA()
	if n.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

// ParseHex parses "#rgb", "#rrggbb" or "#rrggbbaa". The leading '#' is optional.
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return Color{}, fmt.Errorf("parse color %q: bad length", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}

// MustParseHex is like ParseHex but panics on malformed input.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic("easel: " + err.Error())
	}
	return c
}

// Palette hex values.
const (
	HexRed    = "#de5844"
	HexOrange = "#fbaf34"
	HexGreen  = "#8cc63e"
	HexBlue   = "#27a9e1"
	HexWhite  = "#FFFFFF"
	HexBlack  = "#000000"
	HexGray   = "#cccccc"
	HexPurple = "#9B30FF"
	HexYellow = "#FFFF00"
	HexCyan   = "#00FFFF"
)

// Palette colors, parsed once from the Hex constants for convenience. They
// are values: callers must not assign to them. Assigning does not change the
// palette itself, which PaletteHex and PaletteColor always resolve from the
// Hex constants.
var (
	ColorRed    = MustParseHex(HexRed)
	ColorOrange = MustParseHex(HexOrange)
	ColorGreen  = MustParseHex(HexGreen)
	ColorBlue   = MustParseHex(HexBlue)
	ColorWhite  = MustParseHex(HexWhite)
	ColorBlack  = MustParseHex(HexBlack)
	ColorGray   = MustParseHex(HexGray)
	ColorGrey   = ColorGray
	ColorPurple = MustParseHex(HexPurple)
	ColorYellow = MustParseHex(HexYellow)
	ColorCyan   = MustParseHex(HexCyan)
)

var palette = map[string]string{
	"red":    HexRed,
	"orange": HexOrange,
	"green":  HexGreen,
	"blue":   HexBlue,
	"white":  HexWhite,
	"black":  HexBlack,
	"gray":   HexGray,
	"grey":   HexGray,
	"purple": HexPurple,
	"yellow": HexYellow,
	"cyan":   HexCyan,
}

// PaletteHex returns the hex string for a palette name. Names are matched
// case-insensitively; "gray" and "grey" are the same entry.
func PaletteHex(name string) (string, bool) {
	h, ok := palette[strings.ToLower(strings.TrimSpace(name))]
	return h, ok
}

// PaletteColor returns the palette color for name.
func PaletteColor(name string) (Color, bool) {
	h, ok := PaletteHex(name)
	if !ok {
		return Color{}, false
	}
	return MustParseHex(h), true
}

// PaletteNames returns every palette name in sorted order.
func PaletteNames() []string {
	names := make([]string, 0, len(palette))
	for n := range palette {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

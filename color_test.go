package easel

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaletteHex(t *testing.T) {
	tests := []struct {
		name, want string
	}{
		{"red", "#de5844"},
		{"orange", "#fbaf34"},
		{"green", "#8cc63e"},
		{"blue", "#27a9e1"},
		{"white", "#FFFFFF"},
		{"black", "#000000"},
		{"gray", "#cccccc"},
		{"grey", "#cccccc"},
		{"purple", "#9B30FF"},
		{"yellow", "#FFFF00"},
		{"cyan", "#00FFFF"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := PaletteHex(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)

			upper, ok := PaletteHex(strings.ToUpper(tt.name))
			require.True(t, ok)
			assert.Equal(t, tt.want, upper)

			c, ok := PaletteColor(tt.name)
			require.True(t, ok)
			assert.True(t, strings.EqualFold(tt.want, c.Hex()))
		})
	}

	_, ok := PaletteHex("magenta")
	assert.False(t, ok)
	assert.Len(t, PaletteNames(), 11)
	assert.Equal(t, ColorGray, ColorGrey)
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#fff", Color{1, 1, 1, 1}},
		{"000000", Color{0, 0, 0, 1}},
		{"#ff000080", Color{1, 0, 0, 128.0 / 255}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			require.NoError(t, err)
			assert.InDelta(t, tt.want.R, got.R, 1e-9)
			assert.InDelta(t, tt.want.G, got.G, 1e-9)
			assert.InDelta(t, tt.want.B, got.B, 1e-9)
			assert.InDelta(t, tt.want.A, got.A, 1e-9)
		})
	}

	for _, bad := range []string{"", "#12", "#gggggg", "#1234567"} {
		_, err := ParseHex(bad)
		assert.Error(t, err, bad)
	}
	assert.Panics(t, func() { MustParseHex("nope") })
}

func TestColorRGBAPremultiplied(t *testing.T) {
	r, g, b, a := Color{R: 1, G: 0.5, B: 0, A: 0.5}.RGBA()
	assert.Equal(t, uint32(0x7fff), a)
	assert.Equal(t, uint32(0x7fff), r)
	assert.Equal(t, uint32(0x3fff), g)
	assert.Equal(t, uint32(0), b)
}

func TestColorHexRoundTrip(t *testing.T) {
	assert.Equal(t, "#de5844", ColorRed.Hex())
	assert.Equal(t, "#ff000080", MustParseHex("#ff000080").Hex())
}

func TestPaletteIgnoresReassignedVars(t *testing.T) {
	saved := ColorRed
	t.Cleanup(func() { ColorRed = saved })
	ColorRed = ColorCyan

	c, ok := PaletteColor("red")
	require.True(t, ok)
	assert.Equal(t, saved, c)
	h, _ := PaletteHex("RED")
	assert.Equal(t, HexRed, h)
}

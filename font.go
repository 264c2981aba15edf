package easel

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFont is the descriptor new Text shapes start with.
const DefaultFont = "20pt Arial"

// FontSpec is a parsed CSS font shorthand. Size is in surface pixels.
type FontSpec struct {
	Size   float64
	Bold   bool
	Italic bool
	Family string
}

// Monospace reports whether the family asks for a fixed-width face.
func (f FontSpec) Monospace() bool {
	first := strings.ToLower(strings.Trim(strings.Split(f.Family, ",")[0], ` "'`))
	switch first {
	case "monospace", "courier", "courier new", "consolas", "menlo", "monaco", "go mono":
		return true
	}
	return false
}

// ParseFont parses descriptors like "20pt Arial", "bold 12px 'Courier New'"
// or "italic 700 1.5em sans-serif". pt is converted at 96 DPI (1pt = 4/3px)
// and em at 16px.
func ParseFont(desc string) (FontSpec, error) {
	fields := strings.Fields(desc)
	var spec FontSpec
	for i, tok := range fields {
		lower := strings.ToLower(tok)
		switch lower {
		case "normal", "small-caps":
			continue
		case "bold", "bolder":
			spec.Bold = true
			continue
		case "italic", "oblique":
			spec.Italic = true
			continue
		}
		if w, err := strconv.Atoi(lower); err == nil {
			spec.Bold = w >= 600
			continue
		}
		size, err := parseFontSize(lower)
		if err != nil {
			return FontSpec{}, fmt.Errorf("font %q: %w", desc, err)
		}
		spec.Size = size
		spec.Family = strings.Join(fields[i+1:], " ")
		if spec.Family == "" {
			return FontSpec{}, fmt.Errorf("font %q: missing family: %w", desc, ErrInvalidFont)
		}
		return spec, nil
	}
	return FontSpec{}, fmt.Errorf("font %q: missing size: %w", desc, ErrInvalidFont)
}

func parseFontSize(tok string) (float64, error) {
	// Drop a "/line-height" suffix.
	if i := strings.IndexByte(tok, '/'); i >= 0 {
		tok = tok[:i]
	}
	scale := 1.0
	switch {
	case strings.HasSuffix(tok, "pt"):
		scale = 4.0 / 3.0
		tok = strings.TrimSuffix(tok, "pt")
	case strings.HasSuffix(tok, "px"):
		tok = strings.TrimSuffix(tok, "px")
	case strings.HasSuffix(tok, "em"):
		scale = 16
		tok = strings.TrimSuffix(tok, "em")
	default:
		return 0, fmt.Errorf("size %q: %w", tok, ErrInvalidFont)
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("size %q: %w", tok, ErrInvalidFont)
	}
	return v * scale, nil
}

// faceCache shares parsed Go fonts and sized faces across surfaces.
type faceCache struct {
	mu    sync.Mutex
	fonts map[string]*truetype.Font
	faces map[FontSpec]font.Face
}

var faces = &faceCache{
	fonts: make(map[string]*truetype.Font),
	faces: make(map[FontSpec]font.Face),
}

// face returns a font.Face for spec, parsing the matching Go font on first use.
// Families are mapped onto the Go font set: monospace names get Go Mono,
// everything else gets Go Regular.
func (c *faceCache) face(spec FontSpec) (font.Face, error) {
	key := FontSpec{Size: spec.Size, Bold: spec.Bold, Italic: spec.Italic}
	if spec.Monospace() {
		key.Family = "mono"
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if f, ok := c.faces[key]; ok {
		return f, nil
	}
	name, ttf := goFontData(key)
	tt, ok := c.fonts[name]
	if !ok {
		var err error
		tt, err = truetype.Parse(ttf)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		c.fonts[name] = tt
	}
	f := truetype.NewFace(tt, &truetype.Options{
		Size:    key.Size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	c.faces[key] = f
	return f, nil
}

func goFontData(key FontSpec) (string, []byte) {
	mono := key.Family == "mono"
	switch {
	case mono && key.Bold && key.Italic:
		return "gomonobolditalic", gomonobolditalic.TTF
	case mono && key.Bold:
		return "gomonobold", gomonobold.TTF
	case mono && key.Italic:
		return "gomonoitalic", gomonoitalic.TTF
	case mono:
		return "gomono", gomono.TTF
	case key.Bold && key.Italic:
		return "gobolditalic", gobolditalic.TTF
	case key.Bold:
		return "gobold", gobold.TTF
	case key.Italic:
		return "goitalic", goitalic.TTF
	default:
		return "goregular", goregular.TTF
	}
}

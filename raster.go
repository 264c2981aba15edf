package easel

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
)

// defaultSurfaceFont matches the canvas default.
const defaultSurfaceFont = "10px sans-serif"

type rasterStyle struct {
	fill, stroke Color
	font         string
}

// RasterContext is a software Context backed by a fogleman/gg drawing
// context. Fonts resolve to the Go font family via golang/freetype.
type RasterContext struct {
	dc     *gg.Context
	style  rasterStyle
	styles []rasterStyle
}

// NewRasterContext creates a transparent surface of the given size.
func NewRasterContext(width, height int) *RasterContext {
	r := &RasterContext{}
	r.Resize(width, height)
	return r
}

// Width and Height return the surface size in pixels.
func (r *RasterContext) Width() int  { return r.dc.Width() }
func (r *RasterContext) Height() int { return r.dc.Height() }

// Resize replaces the backing image. Like a canvas, resizing discards both the
// pixels and the state stack.
func (r *RasterContext) Resize(width, height int) {
	if width < 0 || height < 0 {
		panic("easel: negative surface size")
	}
	r.dc = gg.NewContext(width, height)
	r.styles = r.styles[:0]
	r.style = rasterStyle{fill: ColorBlack, stroke: ColorBlack}
	r.dc.SetFillStyle(gg.NewSolidPattern(r.style.fill))
	r.dc.SetStrokeStyle(gg.NewSolidPattern(r.style.stroke))
	_ = r.SetFont(defaultSurfaceFont)
}

// ClearRect sets the device-space rectangle to transparent black, ignoring
// the current transform.
func (r *RasterContext) ClearRect(x, y, width, height float64) {
	rect := image.Rect(
		int(math.Floor(x)), int(math.Floor(y)),
		int(math.Ceil(x+width)), int(math.Ceil(y+height)),
	)
	draw.Draw(r.rgba(), rect, image.Transparent, image.Point{}, draw.Src)
}

// Save pushes the transform and styles.
func (r *RasterContext) Save() {
	r.dc.Push()
	r.styles = append(r.styles, r.style)
}

// Restore pops the state pushed by Save. An unbalanced Restore is ignored.
func (r *RasterContext) Restore() {
	if len(r.styles) == 0 {
		return
	}
	r.dc.Pop()
	r.style = r.styles[len(r.styles)-1]
	r.styles = r.styles[:len(r.styles)-1]
}

// Translate and Rotate modify the current transform.
func (r *RasterContext) Translate(x, y float64) { r.dc.Translate(x, y) }
func (r *RasterContext) Rotate(angle float64)   { r.dc.Rotate(angle) }

// Path construction. BeginPath discards the current path.
func (r *RasterContext) BeginPath()          { r.dc.ClearPath() }
func (r *RasterContext) ClosePath()          { r.dc.ClosePath() }
func (r *RasterContext) MoveTo(x, y float64) { r.dc.MoveTo(x, y) }
func (r *RasterContext) LineTo(x, y float64) { r.dc.LineTo(x, y) }

// Arc adds a circular arc, angles in radians.
func (r *RasterContext) Arc(x, y, radius, startAngle, endAngle float64) {
	r.dc.DrawArc(x, y, radius, startAngle, endAngle)
}

// Rect adds a closed rectangle subpath.
func (r *RasterContext) Rect(x, y, width, height float64) {
	r.dc.DrawRectangle(x, y, width, height)
}

// SetFillStyle sets the color used by Fill and FillText.
func (r *RasterContext) SetFillStyle(c Color) {
	r.style.fill = c
	r.dc.SetFillStyle(gg.NewSolidPattern(c))
}

// SetStrokeStyle sets the color used by Stroke.
func (r *RasterContext) SetStrokeStyle(c Color) {
	r.style.stroke = c
	r.dc.SetStrokeStyle(gg.NewSolidPattern(c))
}

// SetLineWidth sets the stroke width.
func (r *RasterContext) SetLineWidth(width float64) { r.dc.SetLineWidth(width) }

// Fill and Stroke paint the current path and keep it.
func (r *RasterContext) Fill()   { r.dc.FillPreserve() }
func (r *RasterContext) Stroke() { r.dc.StrokePreserve() }

// SetFont parses desc and selects the matching face. An invalid descriptor
// returns an error and leaves the current font in place.
func (r *RasterContext) SetFont(desc string) error {
	spec, err := ParseFont(desc)
	if err != nil {
		return err
	}
	face, err := faces.face(spec)
	if err != nil {
		return err
	}
	r.dc.SetFontFace(face)
	r.style.font = desc
	return nil
}

// Font returns the descriptor most recently accepted by SetFont.
func (r *RasterContext) Font() string { return r.style.font }

// MeasureText returns the advance width of text in the current font.
func (r *RasterContext) MeasureText(text string) float64 {
	w, _ := r.dc.MeasureString(text)
	return w
}

// FillText paints text in the fill color with its baseline at y.
func (r *RasterContext) FillText(text string, x, y float64) {
	// gg paints glyphs with its single current color.
	r.dc.Push()
	r.dc.SetColor(r.style.fill)
	r.dc.DrawString(text, x, y)
	r.dc.Pop()
}

// DrawImage scales img into the (x, y, width, height) rectangle under the
// current transform.
func (r *RasterContext) DrawImage(img image.Image, x, y, width, height float64) {
	w, h := int(math.Round(width)), int(math.Round(height))
	if img == nil || w <= 0 || h <= 0 {
		return
	}
	scaled := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.BiLinear.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)

	r.dc.Push()
	r.dc.Translate(x, y)
	r.dc.DrawImage(scaled, 0, 0)
	r.dc.Pop()
}

// GetImageData copies a device-space rectangle into a new PixelBuffer.
func (r *RasterContext) GetImageData(x, y, width, height int) (*PixelBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyRegion
	}
	buf := NewPixelBuffer(width, height)
	dst := buf.NRGBA()
	src := r.rgba()
	// Clip to the surface; anything outside stays transparent black.
	area := image.Rect(x, y, x+width, y+height).Intersect(src.Bounds())
	if area.Empty() {
		return buf, nil
	}
	draw.Draw(dst, area.Sub(image.Pt(x, y)), src, area.Min, draw.Src)
	return buf, nil
}

// PutImageData writes buf at (x, y), replacing the pixels underneath.
func (r *RasterContext) PutImageData(buf *PixelBuffer, x, y int) {
	if buf == nil || buf.Width == 0 || buf.Height == 0 {
		return
	}
	rect := image.Rect(x, y, x+buf.Width, y+buf.Height)
	draw.Draw(r.rgba(), rect, buf.NRGBA(), image.Point{}, draw.Src)
}

// Snapshot returns the live premultiplied backing image. It is only valid
// until the next Resize.
func (r *RasterContext) Snapshot() *image.RGBA { return r.rgba() }

// At returns the straight-alpha color at a device pixel.
func (r *RasterContext) At(x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(r.rgba().At(x, y)).(color.NRGBA)
}

// SavePNG encodes the surface to a PNG file.
func (r *RasterContext) SavePNG(path string) error {
	return r.dc.SavePNG(path)
}

func (r *RasterContext) rgba() *image.RGBA {
	return r.dc.Image().(*image.RGBA)
}

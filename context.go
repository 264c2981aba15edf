package easel

import "image"

// Context is the 2D drawing surface every shape paints into. Its methods
// follow the HTML canvas 2D API: a current path, a save/restore stack of
// transform and style state, and raw pixel access that ignores the transform.
//
// A Context is not safe for concurrent use; it belongs to the engine thread.
type Context interface {
	Width() int
	Height() int
	// Resize changes the surface size. Contents and state are reset.
	Resize(width, height int)

	// ClearRect sets the device-space rectangle to transparent black.
	ClearRect(x, y, width, height float64)

	Save()
	Restore()
	Translate(x, y float64)
	Rotate(angle float64)

	BeginPath()
	ClosePath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Arc(x, y, radius, startAngle, endAngle float64)
	Rect(x, y, width, height float64)

	SetFillStyle(c Color)
	SetStrokeStyle(c Color)
	SetLineWidth(width float64)
	// Fill and Stroke paint the current path and keep it.
	Fill()
	Stroke()

	// SetFont selects a CSS-style font descriptor such as "20pt Arial".
	SetFont(desc string) error
	MeasureText(text string) float64
	// FillText paints text with its alphabetic baseline at y.
	FillText(text string, x, y float64)

	// DrawImage paints img scaled into the (x, y, width, height) rectangle
	// under the current transform.
	DrawImage(img image.Image, x, y, width, height float64)

	// GetImageData reads a device-space rectangle. Pixels outside the surface
	// read as transparent black.
	GetImageData(x, y, width, height int) (*PixelBuffer, error)
	// PutImageData writes buf verbatim at (x, y), ignoring transform and
	// compositing.
	PutImageData(buf *PixelBuffer, x, y int)
}

// Snapshotter is implemented by surfaces that can hand out their pixels,
// used by screenshots and host blits.
type Snapshotter interface {
	Snapshot() *image.RGBA
}

package easel

import "math"

// Line is a stroked segment from (x1, y1) to (x2, y2). Rotation turns the
// segment about its midpoint at draw time; the endpoints themselves are never
// rewritten.
type Line struct {
	shapeBase
	x1, y1, x2, y2 float64
	lineWidth      float64
	rotation       float64
}

// Kind returns ShapeLine.
func (l *Line) Kind() ShapeKind { return ShapeLine }

// Points returns the unrotated endpoints.
func (l *Line) Points() (x1, y1, x2, y2 float64) {
	return l.x1, l.y1, l.x2, l.y2
}

// SetStartPoint moves the first endpoint.
func (l *Line) SetStartPoint(x, y float64) {
	l.x1 = x
	l.y1 = y
}

// SetEndPoint moves the second endpoint.
func (l *Line) SetEndPoint(x, y float64) {
	l.x2 = x
	l.y2 = y
}

// LineWidth returns the stroke width.
func (l *Line) LineWidth() float64 { return l.lineWidth }

// SetLineWidth sets the stroke width.
func (l *Line) SetLineWidth(width float64) { l.lineWidth = width }

// Rotation returns the rotation in radians.
func (l *Line) Rotation() float64 { return l.rotation }

// SetRotation sets the rotation in radians.
func (l *Line) SetRotation(rotation float64) { l.rotation = rotation }

// Move shifts both endpoints.
func (l *Line) Move(dx, dy float64) {
	l.x1 += dx
	l.x2 += dx
	l.y1 += dy
	l.y2 += dy
}

// RotatedPoints returns the endpoints after applying the rotation about the
// segment's midpoint.
func (l *Line) RotatedPoints() (x1, y1, x2, y2 float64) {
	return rotateSegment(l.rotation, l.x1, l.y1, l.x2, l.y2)
}

// Draw strokes the rotated segment.
func (l *Line) Draw(ctx Context) error {
	ctx.SetFillStyle(l.color)
	ctx.BeginPath()
	ctx.SetStrokeStyle(l.color)
	ctx.SetLineWidth(l.lineWidth)
	x1, y1, x2, y2 := l.RotatedPoints()
	ctx.MoveTo(x1, y1)
	ctx.LineTo(x2, y2)
	ctx.ClosePath()
	ctx.Stroke()
	return nil
}

// ContainsPoint tests the shape's (x, y, width, height) box, edges inclusive.
// A Line's constructor fills in only the endpoints, so that box stays empty
// at the origin until SetPosition/SetSize populate it; the endpoints are not
// consulted.
func (l *Line) ContainsPoint(x, y float64) bool {
	return l.Bounds().Contains(x, y)
}

func rotateSegment(angle, x1, y1, x2, y2 float64) (float64, float64, float64, float64) {
	midX := (x1 + x2) / 2
	midY := (y1 + y2) / 2
	sin, cos := math.Sincos(angle)
	rx1, ry1 := rotateAbout(x1, y1, midX, midY, sin, cos)
	rx2, ry2 := rotateAbout(x2, y2, midX, midY, sin, cos)
	return rx1, ry1, rx2, ry2
}

func rotateAbout(x, y, cx, cy, sin, cos float64) (float64, float64) {
	x -= cx
	y -= cy
	return x*cos - y*sin + cx, x*sin + y*cos + cy
}

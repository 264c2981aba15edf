package easel

import "math"

// Circle is a filled circle centered on (X, Y).
type Circle struct {
	shapeBase
	radius float64
}

// Kind returns ShapeCircle.
func (c *Circle) Kind() ShapeKind { return ShapeCircle }

// Radius returns the radius.
func (c *Circle) Radius() float64 { return c.radius }

// SetRadius sets the radius.
func (c *Circle) SetRadius(radius float64) { c.radius = radius }

// Draw fills a full arc around the center.
func (c *Circle) Draw(ctx Context) error {
	ctx.BeginPath()
	ctx.Arc(c.x, c.y, c.radius, 0, 2*math.Pi)
	ctx.SetFillStyle(c.color)
	ctx.Fill()
	ctx.ClosePath()
	return nil
}

// ContainsPoint reports whether (x, y) is strictly inside the circle. A point
// exactly on the circumference is outside.
func (c *Circle) ContainsPoint(x, y float64) bool {
	dx := x - c.x
	dy := y - c.y
	return dx*dx+dy*dy < c.radius*c.radius
}

package easel

// Rectangle is a filled rectangle with its top-left corner at (X, Y),
// rotated about its own center.
type Rectangle struct {
	shapeBase
	rotation float64
}

// Kind returns ShapeRectangle.
func (r *Rectangle) Kind() ShapeKind { return ShapeRectangle }

// Rotation returns the rotation in radians.
func (r *Rectangle) Rotation() float64 { return r.rotation }

// SetRotation sets the rotation in radians.
func (r *Rectangle) SetRotation(rotation float64) { r.rotation = rotation }

// Draw fills the rectangle rotated about its center.
func (r *Rectangle) Draw(ctx Context) error {
	ctx.Save()
	ctx.BeginPath()
	ctx.Translate(r.x+r.width/2, r.y+r.height/2)
	ctx.Rotate(r.rotation)
	ctx.Rect(-r.width/2, -r.height/2, r.width, r.height)
	ctx.SetFillStyle(r.color)
	ctx.ClosePath()
	ctx.Fill()
	ctx.Restore()
	return nil
}

// ContainsPoint tests the unrotated (x, y, width, height) box, edges
// inclusive. Rotation is not taken into account, so a rotated rectangle's
// painted corners may fall outside the tested area.
func (r *Rectangle) ContainsPoint(x, y float64) bool {
	return r.Bounds().Contains(x, y)
}

package easel

// Shape is the drawable capability shared by the closed set of primitives:
// *Circle, *Rectangle, *Line, *Text and *Image. Shapes are created through a
// Scene, which registers them in draw order.
type Shape interface {
	// Kind reports which variant the shape is.
	Kind() ShapeKind
	// Draw paints the shape onto ctx using its current fields.
	Draw(ctx Context) error
	// ContainsPoint is a pure hit-test predicate in surface coordinates.
	ContainsPoint(x, y float64) bool

	X() float64
	Y() float64
	Width() float64
	Height() float64
	SetPosition(x, y float64)
	Move(dx, dy float64)
	Color() Color
	SetColor(c Color)
	Visible() bool
	// Order is the registration index, which is also the draw order.
	Order() int

	base() *shapeBase
}

// shapeBase holds the fields every variant carries.
type shapeBase struct {
	x, y          float64
	width, height float64
	color         Color
	stroke        Color
	visible       bool
	order         int
	surface       Context
}

func newShapeBase(x, y float64) shapeBase {
	return shapeBase{
		x:      x,
		y:      y,
		color:  ColorBlack,
		stroke: ColorBlack,
	}
}

func (b *shapeBase) base() *shapeBase { return b }

// X, Y, Width and Height return the shape's box.
func (b *shapeBase) X() float64      { return b.x }
func (b *shapeBase) Y() float64      { return b.y }
func (b *shapeBase) Width() float64  { return b.width }
func (b *shapeBase) Height() float64 { return b.height }

// Position returns (x, y).
func (b *shapeBase) Position() (float64, float64) { return b.x, b.y }

// SetPosition moves the shape to (x, y).
func (b *shapeBase) SetPosition(x, y float64) {
	b.x = x
	b.y = y
}

// SetSize sets the bounding width and height used by hit-testing.
func (b *shapeBase) SetSize(width, height float64) {
	b.width = width
	b.height = height
}

// Move shifts the shape by (dx, dy).
func (b *shapeBase) Move(dx, dy float64) {
	b.x += dx
	b.y += dy
}

// Color and SetColor access the fill color.
func (b *shapeBase) Color() Color     { return b.color }
func (b *shapeBase) SetColor(c Color) { b.color = c }

// StrokeColor returns the stroke color. None of the built-in fills paint a
// stroke; it is kept for consumers that draw outlines themselves.
func (b *shapeBase) StrokeColor() Color     { return b.stroke }
func (b *shapeBase) SetStrokeColor(c Color) { b.stroke = c }

// Visible reports whether the shape is drawn; Order is its registration
// index.
func (b *shapeBase) Visible() bool { return b.visible }
func (b *shapeBase) Order() int    { return b.order }

// Bounds returns the (x, y, width, height) box used by the rectangular
// hit-tests.
func (b *shapeBase) Bounds() Rect {
	return Rect{X: b.x, Y: b.y, Width: b.width, Height: b.height}
}

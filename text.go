package easel

// textHeightFactor scales the width of "m" into an approximate line height.
const textHeightFactor = 1.2

// Text is a single-line label drawn with its baseline at (X, Y). Width and
// Height are measured on the owning surface whenever the label or font
// changes and again on every Draw.
type Text struct {
	shapeBase
	label   string
	font    string
	measure error
}

// Kind returns ShapeText.
func (t *Text) Kind() ShapeKind { return ShapeText }

// Label returns the label.
func (t *Text) Label() string { return t.label }

// SetLabel replaces the label and re-measures it.
func (t *Text) SetLabel(label string) {
	t.label = label
	t.measure = t.resetDimensions(t.surface)
}

// Font returns the font descriptor.
func (t *Text) Font() string { return t.font }

// SetFont selects a font descriptor such as "30pt Helvetica" and re-measures
// the label. An unparseable descriptor is rejected and the previous font kept.
func (t *Text) SetFont(desc string) error {
	if _, err := ParseFont(desc); err != nil {
		return err
	}
	t.font = desc
	t.measure = t.resetDimensions(t.surface)
	return t.measure
}

// Err returns the error from the most recent measurement, if any.
func (t *Text) Err() error { return t.measure }

// resetDimensions measures with ctx's text facility: width is the label
// width, height is 1.2 times the width of "m".
func (t *Text) resetDimensions(ctx Context) error {
	if ctx == nil {
		return nil
	}
	if err := ctx.SetFont(t.font); err != nil {
		return err
	}
	t.width = ctx.MeasureText(t.label)
	t.height = ctx.MeasureText("m") * textHeightFactor
	return nil
}

// Draw re-measures the label and fills it at its baseline.
func (t *Text) Draw(ctx Context) error {
	ctx.SetFillStyle(t.color)
	if err := t.resetDimensions(ctx); err != nil {
		t.measure = err
		return err
	}
	ctx.Translate(t.x, t.y)
	ctx.FillText(t.label, 0, 0)
	ctx.Translate(-t.x, -t.y)
	return nil
}

// ContainsPoint tests the measured (x, y, width, height) box, edges inclusive.
func (t *Text) ContainsPoint(x, y float64) bool {
	return t.Bounds().Contains(x, y)
}

package easel

import (
	"errors"
	"fmt"
	"image"
	"strings"
)

// recorder is a Context that logs every call as a short string.
type recorder struct {
	w, h  int
	calls []string
	font  string

	failFont  string // SetFont fails for descriptors containing this
	panicOnOp string // the named op panics
	charWidth float64
	data      map[[2]int]*PixelBuffer
}

func newRecorder(w, h int) *recorder {
	return &recorder{w: w, h: h, charWidth: 10, data: make(map[[2]int]*PixelBuffer)}
}

func (r *recorder) log(op string, args ...any) {
	if op == r.panicOnOp {
		panic("boom in " + op)
	}
	if len(args) == 0 {
		r.calls = append(r.calls, op)
		return
	}
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprint(a)
	}
	r.calls = append(r.calls, op+"("+strings.Join(parts, ",")+")")
}

func (r *recorder) reset() { r.calls = nil }

func (r *recorder) Width() int  { return r.w }
func (r *recorder) Height() int { return r.h }
func (r *recorder) Resize(w, h int) {
	r.w, r.h = w, h
	r.log("resize", w, h)
}
func (r *recorder) ClearRect(x, y, w, h float64) { r.log("clearRect", x, y, w, h) }
func (r *recorder) Save()                        { r.log("save") }
func (r *recorder) Restore()                     { r.log("restore") }
func (r *recorder) Translate(x, y float64)       { r.log("translate", x, y) }
func (r *recorder) Rotate(a float64)             { r.log("rotate", a) }
func (r *recorder) BeginPath()                   { r.log("beginPath") }
func (r *recorder) ClosePath()                   { r.log("closePath") }
func (r *recorder) MoveTo(x, y float64)          { r.log("moveTo", x, y) }
func (r *recorder) LineTo(x, y float64)          { r.log("lineTo", x, y) }
func (r *recorder) Arc(x, y, rad, a0, a1 float64) {
	r.log("arc", x, y, rad)
}
func (r *recorder) Rect(x, y, w, h float64)  { r.log("rect", x, y, w, h) }
func (r *recorder) SetFillStyle(c Color)     { r.log("fillStyle", c.Hex()) }
func (r *recorder) SetStrokeStyle(c Color)   { r.log("strokeStyle", c.Hex()) }
func (r *recorder) SetLineWidth(w float64)   { r.log("lineWidth", w) }
func (r *recorder) Fill()                    { r.log("fill") }
func (r *recorder) Stroke()                  { r.log("stroke") }
func (r *recorder) FillText(s string, x, y float64) {
	r.log("fillText", s, x, y)
}

func (r *recorder) SetFont(desc string) error {
	if r.failFont != "" && strings.Contains(desc, r.failFont) {
		return errors.New("no such font")
	}
	r.font = desc
	return nil
}

// MeasureText returns charWidth per rune.
func (r *recorder) MeasureText(s string) float64 {
	return r.charWidth * float64(len([]rune(s)))
}

func (r *recorder) DrawImage(img image.Image, x, y, w, h float64) {
	r.log("drawImage", x, y, w, h)
}

func (r *recorder) GetImageData(x, y, w, h int) (*PixelBuffer, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyRegion
	}
	r.log("getImageData", x, y, w, h)
	if buf, ok := r.data[[2]int{x, y}]; ok && buf.Width == w && buf.Height == h {
		return buf.Clone(), nil
	}
	return NewPixelBuffer(w, h), nil
}

func (r *recorder) PutImageData(buf *PixelBuffer, x, y int) {
	r.log("putImageData", x, y)
	r.data[[2]int{x, y}] = buf.Clone()
}

func (r *recorder) count(prefix string) int {
	n := 0
	for _, c := range r.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

func (r *recorder) exact(op string) int {
	n := 0
	for _, c := range r.calls {
		if c == op {
			n++
		}
	}
	return n
}

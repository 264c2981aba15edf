package easel

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields on a Shape simultaneously.
// Create one via the convenience constructors (TweenPosition, TweenColor,
// TweenRotation, TweenRadius) and either call Update(dt) each frame yourself
// or hand it to Scene.Animate so Tick drives it. Values are written straight
// into the shape; the next redraw shows them.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target Shape
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the target
// fields.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// Target returns the animated shape.
func (g *TweenGroup) Target() Shape { return g.target }

func (g *TweenGroup) add(field *float64, to float64, duration float32, fn ease.TweenFunc) {
	g.tweens[g.count] = gween.New(float32(*field), float32(to), duration, fn)
	g.fields[g.count] = field
	g.count++
}

// TweenPosition creates a TweenGroup that moves sh to (toX, toY). A Line
// moves its start point there and carries its end point by the same offset.
func TweenPosition(sh Shape, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: sh}
	if l, ok := sh.(*Line); ok {
		dx, dy := toX-l.x1, toY-l.y1
		g.add(&l.x1, toX, duration, fn)
		g.add(&l.y1, toY, duration, fn)
		g.add(&l.x2, l.x2+dx, duration, fn)
		g.add(&l.y2, l.y2+dy, duration, fn)
		return g
	}
	b := sh.base()
	g.add(&b.x, toX, duration, fn)
	g.add(&b.y, toY, duration, fn)
	return g
}

// TweenColor creates a TweenGroup that animates all four components of the
// shape's fill color to the target color.
func TweenColor(sh Shape, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	b := sh.base()
	g := &TweenGroup{target: sh}
	g.add(&b.color.R, to.R, duration, fn)
	g.add(&b.color.G, to.G, duration, fn)
	g.add(&b.color.B, to.B, duration, fn)
	g.add(&b.color.A, to.A, duration, fn)
	return g
}

// TweenRotation creates a TweenGroup that animates the rotation of a
// Rectangle, Line or Image, in radians. Rotating an Image takes it out of
// buffer mode. Returns nil for shapes without a rotation.
func TweenRotation(sh Shape, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: sh}
	switch v := sh.(type) {
	case *Rectangle:
		g.add(&v.rotation, to, duration, fn)
	case *Line:
		g.add(&v.rotation, to, duration, fn)
	case *Image:
		v.fromBuffer = false
		g.add(&v.rotation, to, duration, fn)
	default:
		return nil
	}
	return g
}

// TweenRadius creates a TweenGroup that animates a circle's radius.
func TweenRadius(c *Circle, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: c}
	g.add(&c.radius, to, duration, fn)
	return g
}

// Animate registers g to be advanced by every Tick until it is done. A nil
// group is ignored.
func (s *Scene) Animate(g *TweenGroup) {
	if g == nil {
		return
	}
	s.tweens = append(s.tweens, g)
}

// Animating returns the number of tween groups still running.
func (s *Scene) Animating() int {
	return len(s.tweens)
}

func (s *Scene) updateTweens(dt float32) {
	if len(s.tweens) == 0 {
		return
	}
	live := s.tweens[:0]
	for _, g := range s.tweens {
		g.Update(dt)
		if !g.Done {
			live = append(live, g)
		}
	}
	clear(s.tweens[len(live):])
	s.tweens = live
}

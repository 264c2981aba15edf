package easel

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

const defaultEventQueueCap = 256

// Scene is the engine instance. It owns the drawing surface, the ordered
// registry of every shape constructed through it, the input listener tables
// and the per-tick work queue.
//
// A Scene is single-threaded: every method except Post must be called from
// the engine thread (the goroutine running Loop.Run or the host's update
// callback).
type Scene struct {
	surface Context
	shapes  []Shape

	// Input
	handlers    handlerRegistry
	isolation   Isolation
	offsetX     float64
	offsetY     float64
	injectQueue []syntheticEvent

	// Cross-thread work and image loading
	events      chan func()
	closed      chan struct{}
	closeOnce   sync.Once
	loader      ImageLoader
	loadCtx     context.Context
	cancelLoads context.CancelFunc

	// Tick state
	tweens       []*TweenGroup
	updateFn     func(dt float64) error
	ticking      bool
	skippedTicks int
	debug        bool

	testRunner      *TestRunner
	screenshotQueue []string

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string
}

// NewScene creates a scene drawing into surface.
func NewScene(surface Context) *Scene {
	if surface == nil {
		panic("easel: nil surface")
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Scene{
		surface:       surface,
		events:        make(chan func(), defaultEventQueueCap),
		closed:        make(chan struct{}),
		loader:        DefaultImageLoader,
		loadCtx:       ctx,
		cancelLoads:   cancel,
		ScreenshotDir: "screenshots",
	}
}

// Surface returns the scene's drawing surface.
func (s *Scene) Surface() Context {
	return s.surface
}

// SetSize resizes the surface. Like a canvas resize, this clears it.
func (s *Scene) SetSize(width, height int) {
	s.surface.Resize(width, height)
}

// Width and Height return the surface size.
func (s *Scene) Width() int  { return s.surface.Width() }
func (s *Scene) Height() int { return s.surface.Height() }

// Clear erases the whole surface.
func (s *Scene) Clear() {
	s.surface.ClearRect(0, 0, float64(s.surface.Width()), float64(s.surface.Height()))
}

// --- Construction ---

func (s *Scene) register(sh Shape) {
	b := sh.base()
	b.order = len(s.shapes)
	b.surface = s.surface
	s.shapes = append(s.shapes, sh)
}

// NewCircle registers a circle of the given radius centered on (x, y).
func (s *Scene) NewCircle(radius, x, y float64) *Circle {
	c := &Circle{shapeBase: newShapeBase(x, y), radius: radius}
	s.register(c)
	return c
}

// NewRectangle registers a width x height rectangle with its top-left corner
// at (x, y).
func (s *Scene) NewRectangle(width, height, x, y float64) *Rectangle {
	r := &Rectangle{shapeBase: newShapeBase(x, y)}
	r.width = width
	r.height = height
	s.register(r)
	return r
}

// NewLine registers a segment from (x1, y1) to (x2, y2) with a line width of 1.
func (s *Scene) NewLine(x1, y1, x2, y2 float64) *Line {
	l := &Line{
		shapeBase: newShapeBase(0, 0),
		x1:        x1, y1: y1, x2: x2, y2: y2,
		lineWidth: 1,
	}
	s.register(l)
	return l
}

// NewText registers a label with its baseline at (x, y) in DefaultFont.
func (s *Scene) NewText(label string, x, y float64) *Text {
	t := &Text{shapeBase: newShapeBase(x, y), label: label, font: DefaultFont}
	s.register(t)
	t.measure = t.resetDimensions(s.surface)
	return t
}

// NewImage registers an image box at (x, y) and starts loading source.
// Non-positive sizes fall back to DefaultImageWidth/DefaultImageHeight.
func (s *Scene) NewImage(source string, x, y, width, height float64) *Image {
	if width <= 0 {
		width = DefaultImageWidth
	}
	if height <= 0 {
		height = DefaultImageHeight
	}
	m := &Image{shapeBase: newShapeBase(x, y), source: source, scene: s}
	m.width = width
	m.height = height
	s.register(m)
	s.loadImage(m)
	return m
}

// --- Visibility ---

// Add makes sh visible. Adding a visible shape is a no-op.
func (s *Scene) Add(sh Shape) {
	if sh == nil {
		panic("easel: cannot add nil shape")
	}
	if s.debug {
		s.debugCheckShape(sh, "Add")
	}
	sh.base().visible = true
}

// Remove hides sh. The shape stays registered and keeps its draw order.
func (s *Scene) Remove(sh Shape) {
	if sh == nil {
		panic("easel: cannot remove nil shape")
	}
	if s.debug {
		s.debugCheckShape(sh, "Remove")
	}
	sh.base().visible = false
}

// RemoveAll hides every registered shape.
func (s *Scene) RemoveAll() {
	for _, sh := range s.shapes {
		sh.base().visible = false
	}
}

// Shapes returns the registry in draw order. The returned slice MUST NOT be
// mutated.
func (s *Scene) Shapes() []Shape {
	return s.shapes
}

// ShapeAt returns the topmost visible shape containing (x, y), or nil.
func (s *Scene) ShapeAt(x, y float64) Shape {
	for i := len(s.shapes) - 1; i >= 0; i-- {
		sh := s.shapes[i]
		if sh.Visible() && sh.ContainsPoint(x, y) {
			return sh
		}
	}
	return nil
}

// --- Drawing ---

// Redraw clears the surface and draws every visible shape in registration
// order. A shape whose Draw fails or panics does not stop the pass; all
// failures are returned joined.
func (s *Scene) Redraw() error {
	_, _, err := s.redraw()
	return err
}

func (s *Scene) redraw() (drawn, hidden int, err error) {
	s.Clear()
	var errs []error
	for _, sh := range s.shapes {
		if !sh.Visible() {
			hidden++
			continue
		}
		drawn++
		if derr := drawShape(s.surface, sh); derr != nil {
			errs = append(errs, fmt.Errorf("draw %s #%d: %w", sh.Kind(), sh.Order(), derr))
		}
	}
	return drawn, hidden, errors.Join(errs...)
}

func drawShape(ctx Context, sh Shape) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrDrawPanic, r)
		}
	}()
	return sh.Draw(ctx)
}

// --- Ticking ---

// SetUpdateFunc sets a callback run once per tick before the redraw. An
// error is logged and does not stop the tick.
func (s *Scene) SetUpdateFunc(fn func(dt float64) error) {
	s.updateFn = fn
}

// SetDebugMode enables per-tick timing stats, logged at debug level.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// Tick runs one frame: posted work, scripted steps, one injected input
// event, tweens, the update func, the redraw and queued screenshots. dt is
// the frame time in seconds. A Tick called from inside another Tick is
// skipped and counted.
func (s *Scene) Tick(dt float64) error {
	if s.ticking {
		s.skippedTicks++
		return nil
	}
	s.ticking = true
	defer func() { s.ticking = false }()

	var stats debugStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	stats.events = s.Pump()
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInjected()
	s.updateTweens(float32(dt))
	if s.updateFn != nil {
		if err := s.updateFn(dt); err != nil {
			Logger().Warn("update func failed", "error", err)
		}
	}

	if s.debug {
		stats.updateTime = time.Since(t0)
		t0 = time.Now()
	}

	drawn, hidden, err := s.redraw()

	if s.debug {
		stats.redrawTime = time.Since(t0)
		stats.drawn = drawn
		stats.hidden = hidden
		if err != nil {
			stats.failed = len(unwrapJoined(err))
		}
		s.debugLog(stats)
	}

	s.flushScreenshots()
	return err
}

// SkippedTicks returns how many reentrant Tick calls were refused.
func (s *Scene) SkippedTicks() int {
	return s.skippedTicks
}

// --- Cross-thread work ---

// Post queues fn to run on the engine thread during the next Pump. It is the
// only Scene method safe to call from other goroutines. Post reports false
// once the scene is closed.
func (s *Scene) Post(fn func()) bool {
	select {
	case <-s.closed:
		return false
	default:
	}
	select {
	case s.events <- fn:
		return true
	case <-s.closed:
		return false
	}
}

// Pump runs all queued work and returns how many items ran.
func (s *Scene) Pump() int {
	n := 0
	for {
		select {
		case fn := <-s.events:
			fn()
			n++
		default:
			return n
		}
	}
}

// Close cancels in-flight image loads and rejects further Posts.
func (s *Scene) Close() {
	s.closeOnce.Do(func() {
		s.cancelLoads()
		close(s.closed)
	})
}

func unwrapJoined(err error) []error {
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		return j.Unwrap()
	}
	return []error{err}
}

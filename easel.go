package easel

import (
	"errors"
	"strings"
)

// Vec2 is a 2D point or offset.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// ShapeKind tags the closed set of shape variants.
type ShapeKind uint8

const (
	ShapeCircle    ShapeKind = iota // filled circle
	ShapeRectangle                  // filled, optionally rotated rectangle
	ShapeLine                       // stroked segment
	ShapeText                       // single-line label
	ShapeImage                      // decoded source image or captured pixel buffer
)

var shapeKindNames = [...]string{"circle", "rectangle", "line", "text", "image"}

// String returns the lower-case kind name.
func (k ShapeKind) String() string {
	if int(k) < len(shapeKindNames) {
		return shapeKindNames[k]
	}
	return "unknown"
}

// EventType identifies a kind of input event.
type EventType uint8

const (
	EventPointerMove  EventType = iota // pointer moved over the surface
	EventPointerDown                   // a pointer button was pressed
	EventClick                         // press and release of the primary button
	EventDoubleClick                   // two clicks in quick succession
	EventKeyDown                       // a key went down
	EventKeyPress                      // a key produced a character
	EventKeyUp                         // a key was released
)

var eventTypeNames = [...]string{
	"mousemove", "mousedown", "click", "dblclick", "keydown", "keypress", "keyup",
}

// String returns the DOM event name, such as "dblclick".
func (e EventType) String() string {
	if int(e) < len(eventTypeNames) {
		return eventTypeNames[e]
	}
	return "unknown"
}

// IsPointer reports whether e carries surface coordinates.
func (e EventType) IsPointer() bool {
	return e <= EventDoubleClick
}

// IsKey reports whether e carries a key event.
func (e EventType) IsKey() bool {
	return e >= EventKeyDown && e <= EventKeyUp
}

// ParseEventType maps a DOM-style event name ("click", "keydown", ...) to
// its EventType.
func ParseEventType(name string) (EventType, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range eventTypeNames {
		if n == name {
			return EventType(i), true
		}
	}
	return 0, false
}

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// KeyEvent is the raw key token delivered to key listeners. The engine does
// not interpret it.
type KeyEvent struct {
	Key       string // key name as reported by the host ("a", "Enter", "ArrowUp")
	Rune      rune   // produced character for key-press events, 0 otherwise
	Modifiers KeyModifiers
}

var (
	// ErrPixelOutOfRange is returned when a pixel coordinate falls outside a
	// captured buffer.
	ErrPixelOutOfRange = errors.New("easel: pixel out of range")
	// ErrNoPixelBuffer is returned by pixel accessors before any capture.
	ErrNoPixelBuffer = errors.New("easel: no pixel buffer captured")
	// ErrEmptyRegion is returned when a capture rectangle has no area.
	ErrEmptyRegion = errors.New("easel: empty pixel region")
	// ErrInvalidFont is returned for font descriptors that cannot be parsed.
	ErrInvalidFont = errors.New("easel: invalid font descriptor")
	// ErrListenerPanic wraps a panic recovered from an input listener.
	ErrListenerPanic = errors.New("easel: listener panicked")
	// ErrDrawPanic wraps a panic recovered from a shape's Draw.
	ErrDrawPanic = errors.New("easel: draw panicked")
	// ErrNoSnapshot is returned when the surface cannot produce an image.
	ErrNoSnapshot = errors.New("easel: surface does not support snapshots")
)

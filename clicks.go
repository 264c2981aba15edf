package easel

import "time"

const (
	// DefaultDoubleClickInterval is the longest gap between two clicks that
	// still counts as a double click.
	DefaultDoubleClickInterval = 500 * time.Millisecond
	// DefaultDoubleClickSlop is how far, in device units, the second click may
	// land from the first.
	DefaultDoubleClickSlop = 4.0
)

// ClickTracker turns a stream of clicks into double clicks for hosts whose
// input source only reports presses and releases.
type ClickTracker struct {
	Interval time.Duration
	Slop     float64

	last    time.Time
	lastX   float64
	lastY   float64
	pending bool
}

// NewClickTracker returns a tracker with the default interval and slop.
func NewClickTracker() *ClickTracker {
	return &ClickTracker{Interval: DefaultDoubleClickInterval, Slop: DefaultDoubleClickSlop}
}

// Click records a click at (x, y) and reports whether it completes a double
// click. The click after a double click starts a new pair.
func (c *ClickTracker) Click(now time.Time, x, y float64) bool {
	interval := c.Interval
	if interval <= 0 {
		interval = DefaultDoubleClickInterval
	}
	if c.pending && now.Sub(c.last) <= interval && near(x, c.lastX, c.Slop) && near(y, c.lastY, c.Slop) {
		c.pending = false
		return true
	}
	c.pending = true
	c.last = now
	c.lastX = x
	c.lastY = y
	return false
}

// Reset forgets the pending first click.
func (c *ClickTracker) Reset() {
	c.pending = false
}

func near(a, b, slop float64) bool {
	d := a - b
	return d <= slop && d >= -slop
}

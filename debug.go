package easel

import "time"

// debugStats holds per-tick timing and draw counts.
// Only populated when Scene.debug is true.
type debugStats struct {
	events     int
	updateTime time.Duration
	redrawTime time.Duration
	drawn      int
	hidden     int
	failed     int
}

// debugLog reports tick stats at debug level.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	Logger().Debug("tick",
		"events", stats.events,
		"update", stats.updateTime,
		"redraw", stats.redrawTime,
		"total", stats.updateTime+stats.redrawTime,
		"drawn", stats.drawn,
		"hidden", stats.hidden,
		"failed", stats.failed,
		"skipped", s.skippedTicks,
	)
}

// debugMaxShapeCount is the registry size past which debug mode warns.
const debugMaxShapeCount = 10000

// debugCheckShape warns when sh was built by a different scene or when the
// registry has grown past debugMaxShapeCount. Only called in debug mode.
func (s *Scene) debugCheckShape(sh Shape, op string) {
	if sh.base().surface != s.surface {
		Logger().Warn("shape belongs to another scene", "op", op, "kind", sh.Kind().String(), "order", sh.Order())
	}
	if len(s.shapes) > debugMaxShapeCount {
		Logger().Warn("shape registry is large", "count", len(s.shapes), "threshold", debugMaxShapeCount)
	}
}

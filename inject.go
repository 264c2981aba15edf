package easel

import "unicode/utf8"

// syntheticEvent is a single injected input event. Pointer events carry
// device coordinates and go through the same offset translation as host
// input.
type syntheticEvent struct {
	kind EventType
	x, y float64
	key  KeyEvent
}

// InjectPointer queues a pointer event at device coordinates. Queued events
// are consumed one per Tick.
func (s *Scene) InjectPointer(kind EventType, x, y float64) {
	if !kind.IsPointer() {
		panic("easel: " + kind.String() + " is not a pointer event")
	}
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: kind, x: x, y: y})
}

// InjectMove queues a pointer move.
func (s *Scene) InjectMove(x, y float64) {
	s.InjectPointer(EventPointerMove, x, y)
}

// InjectClick queues a press followed by a click at the same coordinates.
// Consumes two ticks.
func (s *Scene) InjectClick(x, y float64) {
	s.InjectPointer(EventPointerDown, x, y)
	s.InjectPointer(EventClick, x, y)
}

// InjectDoubleClick queues the full browser sequence: two press/click pairs
// and the double click. Consumes five ticks.
func (s *Scene) InjectDoubleClick(x, y float64) {
	s.InjectClick(x, y)
	s.InjectClick(x, y)
	s.InjectPointer(EventDoubleClick, x, y)
}

// InjectKeyEvent queues a single key event.
func (s *Scene) InjectKeyEvent(kind EventType, ev KeyEvent) {
	if !kind.IsKey() {
		panic("easel: " + kind.String() + " is not a key event")
	}
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: kind, key: ev})
}

// InjectKey queues key-down, key-press (only for single-character keys) and
// key-up for key.
func (s *Scene) InjectKey(key string) {
	ev := KeyEvent{Key: key}
	s.InjectKeyEvent(EventKeyDown, ev)
	if utf8.RuneCountInString(key) == 1 {
		r, _ := utf8.DecodeRuneInString(key)
		s.InjectKeyEvent(EventKeyPress, KeyEvent{Key: key, Rune: r})
	}
	s.InjectKeyEvent(EventKeyUp, ev)
}

// processInjected pops one event from the queue and dispatches it. Returns
// true if an event was consumed.
func (s *Scene) processInjected() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	if evt.kind.IsPointer() {
		s.DispatchPointer(evt.kind, evt.x, evt.y)
	} else {
		s.DispatchKey(evt.kind, evt.key)
	}
	return true
}

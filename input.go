package easel

import (
	"fmt"
	"slices"
)

// PointerListener receives surface-local coordinates.
type PointerListener func(x, y float64) error

// KeyListener receives the raw key event.
type KeyListener func(ev KeyEvent) error

// Isolation selects how far a failing listener's error reaches.
type Isolation uint8

const (
	// IsolateListener logs a failing listener and continues with the next one.
	IsolateListener Isolation = iota
	// IsolateDispatch logs a failing listener and skips the remaining
	// listeners of that dispatch call. Later events dispatch normally.
	IsolateDispatch
)

// --- Handler registry ---

type pointerHandler struct {
	id uint32
	fn PointerListener
}

type keyHandler struct {
	id uint32
	fn KeyListener
}

type handlerRegistry struct {
	pointerMove []pointerHandler
	pointerDown []pointerHandler
	click       []pointerHandler
	doubleClick []pointerHandler
	keyDown     []keyHandler
	keyPress    []keyHandler
	keyUp       []keyHandler
	nextID      uint32
}

func (r *handlerRegistry) pointerList(kind EventType) *[]pointerHandler {
	switch kind {
	case EventPointerMove:
		return &r.pointerMove
	case EventPointerDown:
		return &r.pointerDown
	case EventClick:
		return &r.click
	case EventDoubleClick:
		return &r.doubleClick
	}
	return nil
}

func (r *handlerRegistry) keyList(kind EventType) *[]keyHandler {
	switch kind {
	case EventKeyDown:
		return &r.keyDown
	case EventKeyPress:
		return &r.keyPress
	case EventKeyUp:
		return &r.keyUp
	}
	return nil
}

// CallbackHandle allows removing a registered listener.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this listener so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	if list := h.reg.pointerList(h.event); list != nil {
		*list = slices.DeleteFunc(*list, func(p pointerHandler) bool { return p.id == h.id })
		return
	}
	if list := h.reg.keyList(h.event); list != nil {
		*list = slices.DeleteFunc(*list, func(k keyHandler) bool { return k.id == h.id })
	}
}

// --- Registration ---

// OnPointer registers fn for a pointer event kind. Panics if kind is a key
// event or fn is nil.
func (s *Scene) OnPointer(kind EventType, fn PointerListener) CallbackHandle {
	if fn == nil {
		panic("easel: nil pointer listener")
	}
	list := s.handlers.pointerList(kind)
	if list == nil {
		panic("easel: " + kind.String() + " is not a pointer event")
	}
	s.handlers.nextID++
	id := s.handlers.nextID
	*list = append(*list, pointerHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: kind}
}

// OnKey registers fn for a key event kind. Panics if kind is a pointer
// event or fn is nil.
func (s *Scene) OnKey(kind EventType, fn KeyListener) CallbackHandle {
	if fn == nil {
		panic("easel: nil key listener")
	}
	list := s.handlers.keyList(kind)
	if list == nil {
		panic("easel: " + kind.String() + " is not a key event")
	}
	s.handlers.nextID++
	id := s.handlers.nextID
	*list = append(*list, keyHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: kind}
}

// OnPointerMove registers a listener for pointer movement.
func (s *Scene) OnPointerMove(fn PointerListener) CallbackHandle {
	return s.OnPointer(EventPointerMove, fn)
}

// OnPointerDown registers a listener for button presses.
func (s *Scene) OnPointerDown(fn PointerListener) CallbackHandle {
	return s.OnPointer(EventPointerDown, fn)
}

// OnClick registers a listener for clicks.
func (s *Scene) OnClick(fn PointerListener) CallbackHandle {
	return s.OnPointer(EventClick, fn)
}

// OnDoubleClick registers a listener for double clicks.
func (s *Scene) OnDoubleClick(fn PointerListener) CallbackHandle {
	return s.OnPointer(EventDoubleClick, fn)
}

// OnKeyDown, OnKeyPress and OnKeyUp register key listeners.
func (s *Scene) OnKeyDown(fn KeyListener) CallbackHandle  { return s.OnKey(EventKeyDown, fn) }
func (s *Scene) OnKeyPress(fn KeyListener) CallbackHandle { return s.OnKey(EventKeyPress, fn) }
func (s *Scene) OnKeyUp(fn KeyListener) CallbackHandle    { return s.OnKey(EventKeyUp, fn) }

// SetIsolation selects the listener failure granularity. The default is
// IsolateListener.
func (s *Scene) SetIsolation(iso Isolation) {
	s.isolation = iso
}

// --- Coordinates ---

// SetSurfaceOffset records where the surface's top-left corner sits in
// device space.
func (s *Scene) SetSurfaceOffset(left, top float64) {
	s.offsetX = left
	s.offsetY = top
}

// SurfaceOffset returns the offset set by SetSurfaceOffset.
func (s *Scene) SurfaceOffset() (left, top float64) {
	return s.offsetX, s.offsetY
}

// ToLocal translates device coordinates into surface-local coordinates.
func (s *Scene) ToLocal(deviceX, deviceY float64) (float64, float64) {
	return deviceX - s.offsetX, deviceY - s.offsetY
}

// --- Dispatch ---

// DispatchPointer delivers a pointer event at device coordinates to every
// listener of kind, in registration order, with surface-local coordinates.
// Listener failures are logged and never returned.
func (s *Scene) DispatchPointer(kind EventType, deviceX, deviceY float64) {
	list := s.handlers.pointerList(kind)
	if list == nil || len(*list) == 0 {
		return
	}
	lx, ly := s.ToLocal(deviceX, deviceY)
	// Listeners may register or remove listeners; iterate a snapshot.
	for _, h := range slices.Clone(*list) {
		err := callListener(func() error { return h.fn(lx, ly) })
		if err != nil && s.listenerFailed(kind, h.id, err) {
			return
		}
	}
}

// DispatchKey delivers ev unmodified to every listener of kind.
func (s *Scene) DispatchKey(kind EventType, ev KeyEvent) {
	list := s.handlers.keyList(kind)
	if list == nil || len(*list) == 0 {
		return
	}
	for _, h := range slices.Clone(*list) {
		err := callListener(func() error { return h.fn(ev) })
		if err != nil && s.listenerFailed(kind, h.id, err) {
			return
		}
	}
}

// listenerFailed logs err and reports whether the dispatch call should stop.
func (s *Scene) listenerFailed(kind EventType, id uint32, err error) bool {
	Logger().Warn("input listener failed", "event", kind.String(), "listener", id, "error", err)
	return s.isolation == IsolateDispatch
}

func callListener(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrListenerPanic, r)
		}
	}()
	return fn()
}

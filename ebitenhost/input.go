package ebitenhost

import (
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/phanxgames/easel"
)

// frameInput is the input captured during one ebiten frame.
type frameInput struct {
	CursorX, CursorY int
	LeftPressed      bool
	LeftReleased     bool
	KeysDown         []ebiten.Key
	KeysUp           []ebiten.Key
	Chars            []rune
	Modifiers        easel.KeyModifiers
}

// readFrame reads the current frame's input from ebiten.
func readFrame() frameInput {
	mx, my := ebiten.CursorPosition()
	return frameInput{
		CursorX:      mx,
		CursorY:      my,
		LeftPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		LeftReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		KeysDown:     inpututil.AppendJustPressedKeys(nil),
		KeysUp:       inpututil.AppendJustReleasedKeys(nil),
		Chars:        ebiten.AppendInputChars(nil),
		Modifiers:    currentModifiers(),
	}
}

func currentModifiers() easel.KeyModifiers {
	var m easel.KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		m |= easel.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		m |= easel.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		m |= easel.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		m |= easel.ModMeta
	}
	return m
}

// inputState carries what must survive between frames.
type inputState struct {
	clicks  *easel.ClickTracker
	lastX   int
	lastY   int
	hasLast bool
}

// apply dispatches one frame of input to scene in browser order: move,
// press, release (click, then double click), key down, key press, key up.
func (s *inputState) apply(scene *easel.Scene, in frameInput, now time.Time) {
	x, y := float64(in.CursorX), float64(in.CursorY)
	if !s.hasLast || in.CursorX != s.lastX || in.CursorY != s.lastY {
		s.lastX, s.lastY, s.hasLast = in.CursorX, in.CursorY, true
		scene.DispatchPointer(easel.EventPointerMove, x, y)
	}
	if in.LeftPressed {
		scene.DispatchPointer(easel.EventPointerDown, x, y)
	}
	if in.LeftReleased {
		scene.DispatchPointer(easel.EventClick, x, y)
		if s.clicks != nil && s.clicks.Click(now, x, y) {
			scene.DispatchPointer(easel.EventDoubleClick, x, y)
		}
	}
	for _, k := range in.KeysDown {
		scene.DispatchKey(easel.EventKeyDown, easel.KeyEvent{Key: keyName(k), Modifiers: in.Modifiers})
	}
	for _, r := range in.Chars {
		scene.DispatchKey(easel.EventKeyPress, easel.KeyEvent{Key: string(r), Rune: r, Modifiers: in.Modifiers})
	}
	for _, k := range in.KeysUp {
		scene.DispatchKey(easel.EventKeyUp, easel.KeyEvent{Key: keyName(k), Modifiers: in.Modifiers})
	}
}

// keyName maps an ebiten key to a browser-style key name. Letters are
// lower-cased, digits drop their "Digit" prefix, and space becomes " ".
func keyName(k ebiten.Key) string {
	if k == ebiten.KeySpace {
		return " "
	}
	name := k.String()
	if len(name) == 1 {
		return strings.ToLower(name)
	}
	if d, ok := strings.CutPrefix(name, "Digit"); ok {
		return d
	}
	return name
}

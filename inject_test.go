package easel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInjectOneEventPerTick(t *testing.T) {
	s, _ := newTestScene()
	var got []string
	s.OnPointerDown(func(x, y float64) error { got = append(got, "down"); return nil })
	s.OnClick(func(x, y float64) error { got = append(got, "click"); return nil })

	s.InjectClick(10, 10)
	require.Len(t, s.injectQueue, 2)

	require.NoError(t, s.Tick(0))
	assert.Equal(t, []string{"down"}, got)
	require.NoError(t, s.Tick(0))
	assert.Equal(t, []string{"down", "click"}, got)
	assert.Empty(t, s.injectQueue)
	assert.False(t, s.processInjected())
}

func TestInjectDoubleClickSequence(t *testing.T) {
	s, _ := newTestScene()
	s.InjectDoubleClick(3, 4)
	var kinds []EventType
	for _, ev := range s.injectQueue {
		kinds = append(kinds, ev.kind)
	}
	assert.Equal(t, []EventType{
		EventPointerDown, EventClick, EventPointerDown, EventClick, EventDoubleClick,
	}, kinds)
}

func TestInjectUsesDeviceCoordinates(t *testing.T) {
	s, _ := newTestScene()
	s.SetSurfaceOffset(5, 5)
	var gotX, gotY float64
	s.OnPointerMove(func(x, y float64) error { gotX, gotY = x, y; return nil })

	s.InjectMove(15, 25)
	require.True(t, s.processInjected())
	assert.Equal(t, 10.0, gotX)
	assert.Equal(t, 20.0, gotY)
}

func TestInjectKey(t *testing.T) {
	tests := []struct {
		key   string
		kinds []EventType
	}{
		{"a", []EventType{EventKeyDown, EventKeyPress, EventKeyUp}},
		{"Enter", []EventType{EventKeyDown, EventKeyUp}},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			s, _ := newTestScene()
			s.InjectKey(tt.key)
			var kinds []EventType
			for _, ev := range s.injectQueue {
				kinds = append(kinds, ev.kind)
				assert.Equal(t, tt.key, ev.key.Key)
			}
			assert.Equal(t, tt.kinds, kinds)
		})
	}

	s, _ := newTestScene()
	var press KeyEvent
	s.OnKeyPress(func(ev KeyEvent) error { press = ev; return nil })
	s.InjectKey("z")
	for s.processInjected() {
	}
	assert.Equal(t, 'z', press.Rune)
}

func TestInjectRejectsWrongFamily(t *testing.T) {
	s, _ := newTestScene()
	assert.Panics(t, func() { s.InjectPointer(EventKeyDown, 0, 0) })
	assert.Panics(t, func() { s.InjectKeyEvent(EventClick, KeyEvent{}) })
}

package termhost

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/phanxgames/easel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestModel returns a model whose terminal is 80x25, so one cell maps to
// a 1x2 block of the 80x48 surface.
func newTestModel(t *testing.T) (*Model, *easel.Scene) {
	t.Helper()
	scene := easel.NewScene(easel.NewRasterContext(80, 48))
	t.Cleanup(scene.Close)
	m, err := NewModel(scene, easel.RunConfig{Title: "test", TickInterval: 10 * time.Millisecond})
	require.NoError(t, err)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 25})
	return m, scene
}

func TestCellMapping(t *testing.T) {
	m, scene := newTestModel(t)
	sx, sy := m.scale()
	assert.Equal(t, 1.0, sx)
	assert.Equal(t, 1.0, sy)

	left, top := scene.SurfaceOffset()
	assert.Equal(t, 0.0, left)
	assert.Equal(t, 2.0, top, "title row sits above the surface")

	// Terminal row 5 is surface cell row 4, covering surface y 8..10.
	x, y := scene.ToLocal(m.device(10, 5))
	assert.Equal(t, 10.5, x)
	assert.Equal(t, 9.0, y)
}

func TestMouseEvents(t *testing.T) {
	m, scene := newTestModel(t)
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return clock }

	var got []string
	scene.OnPointerMove(func(x, y float64) error { got = append(got, "move"); return nil })
	scene.OnPointerDown(func(x, y float64) error { got = append(got, "down"); return nil })
	scene.OnClick(func(x, y float64) error { got = append(got, "click"); return nil })
	scene.OnDoubleClick(func(x, y float64) error { got = append(got, "dblclick"); return nil })

	m.Update(tea.MouseMsg{X: 3, Y: 3, Type: tea.MouseMotion})
	m.Update(tea.MouseMsg{X: 3, Y: 3, Type: tea.MouseLeft})
	m.Update(tea.MouseMsg{X: 3, Y: 3, Type: tea.MouseRelease})
	assert.Equal(t, []string{"move", "down", "click"}, got)

	got = nil
	clock = clock.Add(100 * time.Millisecond)
	m.Update(tea.MouseMsg{X: 3, Y: 3, Type: tea.MouseRelease})
	assert.Equal(t, []string{"click", "dblclick"}, got)
}

func TestKeyEvents(t *testing.T) {
	tests := []struct {
		name  string
		msg   tea.KeyMsg
		key   string
		mods  easel.KeyModifiers
		press bool
	}{
		{"rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, "q", 0, true},
		{"alt rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true}, "x", easel.ModAlt, true},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, "Enter", 0, false},
		{"arrow", tea.KeyMsg{Type: tea.KeyUp}, "ArrowUp", 0, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, " ", 0, true},
		{"ctrl", tea.KeyMsg{Type: tea.KeyCtrlA}, "a", easel.ModCtrl, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, scene := newTestModel(t)
			var kinds []easel.EventType
			var last easel.KeyEvent
			record := func(kind easel.EventType) easel.KeyListener {
				return func(ev easel.KeyEvent) error {
					kinds = append(kinds, kind)
					last = ev
					return nil
				}
			}
			scene.OnKeyDown(record(easel.EventKeyDown))
			scene.OnKeyPress(record(easel.EventKeyPress))
			scene.OnKeyUp(record(easel.EventKeyUp))

			m.Update(tt.msg)
			want := []easel.EventType{easel.EventKeyDown, easel.EventKeyUp}
			if tt.press {
				want = []easel.EventType{easel.EventKeyDown, easel.EventKeyPress, easel.EventKeyUp}
			}
			assert.Equal(t, want, kinds)
			assert.Equal(t, tt.key, last.Key)
			assert.Equal(t, tt.mods, last.Modifiers)
		})
	}
}

func TestCtrlCQuits(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, m.View())
}

func TestTickRunsScene(t *testing.T) {
	m, scene := newTestModel(t)
	var dt float64
	scene.SetUpdateFunc(func(d float64) error { dt = d; return nil })

	_, cmd := m.Update(tickMsg(time.Now()))
	assert.NotNil(t, cmd, "ticks re-arm")
	assert.Equal(t, 0.01, dt)
}

func TestQuitsWhenScriptDone(t *testing.T) {
	scene := easel.NewScene(easel.NewRasterContext(80, 48))
	t.Cleanup(scene.Close)
	runner, err := easel.LoadTestScript([]byte(`{"steps": [{"action": "wait", "frames": 2}]}`))
	require.NoError(t, err)
	scene.SetTestRunner(runner)

	m, err := NewModel(scene, easel.RunConfig{TickInterval: time.Millisecond, TestScript: "script.json"})
	require.NoError(t, err)

	quit := false
	for i := 0; i < 10 && !quit; i++ {
		_, cmd := m.Update(tickMsg(time.Now()))
		require.NotNil(t, cmd)
		if !runner.Done() {
			continue
		}
		_, quit = cmd().(tea.QuitMsg)
	}
	assert.True(t, runner.Done())
	assert.True(t, quit, "model quits once the script is done")
	assert.Empty(t, m.View())
}

func TestKeepsTickingWithoutScript(t *testing.T) {
	m, scene := newTestModel(t)
	runner, err := easel.LoadTestScript([]byte(`{"steps": [{"action": "wait", "frames": 1}]}`))
	require.NoError(t, err)
	scene.SetTestRunner(runner)

	for i := 0; i < 3; i++ {
		m.Update(tickMsg(time.Now()))
	}
	require.True(t, runner.Done())
	assert.False(t, m.quitting, "only a configured test script ends the program")
}

func TestViewRendersHalfBlocks(t *testing.T) {
	m, scene := newTestModel(t)
	box := scene.NewRectangle(80, 48, 0, 0)
	box.SetColor(easel.ColorRed)
	scene.Add(box)
	require.NoError(t, scene.Redraw())

	view := m.View()
	lines := strings.Split(view, "\n")
	assert.Len(t, lines, 25)
	assert.Contains(t, lines[0], "test")
	assert.Equal(t, 80, strings.Count(lines[1], halfBlock))
}

func TestRenderCellsColors(t *testing.T) {
	rc := easel.NewRasterContext(2, 2)
	rc.SetFillStyle(easel.ColorBlack)
	rc.BeginPath()
	rc.Rect(0, 0, 2, 1)
	rc.Fill()

	out := renderCells(rc.Snapshot(), 2, 1)
	assert.Equal(t, 2, strings.Count(out, halfBlock))
	assert.NotContains(t, out, "\n")
}

func TestNewModelRequiresSnapshotter(t *testing.T) {
	scene := easel.NewScene(nopSurface{easel.NewRasterContext(1, 1)})
	_, err := NewModel(scene, easel.RunConfig{})
	assert.Error(t, err)
}

// nopSurface hides the Snapshotter methods of the wrapped context.
type nopSurface struct{ easel.Context }

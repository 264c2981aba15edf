// Package termhost runs an easel scene inside a terminal with Bubble Tea.
//
// The surface is drawn with half-block cells: each character cell shows two
// surface rows, the upper one as the foreground color of "▀" and the lower
// one as the background. The first terminal row is a title bar, reported to
// the scene as the surface offset.
package termhost

import (
	"fmt"
	"image"
	"image/draw"
	"strings"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/phanxgames/easel"
	xdraw "golang.org/x/image/draw"
)

const halfBlock = "▀"

var titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#27a9e1"))

type tickMsg time.Time

// Model is the Bubble Tea model wrapping a Scene. Update is the engine
// thread.
type Model struct {
	scene    *easel.Scene
	surface  easel.Snapshotter
	title    string
	interval time.Duration
	clicks   *easel.ClickTracker
	now      func() time.Time
	quit     bool

	cols, rows int
	quitting   bool
}

// NewModel wraps scene. The surface must implement easel.Snapshotter.
func NewModel(scene *easel.Scene, cfg easel.RunConfig) (*Model, error) {
	snap, ok := scene.Surface().(easel.Snapshotter)
	if !ok {
		return nil, fmt.Errorf("termhost: surface does not implement easel.Snapshotter")
	}
	interval := cfg.TickInterval
	if interval <= 0 {
		interval = easel.DefaultTickInterval
	}
	clicks := easel.NewClickTracker()
	if cfg.DoubleClickInterval > 0 {
		clicks.Interval = cfg.DoubleClickInterval
	}
	return &Model{
		scene:    scene,
		surface:  snap,
		title:    cfg.Title,
		interval: interval,
		clicks:   clicks,
		now:      time.Now,
		quit:     cfg.TestScript != "",
		cols:     80,
		rows:     24,
	}, nil
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Init starts the tick timer.
func (m *Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles ticks, resizes, mouse and keys.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if err := m.scene.Tick(m.interval.Seconds()); err != nil {
			easel.Logger().Warn("tick failed", "error", err)
		}
		if m.quit {
			if r := m.scene.TestRunner(); r != nil && r.Done() {
				m.quitting = true
				return m, tea.Quit
			}
		}
		return m, m.tick()

	case tea.WindowSizeMsg:
		m.cols = max(msg.Width, 1)
		m.rows = max(msg.Height-1, 1)
		m.syncOffset()
		return m, nil

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		m.handleKey(msg)
		return m, nil
	}
	return m, nil
}

// scale returns how many surface pixels one cell spans horizontally and one
// half-cell spans vertically.
func (m *Model) scale() (sx, sy float64) {
	sx = float64(m.scene.Width()) / float64(m.cols)
	sy = float64(m.scene.Height()) / float64(m.rows*2)
	return sx, sy
}

// syncOffset tells the scene the surface starts below the title row.
func (m *Model) syncOffset() {
	_, sy := m.scale()
	m.scene.SetSurfaceOffset(0, 2*sy)
}

// device converts a cell position to device coordinates at the cell center.
func (m *Model) device(col, row int) (float64, float64) {
	sx, sy := m.scale()
	return (float64(col) + 0.5) * sx, (float64(row) + 0.5) * 2 * sy
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	x, y := m.device(msg.X, msg.Y)
	switch msg.Type {
	case tea.MouseMotion:
		m.scene.DispatchPointer(easel.EventPointerMove, x, y)
	case tea.MouseLeft:
		m.scene.DispatchPointer(easel.EventPointerDown, x, y)
	case tea.MouseRelease:
		m.scene.DispatchPointer(easel.EventClick, x, y)
		if m.clicks.Click(m.now(), x, y) {
			m.scene.DispatchPointer(easel.EventDoubleClick, x, y)
		}
	}
}

// handleKey emits down, press and up together; terminals report no key
// releases.
func (m *Model) handleKey(msg tea.KeyMsg) {
	ev := keyEvent(msg)
	m.scene.DispatchKey(easel.EventKeyDown, ev)
	if utf8.RuneCountInString(ev.Key) == 1 {
		r, _ := utf8.DecodeRuneInString(ev.Key)
		press := ev
		press.Rune = r
		m.scene.DispatchKey(easel.EventKeyPress, press)
	}
	m.scene.DispatchKey(easel.EventKeyUp, ev)
}

var teaKeyNames = map[tea.KeyType]string{
	tea.KeyEnter:     "Enter",
	tea.KeyTab:       "Tab",
	tea.KeyBackspace: "Backspace",
	tea.KeyDelete:    "Delete",
	tea.KeyEsc:       "Escape",
	tea.KeyUp:        "ArrowUp",
	tea.KeyDown:      "ArrowDown",
	tea.KeyLeft:      "ArrowLeft",
	tea.KeyRight:     "ArrowRight",
	tea.KeyHome:      "Home",
	tea.KeyEnd:       "End",
	tea.KeyPgUp:      "PageUp",
	tea.KeyPgDown:    "PageDown",
	tea.KeySpace:     " ",
}

func keyEvent(msg tea.KeyMsg) easel.KeyEvent {
	var ev easel.KeyEvent
	if msg.Alt {
		ev.Modifiers |= easel.ModAlt
	}
	if msg.Type == tea.KeyRunes {
		ev.Key = string(msg.Runes)
		return ev
	}
	if name, ok := teaKeyNames[msg.Type]; ok {
		ev.Key = name
		return ev
	}
	ev.Key = msg.String()
	if strings.HasPrefix(ev.Key, "ctrl+") {
		ev.Modifiers |= easel.ModCtrl
		ev.Key = strings.TrimPrefix(ev.Key, "ctrl+")
	}
	return ev
}

// View renders the title row and the surface as half-block cells.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Width(m.cols).Render(m.title))
	b.WriteByte('\n')
	b.WriteString(renderCells(m.surface.Snapshot(), m.cols, m.rows))
	return b.String()
}

// renderCells scales img to cols x rows*2 over a white page and renders each
// pair of pixel rows as one line of half-blocks.
func renderCells(img image.Image, cols, rows int) string {
	dst := image.NewRGBA(image.Rect(0, 0, cols, rows*2))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Over, nil)

	var b strings.Builder
	for row := 0; row < rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < cols; col++ {
			top := dst.RGBAAt(col, row*2)
			bottom := dst.RGBAAt(col, row*2+1)
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(hex(top.R, top.G, top.B))).
				Background(lipgloss.Color(hex(bottom.R, bottom.G, bottom.B)))
			b.WriteString(style.Render(halfBlock))
		}
	}
	return b.String()
}

func hex(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Run shows scene in the terminal and blocks until ctrl+c, or until the
// test script named by cfg.TestScript has finished.
func Run(scene *easel.Scene, cfg easel.RunConfig) error {
	if err := cfg.Apply(scene); err != nil {
		return err
	}
	if scene.Width() != cfg.Width || scene.Height() != cfg.Height {
		scene.SetSize(cfg.Width, cfg.Height)
	}
	m, err := NewModel(scene, cfg)
	if err != nil {
		return err
	}
	defer scene.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run terminal: %w", err)
	}
	return nil
}

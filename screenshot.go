package easel

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Screenshot queues a labeled screenshot to be captured at the end of the
// current tick's redraw. The resulting PNG is written to ScreenshotDir with a
// timestamped filename.
func (s *Scene) Screenshot(label string) {
	s.screenshotQueue = append(s.screenshotQueue, label)
}

// WriteScreenshot encodes the current surface as PNG to w.
func (s *Scene) WriteScreenshot(w io.Writer) error {
	snap, ok := s.surface.(Snapshotter)
	if !ok {
		return ErrNoSnapshot
	}
	if err := png.Encode(w, snap.Snapshot()); err != nil {
		return fmt.Errorf("encode screenshot: %w", err)
	}
	return nil
}

// flushScreenshots writes one PNG per queued label. Called at the end of Tick.
func (s *Scene) flushScreenshots() {
	if len(s.screenshotQueue) == 0 {
		return
	}
	defer func() { s.screenshotQueue = s.screenshotQueue[:0] }()

	snap, ok := s.surface.(Snapshotter)
	if !ok {
		Logger().Warn("screenshot skipped", "error", ErrNoSnapshot)
		return
	}
	if err := os.MkdirAll(s.ScreenshotDir, 0o755); err != nil {
		Logger().Warn("screenshot mkdir failed", "dir", s.ScreenshotDir, "error", err)
		return
	}

	img := snap.Snapshot()
	stamp := time.Now().Format("20060102_150405")
	for _, label := range s.screenshotQueue {
		path := filepath.Join(s.ScreenshotDir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
		if err := writePNG(path, img); err != nil {
			Logger().Warn("screenshot failed", "error", err)
			continue
		}
		Logger().Info("screenshot written", "path", path)
	}
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

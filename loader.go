package easel

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// ImageLoader fetches and decodes an image source. It runs off the engine
// thread; its result is applied on the engine thread.
type ImageLoader func(ctx context.Context, source string) (image.Image, error)

var httpClient = &http.Client{Timeout: 30 * time.Second}

// DefaultImageLoader fetches http(s) URLs and opens everything else as a
// local file path (an optional file:// prefix is stripped).
func DefaultImageLoader(ctx context.Context, source string) (image.Image, error) {
	var r io.ReadCloser
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", source, err)
		}
		resp, err := httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", source, err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("fetch %s: %s", source, resp.Status)
		}
		r = resp.Body
	} else {
		f, err := os.Open(strings.TrimPrefix(source, "file://"))
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", source, err)
		}
		r = f
	}
	defer r.Close()

	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", source, err)
	}
	return img, nil
}

// SetImageLoader replaces the loader used for images created afterwards and
// for later SetSource calls. Passing nil restores DefaultImageLoader.
func (s *Scene) SetImageLoader(loader ImageLoader) {
	if loader == nil {
		loader = DefaultImageLoader
	}
	s.loader = loader
}

// loadImage moves m back to ImageLoading and fetches its source on a new
// goroutine. The result is posted back to the engine thread.
func (s *Scene) loadImage(m *Image) {
	m.generation++
	gen := m.generation
	m.state = ImageLoading
	m.src = nil
	m.loadErr = nil

	loader, ctx, source := s.loader, s.loadCtx, m.source
	go func() {
		img, err := loader(ctx, source)
		s.Post(func() { m.finishLoad(gen, img, err) })
	}()
}

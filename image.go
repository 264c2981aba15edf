package easel

import (
	"fmt"
	"image"
)

// Default display size for images.
const (
	DefaultImageWidth  = 50
	DefaultImageHeight = 50
)

// ImageState is the load state of an Image's source.
type ImageState uint8

const (
	ImageLoading ImageState = iota // source requested, not yet decoded
	ImageReady                     // source decoded and drawable
	ImageFailed                    // source could not be fetched or decoded
)

// String returns the lower-case state name.
func (s ImageState) String() string {
	switch s {
	case ImageLoading:
		return "loading"
	case ImageReady:
		return "ready"
	case ImageFailed:
		return "failed"
	}
	return "unknown"
}

// Image draws a decoded source scaled and rotated into its (x, y, width,
// height) box. After CaptureBuffer it switches to buffer mode: the captured
// pixels are put back verbatim at (x, y) on every Draw and then re-captured
// from the surface, so edits made with SetPixel show up on the next frame.
// Changing the rotation or the source leaves buffer mode.
type Image struct {
	shapeBase
	source   string
	rotation float64

	scene      *Scene
	state      ImageState
	src        image.Image
	loadErr    error
	generation uint64

	fromBuffer bool
	buffer     *PixelBuffer
}

// Kind returns ShapeImage.
func (m *Image) Kind() ShapeKind { return ShapeImage }

// Source returns the source identifier (file path or URL).
func (m *Image) Source() string { return m.source }

// SetSource starts loading a new source. The image is not drawn until the new
// source is ready.
func (m *Image) SetSource(source string) {
	m.source = source
	m.fromBuffer = false
	m.buffer = nil
	if m.scene != nil {
		m.scene.loadImage(m)
	}
}

// State returns the current load state.
func (m *Image) State() ImageState { return m.state }

// Err returns the load error when State is ImageFailed.
func (m *Image) Err() error { return m.loadErr }

// Decoded returns the decoded source, or nil until it is ready.
func (m *Image) Decoded() image.Image { return m.src }

// Rotation returns the rotation in radians.
func (m *Image) Rotation() float64 { return m.rotation }

// SetRotation sets the rotation in radians and leaves buffer mode, since the
// captured pixels no longer match what a rotated draw would paint.
func (m *Image) SetRotation(rotation float64) {
	m.rotation = rotation
	m.fromBuffer = false
}

// BufferMode reports whether Draw blits the captured buffer.
func (m *Image) BufferMode() bool { return m.fromBuffer }

// Buffer returns the captured buffer, or nil.
func (m *Image) Buffer() *PixelBuffer { return m.buffer }

// Draw blits the buffer in buffer mode, otherwise paints the decoded source
// when it is ready. Loading and failed images draw nothing.
func (m *Image) Draw(ctx Context) error {
	if m.fromBuffer && m.buffer != nil {
		ctx.PutImageData(m.buffer, int(m.x), int(m.y))
	} else if m.state == ImageReady {
		ctx.Save()
		ctx.Translate(m.x+m.width/2, m.y+m.height/2)
		ctx.Rotate(m.rotation)
		ctx.DrawImage(m.src, -m.width/2, -m.height/2, m.width, m.height)
		ctx.Restore()
	}
	if m.fromBuffer {
		if _, err := m.capture(ctx); err != nil {
			return fmt.Errorf("recapture %q: %w", m.source, err)
		}
	}
	return nil
}

// ContainsPoint tests the (x, y, width, height) box, edges inclusive.
func (m *Image) ContainsPoint(x, y float64) bool {
	return m.Bounds().Contains(x, y)
}

// CaptureBuffer reads the surface pixels under the image's box into the
// internal buffer, switches to buffer mode and returns the buffer.
func (m *Image) CaptureBuffer() (*PixelBuffer, error) {
	if m.surface == nil {
		return nil, fmt.Errorf("capture %q: %w", m.source, ErrNoPixelBuffer)
	}
	return m.capture(m.surface)
}

func (m *Image) capture(ctx Context) (*PixelBuffer, error) {
	buf, err := ctx.GetImageData(int(m.x), int(m.y), int(m.width), int(m.height))
	if err != nil {
		return nil, err
	}
	m.buffer = buf
	m.fromBuffer = true
	return buf, nil
}

// GetPixel returns [r, g, b, a] at (x, y) of the captured buffer.
func (m *Image) GetPixel(x, y int) ([4]uint8, error) {
	if m.buffer == nil {
		return [4]uint8{}, ErrNoPixelBuffer
	}
	return m.buffer.At(x, y)
}

// SetPixel writes one channel at (x, y) of the captured buffer. The change
// becomes visible on the next Draw in buffer mode.
func (m *Image) SetPixel(x, y int, ch Channel, v uint8) error {
	if m.buffer == nil {
		return ErrNoPixelBuffer
	}
	return m.buffer.Set(x, y, ch, v)
}

func (m *Image) channel(x, y int, ch Channel) (uint8, error) {
	px, err := m.GetPixel(x, y)
	if err != nil {
		return 0, err
	}
	return px[ch], nil
}

// Red, Green, Blue and Alpha read one channel of the captured buffer.
func (m *Image) Red(x, y int) (uint8, error)   { return m.channel(x, y, ChannelRed) }
func (m *Image) Green(x, y int) (uint8, error) { return m.channel(x, y, ChannelGreen) }
func (m *Image) Blue(x, y int) (uint8, error)  { return m.channel(x, y, ChannelBlue) }
func (m *Image) Alpha(x, y int) (uint8, error) { return m.channel(x, y, ChannelAlpha) }

// SetRed, SetGreen, SetBlue and SetAlpha write one channel of the captured
// buffer.
func (m *Image) SetRed(x, y int, v uint8) error   { return m.SetPixel(x, y, ChannelRed, v) }
func (m *Image) SetGreen(x, y int, v uint8) error { return m.SetPixel(x, y, ChannelGreen, v) }
func (m *Image) SetBlue(x, y int, v uint8) error  { return m.SetPixel(x, y, ChannelBlue, v) }
func (m *Image) SetAlpha(x, y int, v uint8) error { return m.SetPixel(x, y, ChannelAlpha, v) }

// finishLoad applies a load result on the engine thread. Results from a
// superseded SetSource are dropped.
func (m *Image) finishLoad(generation uint64, img image.Image, err error) {
	if generation != m.generation {
		return
	}
	if err != nil {
		m.state = ImageFailed
		m.loadErr = err
		m.src = nil
		Logger().Warn("image load failed", "source", m.source, "error", err)
		return
	}
	m.state = ImageReady
	m.loadErr = nil
	m.src = img
}

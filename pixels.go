package easel

import (
	"fmt"
	"image"
)

// Channel indexes one of the four interleaved components of a pixel.
type Channel uint8

const (
	ChannelRed Channel = iota
	ChannelGreen
	ChannelBlue
	ChannelAlpha
)

// NumChannels is the number of bytes per pixel in a PixelBuffer.
const NumChannels = 4

// PixelBuffer is a raw, non-premultiplied RGBA raster: 4 bytes per pixel,
// row-major, top to bottom. Data has exactly NumChannels*Width*Height bytes.
type PixelBuffer struct {
	Width, Height int
	Data          []uint8
}

// NewPixelBuffer allocates a zeroed (transparent black) buffer.
func NewPixelBuffer(width, height int) *PixelBuffer {
	if width < 0 || height < 0 {
		panic("easel: negative pixel buffer size")
	}
	return &PixelBuffer{
		Width:  width,
		Height: height,
		Data:   make([]uint8, NumChannels*width*height),
	}
}

// offset returns the index of channel 0 of (x, y).
func (b *PixelBuffer) offset(x, y int) (int, error) {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return 0, fmt.Errorf("pixel (%d, %d) in %dx%d buffer: %w", x, y, b.Width, b.Height, ErrPixelOutOfRange)
	}
	return NumChannels * (y*b.Width + x), nil
}

// At returns the [r, g, b, a] components of (x, y).
func (b *PixelBuffer) At(x, y int) ([4]uint8, error) {
	i, err := b.offset(x, y)
	if err != nil {
		return [4]uint8{}, err
	}
	return [4]uint8{
		b.Data[i+int(ChannelRed)],
		b.Data[i+int(ChannelGreen)],
		b.Data[i+int(ChannelBlue)],
		b.Data[i+int(ChannelAlpha)],
	}, nil
}

// Set writes a single channel of (x, y).
func (b *PixelBuffer) Set(x, y int, ch Channel, v uint8) error {
	if ch > ChannelAlpha {
		return fmt.Errorf("channel %d: %w", ch, ErrPixelOutOfRange)
	}
	i, err := b.offset(x, y)
	if err != nil {
		return err
	}
	b.Data[i+int(ch)] = v
	return nil
}

// Clone returns a deep copy.
func (b *PixelBuffer) Clone() *PixelBuffer {
	c := &PixelBuffer{Width: b.Width, Height: b.Height, Data: make([]uint8, len(b.Data))}
	copy(c.Data, b.Data)
	return c
}

// NRGBA wraps the buffer as an *image.NRGBA sharing the same memory.
func (b *PixelBuffer) NRGBA() *image.NRGBA {
	return &image.NRGBA{
		Pix:    b.Data,
		Stride: NumChannels * b.Width,
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}
}

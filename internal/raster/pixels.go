package raster

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
)

// PixelBuffer is an RGB raster with three bytes per pixel, rows top to bottom.
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []byte
}

// NewPixelBuffer allocates a zeroed (black) buffer.
func NewPixelBuffer(width, height int) PixelBuffer {
	return PixelBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*3),
	}
}

// FromImage copies the color channels of img into a new buffer. Alpha is dropped.
func FromImage(img image.Image) PixelBuffer {
	b := img.Bounds()
	buf := NewPixelBuffer(b.Dx(), b.Dy())

	if rgba, ok := img.(*image.RGBA); ok {
		for y := 0; y < buf.Height; y++ {
			src := rgba.Pix[rgba.PixOffset(b.Min.X, b.Min.Y+y):]
			dst := buf.Pix[y*buf.Width*3:]
			for x := 0; x < buf.Width; x++ {
				dst[x*3] = src[x*4]
				dst[x*3+1] = src[x*4+1]
				dst[x*3+2] = src[x*4+2]
			}
		}
		return buf
	}

	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			buf.Pix[i] = c.R
			buf.Pix[i+1] = c.G
			buf.Pix[i+2] = c.B
			i += 3
		}
	}
	return buf
}

// Invert returns a new buffer with every channel byte complemented.
func (p PixelBuffer) Invert() PixelBuffer {
	out := PixelBuffer{Width: p.Width, Height: p.Height, Pix: make([]byte, len(p.Pix))}
	for i, v := range p.Pix {
		out.Pix[i] = 255 - v
	}
	return out
}

// At returns the RGB triple at (x, y).
func (p PixelBuffer) At(x, y int) (r, g, b uint8) {
	i := (y*p.Width + x) * 3
	return p.Pix[i], p.Pix[i+1], p.Pix[i+2]
}

// Image returns an opaque RGBA view of the buffer.
func (p PixelBuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.Width, p.Height))
	for i, j := 0, 0; i < len(p.Pix); i, j = i+3, j+4 {
		img.Pix[j] = p.Pix[i]
		img.Pix[j+1] = p.Pix[i+1]
		img.Pix[j+2] = p.Pix[i+2]
		img.Pix[j+3] = 0xff
	}
	return img
}

// EncodePNG serializes the buffer as an 8-bit RGB PNG.
func (p PixelBuffer) EncodePNG() ([]byte, error) {
	if p.Width <= 0 || p.Height <= 0 {
		return nil, fmt.Errorf("empty pixel buffer %dx%d", p.Width, p.Height)
	}
	if len(p.Pix) != p.Width*p.Height*3 {
		return nil, fmt.Errorf("pixel payload is %d bytes, want %d", len(p.Pix), p.Width*p.Height*3)
	}

	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.DefaultCompression}
	if err := enc.Encode(&buf, p.Image()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

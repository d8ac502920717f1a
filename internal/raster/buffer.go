package raster

import (
	"image"
	"image/color"
)

// Buffer holds an opaque RGB pixel grid as a flat slice for cache locality.
// Pixels are row-major with the origin at the top-left corner.
type Buffer struct {
	Width  int
	Height int
	Pix    []uint8 // RGB interleaved, len = W*H*3
}

// NewBuffer allocates a w×h buffer filled with fill.
func NewBuffer(w, h int, fill color.RGBA) *Buffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	b := &Buffer{
		Width:  w,
		Height: h,
		Pix:    make([]uint8, w*h*3),
	}
	for i := 0; i < len(b.Pix); i += 3 {
		b.Pix[i] = fill.R
		b.Pix[i+1] = fill.G
		b.Pix[i+2] = fill.B
	}
	return b
}

// PixOffset returns the index of the red channel of pixel (x, y) in Pix.
func (b *Buffer) PixOffset(x, y int) int {
	return (y*b.Width + x) * 3
}

// InBounds reports whether (x, y) lies inside the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.Width && y < b.Height
}

// SetRGB stores a pixel. Out-of-bounds writes are ignored.
func (b *Buffer) SetRGB(x, y int, r, g, bl uint8) {
	if !b.InBounds(x, y) {
		return
	}
	i := b.PixOffset(x, y)
	b.Pix[i] = r
	b.Pix[i+1] = g
	b.Pix[i+2] = bl
}

// RGBAt returns the channels of pixel (x, y), or zeros outside the buffer.
func (b *Buffer) RGBAt(x, y int) (r, g, bl uint8) {
	if !b.InBounds(x, y) {
		return 0, 0, 0
	}
	i := b.PixOffset(x, y)
	return b.Pix[i], b.Pix[i+1], b.Pix[i+2]
}

// ColorModel implements image.Image.
func (b *Buffer) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
func (b *Buffer) Bounds() image.Rectangle { return image.Rect(0, 0, b.Width, b.Height) }

// At implements image.Image. Every pixel is fully opaque.
func (b *Buffer) At(x, y int) color.Color {
	r, g, bl := b.RGBAt(x, y)
	return color.RGBA{R: r, G: g, B: bl, A: 255}
}

// Set implements draw.Image. Alpha is discarded after un-premultiplying,
// so each channel lands in [0, 255].
func (b *Buffer) Set(x, y int, c color.Color) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	b.SetRGB(x, y, n.R, n.G, n.B)
}

// Opaque lets encoders pick a truecolor format without an alpha channel.
func (b *Buffer) Opaque() bool { return true }

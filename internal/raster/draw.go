package raster

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// FillRect paints the half-open rectangle r, clipped to the buffer.
func FillRect(b *Buffer, r image.Rectangle, c color.RGBA) {
	r = r.Intersect(b.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(b, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// HLine draws a horizontal line of the given width centered on row y,
// covering columns x0..x1 inclusive.
func HLine(b *Buffer, x0, x1, y, width int, c color.RGBA) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	top := y - width/2
	FillRect(b, image.Rect(x0, top, x1+1, top+width), c)
}

// VLine draws a vertical line of the given width centered on column x,
// covering rows y0..y1 inclusive.
func VLine(b *Buffer, x, y0, y1, width int, c color.RGBA) {
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	left := x - width/2
	FillRect(b, image.Rect(left, y0, left+width, y1+1), c)
}

// FillEllipse paints the axis-aligned ellipse centered on (cx, cy) with
// radii rx and ry. A pixel is inside when its offset from the center
// satisfies (dx/rx)² + (dy/ry)² <= 1. A zero radius degenerates to a line.
func FillEllipse(b *Buffer, cx, cy, rx, ry int, c color.RGBA) {
	if rx < 0 || ry < 0 {
		return
	}

	minY, maxY := cy-ry, cy+ry
	if minY < 0 {
		minY = 0
	}
	if maxY >= b.Height {
		maxY = b.Height - 1
	}

	// Integer test: dx²·ry² + dy²·rx² <= rx²·ry²
	rx2 := int64(rx) * int64(rx)
	ry2 := int64(ry) * int64(ry)
	limit := rx2 * ry2

	for y := minY; y <= maxY; y++ {
		dy := int64(y - cy)
		span := dy * dy * rx2
		for x := cx - rx; x <= cx+rx; x++ {
			if x < 0 || x >= b.Width {
				continue
			}
			dx := int64(x - cx)
			if rx == 0 || ry == 0 || dx*dx*ry2+span <= limit {
				i := b.PixOffset(x, y)
				b.Pix[i] = c.R
				b.Pix[i+1] = c.G
				b.Pix[i+2] = c.B
			}
		}
	}
}

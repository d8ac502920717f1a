package texture

import (
	"image"

	"texgen/internal/raster"
)

// Checkerboard returns a size×size board of squares×squares cells, white
// where the cell indices sum to an even number and black otherwise.
// When size is not a multiple of squares the leftover strip along the
// right and bottom edges stays white.
func Checkerboard(size, squares int) *raster.Buffer {
	buf := raster.NewBuffer(size, size, White)
	if squares <= 0 {
		return buf
	}

	cell := size / squares
	for i := 0; i < squares; i++ {
		for j := 0; j < squares; j++ {
			if (i+j)%2 == 1 {
				x, y := i*cell, j*cell
				raster.FillRect(buf, image.Rect(x, y, x+cell, y+cell), Black)
			}
		}
	}
	return buf
}

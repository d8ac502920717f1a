package texture

import "texgen/internal/raster"

const (
	mortarRowWidth = 3
	mortarColWidth = 2
)

// Brick returns a running-bond brick wall: brown bricks a quarter of the
// texture wide and an eighth tall, separated by light gray mortar. Every
// other row is shifted by half a brick.
func Brick(size int) *raster.Buffer {
	buf := raster.NewBuffer(size, size, BrickBrown)

	brickH := size / 8
	brickW := size / 4
	if brickH <= 0 || brickW <= 0 {
		return buf
	}

	for y := 0; y < size; y += brickH {
		raster.HLine(buf, 0, size, y, mortarRowWidth, Mortar)
	}

	for row := 0; row < size/brickH; row++ {
		offset := 0
		if row%2 == 1 {
			offset = brickW / 2
		}
		y := row * brickH

		for x := -brickW; x < size+brickW; x += brickW {
			xPos := x + offset
			if xPos >= 0 && xPos <= size {
				raster.VLine(buf, xPos, y, y+brickH, mortarColWidth, Mortar)
			}
		}
	}
	return buf
}

package texture

import (
	"math"
	"math/rand"

	"texgen/internal/raster"
)

// Wood returns a dark brown grain texture. Each row is brightened by a
// ring term |sin(0.1·y)|·30 and each pixel by one noise sample in
// [-20, 20) shared across its channels.
func Wood(size int, seed int64) *raster.Buffer {
	rng := rand.New(rand.NewSource(seed))
	buf := raster.NewBuffer(size, size, Black)

	base := [3]float64{float64(WoodBrown.R), float64(WoodBrown.G), float64(WoodBrown.B)}

	for y := 0; y < size; y++ {
		ring := math.Abs(math.Sin(float64(y)*0.1)) * 30

		for x := 0; x < size; x++ {
			noise := float64(rng.Intn(40) - 20)

			i := buf.PixOffset(x, y)
			for c := 0; c < 3; c++ {
				buf.Pix[i+c] = raster.Clamp8(base[c] + ring + noise)
			}
		}
	}
	return buf
}

package texture

import (
	"math"
	"math/rand"

	"texgen/internal/raster"
)

// Metal intensity limits. Keeping the range narrow preserves the sheen.
const (
	metalBase = 150
	metalMin  = 100
	metalMax  = 200
	metalTint = 10
)

// Metal returns a brushed metal texture: gray 150 modulated by a row brush
// term sin(0.5·y)·20, a column streak sin(0.02·x)·10 and noise in
// [-10, 10), clamped to [100, 200]. Blue sits 10 above red and green.
func Metal(size int, seed int64) *raster.Buffer {
	rng := rand.New(rand.NewSource(seed))
	buf := raster.NewBuffer(size, size, Black)

	for y := 0; y < size; y++ {
		brush := math.Sin(float64(y)*0.5) * 20

		for x := 0; x < size; x++ {
			streak := math.Sin(float64(x)*0.02) * 10
			noise := float64(rng.Intn(20) - 10)

			v := uint8(raster.ClampRange(metalBase+brush+streak+noise, metalMin, metalMax))
			buf.SetRGB(x, y, v, v, v+metalTint)
		}
	}
	return buf
}

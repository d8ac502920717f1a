package texture

import (
	"image/color"
	"math/rand"

	"texgen/internal/raster"
)

// Patch counts and radius ranges (min inclusive, max exclusive).
const (
	DarkPatches  = 50
	LightPatches = 30

	darkRadiusMin  = 5
	darkRadiusMax  = 20
	lightRadiusMin = 3
	lightRadiusMax = 15
)

// Patch is one filled disc on the grass texture.
type Patch struct {
	X, Y   int
	Radius int
	Color  color.RGBA
}

// GrassPatches returns the patches Grass paints, in paint order: all dark
// patches first, then all light ones. Centers are uniform over the
// texture.
func GrassPatches(size int, seed int64) []Patch {
	if size <= 0 {
		return nil
	}
	rng := rand.New(rand.NewSource(seed))
	patches := make([]Patch, 0, DarkPatches+LightPatches)

	for i := 0; i < DarkPatches; i++ {
		patches = append(patches, Patch{
			X:      rng.Intn(size),
			Y:      rng.Intn(size),
			Radius: darkRadiusMin + rng.Intn(darkRadiusMax-darkRadiusMin),
			Color:  DarkGreen,
		})
	}
	for i := 0; i < LightPatches; i++ {
		patches = append(patches, Patch{
			X:      rng.Intn(size),
			Y:      rng.Intn(size),
			Radius: lightRadiusMin + rng.Intn(lightRadiusMax-lightRadiusMin),
			Color:  LightGreen,
		})
	}
	return patches
}

// Grass returns a forest green texture with darker and lighter patches.
// Later patches overpaint earlier ones.
func Grass(size int, seed int64) *raster.Buffer {
	buf := raster.NewBuffer(size, size, ForestGreen)
	for _, p := range GrassPatches(size, seed) {
		raster.FillEllipse(buf, p.X, p.Y, p.Radius, p.Radius, p.Color)
	}
	return buf
}

// Package texture generates the placeholder textures used by the viewer.
// Every generator is a pure function of its parameters: randomized
// textures take an explicit seed and produce identical output for
// identical inputs.
package texture

import (
	"image/color"

	"texgen/internal/raster"
)

// Compiled-in generation defaults.
const (
	DefaultSize    = 256
	DefaultSquares = 8
	DefaultSeed    = 42
)

// Params holds the inputs shared by all generators.
type Params struct {
	Size    int
	Squares int
	Seed    int64
}

// DefaultParams returns the parameters used by the driver.
func DefaultParams() Params {
	return Params{
		Size:    DefaultSize,
		Squares: DefaultSquares,
		Seed:    DefaultSeed,
	}
}

// Descriptor pairs a generator with the file it is written to.
type Descriptor struct {
	Name     string
	Filename string
	Generate func(Params) *raster.Buffer
}

// Catalog returns the textures in the order they are generated.
func Catalog() []Descriptor {
	return []Descriptor{
		{
			Name:     "checkerboard",
			Filename: "checkerboard.png",
			Generate: func(p Params) *raster.Buffer { return Checkerboard(p.Size, p.Squares) },
		},
		{
			Name:     "brick",
			Filename: "brick.png",
			Generate: func(p Params) *raster.Buffer { return Brick(p.Size) },
		},
		{
			Name:     "wood",
			Filename: "wood.png",
			Generate: func(p Params) *raster.Buffer { return Wood(p.Size, p.Seed) },
		},
		{
			Name:     "metal",
			Filename: "metal.png",
			Generate: func(p Params) *raster.Buffer { return Metal(p.Size, p.Seed) },
		},
		{
			Name:     "grass",
			Filename: "grass.png",
			Generate: func(p Params) *raster.Buffer { return Grass(p.Size, p.Seed) },
		},
	}
}

// Palette.
var (
	White       = color.RGBA{255, 255, 255, 255}
	Black       = color.RGBA{0, 0, 0, 255}
	BrickBrown  = color.RGBA{139, 69, 19, 255}
	Mortar      = color.RGBA{200, 200, 200, 255}
	WoodBrown   = color.RGBA{101, 67, 33, 255}
	ForestGreen = color.RGBA{34, 139, 34, 255}
	DarkGreen   = color.RGBA{0, 100, 0, 255}
	LightGreen  = color.RGBA{50, 205, 50, 255}
)

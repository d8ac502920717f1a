package config

import "texgen/internal/texture"

// Config holds the output location and generation settings.
// All values are compiled in; nothing is read from flags or files.
type Config struct {
	// Paths
	OutputDir string

	// Generation settings
	Size    int
	Squares int
	Seed    int64
}

// Default returns the resolved compiled-in configuration.
func Default() Config {
	cfg := Config{Seed: texture.DefaultSeed}
	cfg.Resolve()
	return cfg
}

// Resolve fills in any zero fields with the compiled-in defaults.
// Seed is left alone: zero is a valid seed.
func (c *Config) Resolve() {
	// Textures land in the working directory
	if c.OutputDir == "" {
		c.OutputDir = "."
	}

	// Defaults for generation settings
	if c.Size <= 0 {
		c.Size = texture.DefaultSize
	}
	if c.Squares <= 0 {
		c.Squares = texture.DefaultSquares
	}
}

// Params returns the generator parameters for this configuration.
func (c Config) Params() texture.Params {
	return texture.Params{
		Size:    c.Size,
		Squares: c.Squares,
		Seed:    c.Seed,
	}
}

package batch

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"texgen/internal/export"
	"texgen/internal/texture"
)

// Config holds the settings shared by every texture in a run.
type Config struct {
	OutputDir string
	Params    texture.Params
	Verify    bool      // re-read each file after writing
	Log       io.Writer // progress lines; os.Stdout when nil
}

// Result holds the outcome of processing one texture.
type Result struct {
	Name    string
	Path    string
	Width   int
	Height  int
	Success bool
	Error   string
}

// Run generates and saves the textures one after another. It stops at the
// first failure and returns the results gathered so far with the error.
func Run(cfg Config, textures []texture.Descriptor) ([]Result, error) {
	log := cfg.Log
	if log == nil {
		log = os.Stdout
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("batch: output dir %s: %w", cfg.OutputDir, err)
	}

	results := make([]Result, 0, len(textures))
	for _, d := range textures {
		r, err := processTexture(cfg, d)
		results = append(results, r)
		if err != nil {
			return results, err
		}
		fmt.Fprintf(log, "Created %s\n", d.Filename)
	}
	return results, nil
}

func processTexture(cfg Config, d texture.Descriptor) (Result, error) {
	outPath := filepath.Join(cfg.OutputDir, d.Filename)
	res := Result{Name: d.Name, Path: outPath}

	img := d.Generate(cfg.Params)
	res.Width, res.Height = img.Width, img.Height

	if err := export.Save(outPath, img); err != nil {
		res.Error = err.Error()
		return res, fmt.Errorf("batch: %s: %w", d.Name, err)
	}

	if cfg.Verify {
		back, err := export.Load(outPath)
		if err != nil {
			res.Error = err.Error()
			return res, fmt.Errorf("batch: verify %s: %w", d.Name, err)
		}
		if b := back.Bounds(); b.Dx() != img.Width || b.Dy() != img.Height {
			res.Error = fmt.Sprintf("wrote %dx%d, read back %dx%d", img.Width, img.Height, b.Dx(), b.Dy())
			return res, fmt.Errorf("batch: verify %s: %s", d.Name, res.Error)
		}
	}

	res.Success = true
	return res, nil
}

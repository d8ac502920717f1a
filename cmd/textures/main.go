// Command textures writes the placeholder textures for the 3D viewer
// (checkerboard, brick, wood, metal and grass) into the current directory.
package main

import (
	"fmt"
	"io"
	"os"

	"texgen/internal/batch"
	"texgen/internal/config"
	"texgen/internal/texture"
)

func main() {
	if err := run(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(out io.Writer) error {
	cfg := config.Default()

	batchCfg := batch.Config{
		OutputDir: cfg.OutputDir,
		Params:    cfg.Params(),
		Verify:    true,
		Log:       out,
	}
	if _, err := batch.Run(batchCfg, texture.Catalog()); err != nil {
		return err
	}

	fmt.Fprintln(out, "All textures created successfully!")
	fmt.Fprintln(out, "You can now use these in your 3D viewer.")
	return nil
}

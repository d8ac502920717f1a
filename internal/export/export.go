// Package export writes generated textures to disk and reads them back.
//
// The texture command only writes PNG and reads it back through
// batch.Config.Verify. WebP, TGA and BMP are available to other callers of
// Save and Load that need one of those formats.
package export

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
)

// ErrUnknownFormat is returned for file extensions with no encoder.
var ErrUnknownFormat = errors.New("export: unknown image format")

type codec struct {
	encode func(w io.Writer, img image.Image) error
	decode func(r io.Reader) (image.Image, error)
}

// TGA carries no magic number, so formats are picked by extension rather
// than sniffed.
var codecs = map[string]codec{
	".png": {png.Encode, png.Decode},
	".tga": {tga.Encode, tga.Decode},
	".bmp": {bmp.Encode, bmp.Decode},
	".webp": {
		func(w io.Writer, img image.Image) error { return nativewebp.Encode(w, img, nil) },
		nativewebp.Decode,
	},
}

// Format returns the lowercase extension that selects the codec for path,
// or ErrUnknownFormat.
func Format(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := codecs[ext]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Base(path))
	}
	return ext, nil
}

// Save encodes img to path, choosing the format from the extension
// (.png, .webp, .tga or .bmp). An existing file is overwritten.
func Save(path string, img image.Image) (err error) {
	ext, err := Format(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("export: close %s: %w", path, cerr)
		}
	}()

	w := bufio.NewWriter(f)
	if err := codecs[ext].encode(w, img); err != nil {
		return fmt.Errorf("export: encode %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	return nil
}

// Load decodes the image stored at path using the codec its extension
// selects.
func Load(path string) (image.Image, error) {
	ext, err := Format(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("export: open %s: %w", path, err)
	}
	defer f.Close()

	img, err := codecs[ext].decode(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("export: decode %s: %w", path, err)
	}
	return img, nil
}

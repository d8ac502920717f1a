package export

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"texgen/internal/raster"
)

func testBuffer() *raster.Buffer {
	b := raster.NewBuffer(7, 5, color.RGBA{34, 139, 34, 255})
	b.SetRGB(0, 0, 255, 0, 0)
	b.SetRGB(6, 4, 0, 0, 255)
	b.SetRGB(3, 2, 200, 200, 210)
	return b
}

func samePixels(t *testing.T, want *raster.Buffer, got image.Image) {
	t.Helper()
	if got.Bounds().Dx() != want.Width || got.Bounds().Dy() != want.Height {
		t.Fatalf("size %v want %dx%d", got.Bounds(), want.Width, want.Height)
	}
	origin := got.Bounds().Min
	for y := 0; y < want.Height; y++ {
		for x := 0; x < want.Width; x++ {
			w := color.RGBAModel.Convert(want.At(x, y)).(color.RGBA)
			g := color.RGBAModel.Convert(got.At(origin.X+x, origin.Y+y)).(color.RGBA)
			if w != g {
				t.Fatalf("pixel (%d,%d)=%v want %v", x, y, g, w)
			}
		}
	}
}

func TestSaveLoadFormats(t *testing.T) {
	dir := t.TempDir()
	buf := testBuffer()

	for _, name := range []string{"tex.png", "tex.webp", "tex.tga", "tex.bmp", "TEX.PNG"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := Save(path, buf); err != nil {
				t.Fatalf("Save: %v", err)
			}
			img, err := Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			samePixels(t, buf, img)
		})
	}
}

func TestPNGIsTruecolorWithoutAlpha(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tex.png")
	if err := Save(path, testBuffer()); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	// IHDR: bit depth at byte 24, color type at byte 25
	if data[24] != 8 || data[25] != 2 {
		t.Fatalf("bit depth %d color type %d, want 8-bit truecolor (2)", data[24], data[25])
	}

	img, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := img.(*image.RGBA); !ok {
		t.Fatalf("decoded %T, want *image.RGBA", img)
	}
}

func TestSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tex.png")
	if err := os.WriteFile(path, []byte("stale"), 0644); err != nil {
		t.Fatal(err)
	}
	buf := testBuffer()
	if err := Save(path, buf); err != nil {
		t.Fatal(err)
	}
	img, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	samePixels(t, buf, img)
}

func TestUnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tex.jpg")
	err := Save(path, testBuffer())
	if !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("Save err=%v want ErrUnknownFormat", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Fatalf("Save created %s for an unknown format", path)
	}
	if _, err := Load(path); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("Load err=%v want ErrUnknownFormat", err)
	}
}

func TestSaveMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "tex.png")
	if err := Save(path, testBuffer()); err == nil {
		t.Fatal("expected error writing into a missing directory")
	}
}

func TestLoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tex.png")
	if err := os.WriteFile(path, []byte("not a png"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected decode error")
	}
}

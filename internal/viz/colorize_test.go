package viz

import (
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/morphlab/grayscott/internal/field"
)

func TestPaletteLookup(t *testing.T) {
	for _, name := range PaletteNames() {
		fn, err := Palette(name)
		if err != nil {
			t.Errorf("Palette(%q): %v", name, err)
		}
		if fn == nil {
			t.Errorf("Palette(%q) returned nil func", name)
		}
	}

	if _, err := Palette("nope"); err == nil {
		t.Error("expected error for unknown palette")
	}
}

func TestColorizersClampOutOfRange(t *testing.T) {
	inputs := []struct {
		name string
		a, b float64
	}{
		{"above", 3.5, 2.0},
		{"below", -1.0, -0.5},
		{"huge", math.MaxFloat64 / 2, -math.MaxFloat64 / 2},
	}

	for _, name := range PaletteNames() {
		fn, _ := Palette(name)
		for _, in := range inputs {
			t.Run(name+"/"+in.name, func(t *testing.T) {
				// Must not panic, and alpha stays opaque.
				c := fn(in.a, in.b)
				if c.A != 255 {
					t.Errorf("alpha = %d, want 255", c.A)
				}
			})
		}
	}
}

func TestInkContrast(t *testing.T) {
	paper := Ink(1.0, 0.0)
	inked := Ink(0.3, 0.6)
	if paper.R <= inked.R {
		t.Errorf("ink should darken: paper %d, inked %d", paper.R, inked.R)
	}
}

func TestRenderDimensions(t *testing.T) {
	g, _ := field.NewGrid(6)
	img := Render(g, Thermal)
	if img.Bounds().Dx() != 6 || img.Bounds().Dy() != 6 {
		t.Errorf("bounds = %v, want 6x6", img.Bounds())
	}
}

func TestFillRGBAMatchesRender(t *testing.T) {
	g, _ := field.NewGrid(4)
	g.Set(1, 2, field.Cell{A: 0.8, B: 0.3})

	img := Render(g, Duotone)
	buf := make([]byte, 4*4*4)
	FillRGBA(buf, g, Duotone)

	for i := range buf {
		if buf[i] != img.Pix[i] {
			t.Fatalf("pixel byte %d: buf %d != img %d", i, buf[i], img.Pix[i])
		}
	}
}

func TestWritePNG(t *testing.T) {
	g, _ := field.NewGrid(8)
	g.Set(4, 4, field.Cell{A: 1})

	path := filepath.Join(t.TempDir(), "snap.png")
	if err := WritePNG(path, g, Thermal); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cfg.Width != 8 || cfg.Height != 8 {
		t.Errorf("decoded size %dx%d, want 8x8", cfg.Width, cfg.Height)
	}
}

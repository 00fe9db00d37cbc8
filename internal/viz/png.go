package viz

import (
	"image"
	"image/png"
	"os"

	"github.com/morphlab/grayscott/internal/field"
)

// Render maps every cell through fn into an RGBA image.
func Render(g *field.Grid, fn ColorFunc) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Size, g.Size))
	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			img.SetRGBA(x, y, CellColor(fn, g.At(x, y)))
		}
	}
	return img
}

// FillRGBA writes the colorized field into a preallocated RGBA pixel
// buffer of len 4*size*size, row-major. Used by the windowed viewer to
// avoid per-frame allocation.
func FillRGBA(buf []byte, g *field.Grid, fn ColorFunc) {
	cells := g.Cells()
	for i, c := range cells {
		col := fn(c.A, c.B)
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// WritePNG renders the field and writes it to path.
func WritePNG(path string, g *field.Grid, fn ColorFunc) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, Render(g, fn))
}

package seed

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	xdraw "golang.org/x/image/draw"
)

// Load decodes a PNG or JPEG file.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}

// Luminance resizes img to size*size and converts it to a scalar field
// of Rec. 601 luma values in [0,1], row-major.
func Luminance(img image.Image, size int) []float64 {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)

	vals := make([]float64, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			i := dst.PixOffset(x, y)
			r := float64(dst.Pix[i])
			g := float64(dst.Pix[i+1])
			b := float64(dst.Pix[i+2])
			vals[y*size+x] = (0.299*r + 0.587*g + 0.114*b) / 255.0
		}
	}
	return vals
}

// Sharpen applies a discrete-Laplacian edge enhancement to a square
// field: v' = v + amount*(4v - N - S - E - W), clamped back into [0,1].
// Edges wrap, matching the simulation's toroidal topology.
func Sharpen(vals []float64, size int, amount float64) []float64 {
	at := func(x, y int) float64 {
		x = (x%size + size) % size
		y = (y%size + size) % size
		return vals[y*size+x]
	}

	out := make([]float64, len(vals))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			v := at(x, y)
			lap := 4*v - at(x+1, y) - at(x-1, y) - at(x, y+1) - at(x, y-1)
			s := v + amount*lap
			if s < 0 {
				s = 0
			} else if s > 1 {
				s = 1
			}
			out[y*size+x] = s
		}
	}
	return out
}

// FieldFromImage runs the full preprocessing pipeline: decode, resize,
// luminance and optional sharpening. The result satisfies the engine's
// collaborator contract of size*size values in [0,1].
func FieldFromImage(path string, size int, sharpen float64) ([]float64, error) {
	img, err := Load(path)
	if err != nil {
		return nil, err
	}
	vals := Luminance(img, size)
	if sharpen > 0 {
		vals = Sharpen(vals, size, sharpen)
	}
	return vals, nil
}

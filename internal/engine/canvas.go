package engine

import "github.com/morphlab/grayscott/internal/field"

// Canvas is the drawing surface handed to a bitmap procedure. Values
// become channel A of the seed; alpha is the presence weight used when
// the seed is painted over an existing pattern. Alpha starts at 1
// everywhere, so a plain procedure overwrites the live field on reset.
type Canvas struct {
	Size  int
	value *field.Scalar
	alpha *field.Scalar
}

// BitmapProc paints an initial scalar field onto a size*size surface.
type BitmapProc func(c *Canvas)

func newCanvas(size int) *Canvas {
	v, err := field.NewScalar(size)
	if err != nil {
		panic(err)
	}
	return &Canvas{Size: size, value: v, alpha: field.Uniform(size, 1.0)}
}

// Set paints value v at (x, y).
func (c *Canvas) Set(x, y int, v float64) { c.value.Set(x, y, v) }

// SetAlpha adjusts the presence weight at (x, y). Zero keeps whatever
// the live field already holds there on re-seed.
func (c *Canvas) SetAlpha(x, y int, a float64) { c.alpha.Set(x, y, clamp01(a)) }

// Fill paints every cell with v.
func (c *Canvas) Fill(v float64) {
	for i := range c.value.Data {
		c.value.Data[i] = v
	}
}

// Value reads back a painted value.
func (c *Canvas) Value(x, y int) float64 { return c.value.At(x, y) }

// PaintField copies a normalized scalar field onto the canvas. Sources
// longer or shorter than size*size are cut or left at zero; image-side
// collaborators are expected to hand over exactly size*size values.
func (c *Canvas) PaintField(vals []float64) {
	n := len(vals)
	if n > len(c.value.Data) {
		n = len(c.value.Data)
	}
	copy(c.value.Data[:n], vals[:n])
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Package seed supplies initial-bitmap procedures for the simulation
// and the image preprocessing pipeline that turns pictures into
// normalized scalar fields for seeding and feed masking.
package seed

import "github.com/morphlab/grayscott/internal/engine"

// Blank returns a procedure that paints nothing: the field starts at
// zero and fills from the feed term alone.
func Blank() engine.BitmapProc {
	return func(c *engine.Canvas) {}
}

// Uniform paints every cell with v.
func Uniform(v float64) engine.BitmapProc {
	return func(c *engine.Canvas) { c.Fill(v) }
}

// CenterSquare paints a filled square of the given value covering frac
// of the grid width, centered.
func CenterSquare(frac, value float64) engine.BitmapProc {
	return func(c *engine.Canvas) {
		half := int(float64(c.Size) * frac / 2)
		mid := c.Size / 2
		for y := mid - half; y <= mid+half; y++ {
			for x := mid - half; x <= mid+half; x++ {
				c.Set(x, y, value)
			}
		}
	}
}

// FromField paints a precomputed scalar field, typically the output of
// the image pipeline. The field should hold size*size values in [0,1].
func FromField(vals []float64) engine.BitmapProc {
	return func(c *engine.Canvas) { c.PaintField(vals) }
}

// Package viz is the presentation stage: it maps the simulation's
// two-channel concentration field to displayable colors. Clamping into
// the renderable range happens here, never in the physics core.
package viz

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/morphlab/grayscott/internal/field"
)

// ColorFunc is a pure mapping from the two concentration channels to a
// display color. Implementations must tolerate values outside [0,1].
type ColorFunc func(a, b float64) color.RGBA

var palettes = map[string]ColorFunc{
	"thermal": Thermal,
	"ink":     Ink,
	"duotone": Duotone,
}

// Palette looks up a named colorizer.
func Palette(name string) (ColorFunc, error) {
	fn, ok := palettes[name]
	if !ok {
		return nil, fmt.Errorf("unknown palette %q", name)
	}
	return fn, nil
}

// PaletteNames returns the available palette names in stable order.
func PaletteNames() []string {
	names := make([]string, 0, len(palettes))
	for n := range palettes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Thermal shows the substrate as heat: dark where A is low, warm white
// where A is high, with the catalyst burning through in orange.
func Thermal(a, b float64) color.RGBA {
	a, b = clamp01(a), clamp01(b)
	v := a - b
	if v < 0 {
		v = 0
	}
	return color.RGBA{
		R: gray8(v*0.9 + b*0.9),
		G: gray8(v*0.8 + b*0.4),
		B: gray8(v * 0.7),
		A: 255,
	}
}

// Ink draws the catalyst as dark ink on paper.
func Ink(a, b float64) color.RGBA {
	a, b = clamp01(a), clamp01(b)
	v := 1 - 2*b
	g := gray8(v)
	return color.RGBA{R: g, G: g, B: g, A: 255}
}

// Duotone maps channel A to cyan and channel B to magenta.
func Duotone(a, b float64) color.RGBA {
	a, b = clamp01(a), clamp01(b)
	return color.RGBA{
		R: gray8(b),
		G: gray8(a),
		B: gray8(0.5*a + 0.5*b),
		A: 255,
	}
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

func gray8(v float64) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}

// CellColor applies fn to one cell.
func CellColor(fn ColorFunc, c field.Cell) color.RGBA {
	return fn(c.A, c.B)
}

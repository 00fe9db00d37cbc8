// Package field provides the square grid fields the simulation runs on:
// a single-channel scalar field and a two-channel concentration field,
// both with toroidal wrap-around addressing and bilinear sampling at
// fractional coordinates.
package field

import (
	"fmt"
	"math"
)

// Cell holds the two chemical concentrations at one grid point.
type Cell struct {
	A float64
	B float64
}

// Scalar is a square single-channel field stored row-major.
type Scalar struct {
	Size int
	Data []float64
}

// NewScalar allocates a zeroed size*size scalar field.
func NewScalar(size int) (*Scalar, error) {
	if size <= 0 {
		return nil, fmt.Errorf("field size must be positive, got %d", size)
	}
	return &Scalar{Size: size, Data: make([]float64, size*size)}, nil
}

// Uniform returns a scalar field filled with v.
func Uniform(size int, v float64) *Scalar {
	s, err := NewScalar(size)
	if err != nil {
		panic(err)
	}
	for i := range s.Data {
		s.Data[i] = v
	}
	return s
}

// At reads the value at (x, y) with toroidal wrapping.
func (s *Scalar) At(x, y int) float64 {
	x, y = wrap(x, s.Size), wrap(y, s.Size)
	return s.Data[y*s.Size+x]
}

// Set writes the value at (x, y) with toroidal wrapping.
func (s *Scalar) Set(x, y int, v float64) {
	x, y = wrap(x, s.Size), wrap(y, s.Size)
	s.Data[y*s.Size+x] = v
}

// Clone returns an independent copy.
func (s *Scalar) Clone() *Scalar {
	c := &Scalar{Size: s.Size, Data: make([]float64, len(s.Data))}
	copy(c.Data, s.Data)
	return c
}

// Grid is a square two-channel concentration field stored row-major.
type Grid struct {
	Size int
	data []Cell
}

// NewGrid allocates a zeroed size*size grid.
func NewGrid(size int) (*Grid, error) {
	if size <= 0 {
		return nil, fmt.Errorf("grid size must be positive, got %d", size)
	}
	return &Grid{Size: size, data: make([]Cell, size*size)}, nil
}

// Cells exposes the backing slice so callers can read values directly.
func (g *Grid) Cells() []Cell { return g.data }

// At reads the cell at (x, y) with toroidal wrapping.
func (g *Grid) At(x, y int) Cell {
	x, y = wrap(x, g.Size), wrap(y, g.Size)
	return g.data[y*g.Size+x]
}

// Set writes the cell at (x, y) with toroidal wrapping.
func (g *Grid) Set(x, y int, c Cell) {
	x, y = wrap(x, g.Size), wrap(y, g.Size)
	g.data[y*g.Size+x] = c
}

// Sample reads the field at a fractional position in cell units,
// interpolating bilinearly between the four surrounding cells. Integral
// coordinates return the cell value exactly, so unit-offset stencils see
// the raw grid.
func (g *Grid) Sample(fx, fy float64) Cell {
	x0 := math.Floor(fx)
	y0 := math.Floor(fy)
	tx := fx - x0
	ty := fy - y0

	ix, iy := int(x0), int(y0)
	c00 := g.At(ix, iy)
	c10 := g.At(ix+1, iy)
	c01 := g.At(ix, iy+1)
	c11 := g.At(ix+1, iy+1)

	top := lerpCell(c00, c10, tx)
	bot := lerpCell(c01, c11, tx)
	return lerpCell(top, bot, ty)
}

// Clone returns an independent copy.
func (g *Grid) Clone() *Grid {
	c := &Grid{Size: g.Size, data: make([]Cell, len(g.data))}
	copy(c.data, g.data)
	return c
}

// CopyFrom overwrites this grid's contents with src. Sizes must match.
func (g *Grid) CopyFrom(src *Grid) {
	copy(g.data, src.data)
}

// IsFinite reports whether every value in the grid is finite.
func (g *Grid) IsFinite() bool {
	for _, c := range g.data {
		if math.IsNaN(c.A) || math.IsInf(c.A, 0) || math.IsNaN(c.B) || math.IsInf(c.B, 0) {
			return false
		}
	}
	return true
}

func lerpCell(a, b Cell, t float64) Cell {
	return Cell{
		A: a.A + (b.A-a.A)*t,
		B: a.B + (b.B-a.B)*t,
	}
}

func wrap(i, m int) int {
	return (i%m + m) % m
}

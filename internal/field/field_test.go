package field

import (
	"math"
	"testing"
)

func TestNewScalarRejectsBadSize(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"zero", 0},
		{"negative", -4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewScalar(tt.size); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestScalarWrapAddressing(t *testing.T) {
	s, err := NewScalar(4)
	if err != nil {
		t.Fatalf("NewScalar: %v", err)
	}
	s.Set(0, 2, 7.5)

	tests := []struct {
		name string
		x, y int
	}{
		{"direct", 0, 2},
		{"wrap right", 4, 2},
		{"wrap left", -4, 2},
		{"wrap far", -8, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.At(tt.x, tt.y); got != 7.5 {
				t.Errorf("At(%d,%d) = %v, want 7.5", tt.x, tt.y, got)
			}
		})
	}
}

func TestGridWrapAddressing(t *testing.T) {
	g, err := NewGrid(5)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	g.Set(4, 0, Cell{A: 1, B: 2})

	if got := g.At(-1, 5); got.A != 1 || got.B != 2 {
		t.Errorf("At(-1,5) = %+v, want {1 2}", got)
	}
}

func TestSampleExactAtIntegers(t *testing.T) {
	g, _ := NewGrid(4)
	g.Set(2, 3, Cell{A: 0.25, B: 0.75})

	got := g.Sample(2.0, 3.0)
	if got.A != 0.25 || got.B != 0.75 {
		t.Errorf("Sample(2,3) = %+v, want {0.25 0.75}", got)
	}
}

func TestSampleBilinearMidpoint(t *testing.T) {
	g, _ := NewGrid(4)
	g.Set(1, 1, Cell{A: 1})
	g.Set(2, 1, Cell{A: 3})

	got := g.Sample(1.5, 1.0)
	if math.Abs(got.A-2.0) > 1e-12 {
		t.Errorf("Sample(1.5,1) A = %v, want 2", got.A)
	}
	if got.B != 0 {
		t.Errorf("Sample(1.5,1) B = %v, want 0", got.B)
	}
}

func TestSampleWrapsAcrossEdge(t *testing.T) {
	g, _ := NewGrid(4)
	g.Set(0, 0, Cell{A: 2})
	g.Set(3, 0, Cell{A: 4})

	// Halfway between the last column and the first, across the seam.
	got := g.Sample(3.5, 0)
	if math.Abs(got.A-3.0) > 1e-12 {
		t.Errorf("Sample(3.5,0) A = %v, want 3", got.A)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g, _ := NewGrid(3)
	g.Set(1, 1, Cell{A: 1})

	c := g.Clone()
	c.Set(1, 1, Cell{A: 9})

	if g.At(1, 1).A != 1 {
		t.Error("mutating clone changed the original")
	}
}

func TestIsFinite(t *testing.T) {
	g, _ := NewGrid(2)
	if !g.IsFinite() {
		t.Error("zero grid should be finite")
	}

	g.Set(0, 0, Cell{A: math.NaN()})
	if g.IsFinite() {
		t.Error("NaN grid reported finite")
	}

	g.Set(0, 0, Cell{B: math.Inf(1)})
	if g.IsFinite() {
		t.Error("Inf grid reported finite")
	}
}

func TestUniform(t *testing.T) {
	s := Uniform(3, 0.5)
	for i, v := range s.Data {
		if v != 0.5 {
			t.Fatalf("Data[%d] = %v, want 0.5", i, v)
		}
	}
}

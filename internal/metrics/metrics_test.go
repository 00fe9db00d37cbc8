package metrics

import (
	"math"
	"testing"

	"github.com/morphlab/grayscott/internal/field"
)

func TestTotalMass(t *testing.T) {
	g, _ := field.NewGrid(2)
	g.Set(0, 0, field.Cell{A: 1.0, B: 0.4})
	g.Set(1, 1, field.Cell{A: 0.5})

	a := NewTotalMass(ChannelA)
	a.Observe(g, 1)
	if math.Abs(a.Value()-1.5/4) > 1e-12 {
		t.Errorf("mass A = %v, want 0.375", a.Value())
	}
	if a.Name() != "mass_a" {
		t.Errorf("name = %q", a.Name())
	}

	b := NewTotalMass(ChannelB)
	b.Observe(g, 1)
	if math.Abs(b.Value()-0.1) > 1e-12 {
		t.Errorf("mass B = %v, want 0.1", b.Value())
	}

	a.Reset()
	if a.Value() != 0 {
		t.Error("Reset did not zero value")
	}
}

func TestContrastZeroOnUniformField(t *testing.T) {
	g, _ := field.NewGrid(4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			g.Set(x, y, field.Cell{A: 0.7})
		}
	}

	m := NewContrast(ChannelA)
	m.Observe(g, 1)
	if m.Value() != 0 {
		t.Errorf("contrast of uniform field = %v, want 0", m.Value())
	}
}

func TestContrastGrowsWithStructure(t *testing.T) {
	flat, _ := field.NewGrid(4)
	split, _ := field.NewGrid(4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			flat.Set(x, y, field.Cell{A: 0.5})
			v := 0.0
			if x >= 2 {
				v = 1.0
			}
			split.Set(x, y, field.Cell{A: v})
		}
	}

	m := NewContrast(ChannelA)
	m.Observe(flat, 1)
	low := m.Value()
	m.Observe(split, 2)
	high := m.Value()

	if high <= low {
		t.Errorf("contrast did not grow: flat %v, split %v", low, high)
	}
}

func TestActivity(t *testing.T) {
	g, _ := field.NewGrid(2)
	m := NewActivity()

	m.Observe(g, 1)
	if m.Value() != 0 {
		t.Errorf("first observation activity = %v, want 0", m.Value())
	}

	g.Set(0, 0, field.Cell{A: 0.4})
	m.Observe(g, 2)
	if math.Abs(m.Value()-0.1) > 1e-12 {
		t.Errorf("activity = %v, want 0.1", m.Value())
	}

	// Unchanged field settles back to zero.
	m.Observe(g, 3)
	if m.Value() != 0 {
		t.Errorf("activity on unchanged field = %v, want 0", m.Value())
	}
}

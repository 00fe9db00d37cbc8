package metrics

import (
	"gonum.org/v1/gonum/stat"

	"github.com/morphlab/grayscott/internal/field"
)

// Contrast is the standard deviation of one channel across the grid: a
// uniform field scores zero, a developed pattern scores high.
type Contrast struct {
	channel Channel
	scratch []float64
	value   float64
}

func NewContrast(c Channel) *Contrast {
	return &Contrast{channel: c}
}

func (m *Contrast) Name() string { return "contrast_" + m.channel.suffix() }

func (m *Contrast) Observe(g *field.Grid, tick uint64) {
	cells := g.Cells()
	if cap(m.scratch) < len(cells) {
		m.scratch = make([]float64, len(cells))
	}
	m.scratch = m.scratch[:len(cells)]
	for i, c := range cells {
		m.scratch[i] = m.channel.get(c)
	}
	m.value = stat.StdDev(m.scratch, nil)
}

func (m *Contrast) Value() float64 { return m.value }
func (m *Contrast) Reset() {
	m.value = 0
	m.scratch = m.scratch[:0]
}

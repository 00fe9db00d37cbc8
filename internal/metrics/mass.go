package metrics

import "github.com/morphlab/grayscott/internal/field"

// TotalMass tracks the mean concentration of one channel.
type TotalMass struct {
	channel Channel
	value   float64
}

func NewTotalMass(c Channel) *TotalMass {
	return &TotalMass{channel: c}
}

func (m *TotalMass) Name() string { return "mass_" + m.channel.suffix() }

func (m *TotalMass) Observe(g *field.Grid, tick uint64) {
	sum := 0.0
	cells := g.Cells()
	for _, c := range cells {
		sum += m.channel.get(c)
	}
	m.value = sum / float64(len(cells))
}

func (m *TotalMass) Value() float64 { return m.value }
func (m *TotalMass) Reset()         { m.value = 0 }

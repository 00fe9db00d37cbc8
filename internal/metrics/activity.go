package metrics

import (
	"math"

	"github.com/morphlab/grayscott/internal/field"
)

// Activity is the mean absolute change of channel A between consecutive
// observations. It falls toward zero as a pattern settles.
type Activity struct {
	prev  []float64
	value float64
}

func NewActivity() *Activity { return &Activity{} }

func (m *Activity) Name() string { return "activity" }

func (m *Activity) Observe(g *field.Grid, tick uint64) {
	cells := g.Cells()
	if m.prev == nil {
		m.prev = make([]float64, len(cells))
		for i, c := range cells {
			m.prev[i] = c.A
		}
		m.value = 0
		return
	}

	sum := 0.0
	for i, c := range cells {
		sum += math.Abs(c.A - m.prev[i])
		m.prev[i] = c.A
	}
	m.value = sum / float64(len(cells))
}

func (m *Activity) Value() float64 { return m.value }
func (m *Activity) Reset() {
	m.prev = nil
	m.value = 0
}

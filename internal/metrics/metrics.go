// Package metrics provides per-tick observers over the concentration
// field. Metrics satisfy the scheduler's Observer interface and expose
// a scalar value for plotting and telemetry.
package metrics

import (
	"github.com/morphlab/grayscott/internal/field"
)

// Metric observes the committed field once per tick and reduces it to a
// scalar.
type Metric interface {
	Name() string
	Observe(g *field.Grid, tick uint64)
	Value() float64
	Reset()
}

// Channel selects which concentration a metric reads.
type Channel int

const (
	ChannelA Channel = iota
	ChannelB
)

func (c Channel) get(cell field.Cell) float64 {
	if c == ChannelA {
		return cell.A
	}
	return cell.B
}

func (c Channel) suffix() string {
	if c == ChannelA {
		return "a"
	}
	return "b"
}

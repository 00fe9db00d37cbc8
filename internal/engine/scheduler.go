package engine

import (
	"fmt"

	"github.com/morphlab/grayscott/internal/field"
)

// SchedulerState is the scheduler's two-state machine.
type SchedulerState int

const (
	// Idle means no frame cadence is attached; ticks are ignored.
	Idle SchedulerState = iota
	// Running means ticks advance the simulation.
	Running
)

// Presenter receives the committed read buffer after each visible tick.
type Presenter interface {
	Present(g *field.Grid, tick uint64)
}

// Observer is notified once per visible tick with the committed field,
// after all of the tick's iterations.
type Observer interface {
	Observe(g *field.Grid, tick uint64)
}

// Scheduler drives the session from a host-provided frame cadence. The
// host calls Tick once per frame; the scheduler runs the configured
// number of stencil iterations strictly in sequence, pulling fresh
// parameters per iteration, and hands the result to the presenter.
type Scheduler struct {
	session   *Session
	source    ParamSource
	presenter Presenter
	observers []Observer

	state   SchedulerState
	visible bool
	tick    uint64
}

// NewScheduler wires a session to its parameter source and presenter.
// The presenter may be nil for headless runs.
func NewScheduler(session *Session, source ParamSource, presenter Presenter) (*Scheduler, error) {
	if session == nil {
		return nil, fmt.Errorf("scheduler requires a session")
	}
	if source == nil {
		return nil, fmt.Errorf("scheduler requires a parameter source")
	}
	return &Scheduler{
		session:   session,
		source:    source,
		presenter: presenter,
		state:     Idle,
		visible:   true,
	}, nil
}

// AddObserver registers a per-tick observer.
func (s *Scheduler) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Start attaches the scheduler to the frame cadence.
func (s *Scheduler) Start() { s.state = Running }

// Stop detaches it. Stopping the cadence is the only cancellation
// mechanism; an in-flight Tick always runs to completion.
func (s *Scheduler) Stop() { s.state = Idle }

// State returns the current scheduler state.
func (s *Scheduler) State() SchedulerState { return s.state }

// SetVisible marks the output surface visible or hidden. A hidden
// surface makes Tick a designed no-op, not an error: no steps run, the
// tick counter does not advance, nothing is presented.
func (s *Scheduler) SetVisible(v bool) { s.visible = v }

// TickCount returns the opaque iteration counter fed to the parameter
// source.
func (s *Scheduler) TickCount() uint64 { return s.tick }

// Tick runs one frame's worth of simulation. Iteration i+1 always
// observes the committed output of iteration i; there is no cross-tick
// reordering. When an iteration's parameters carry Reset, the session
// re-seeds immediately before that iteration's step, so the step reads
// the fresh seed.
func (s *Scheduler) Tick() {
	if s.state != Running || !s.visible {
		return
	}

	for i := 0; i < s.session.IterationsPerTick(); i++ {
		p := s.source(s.tick)
		if p.Reset {
			s.session.Reset()
		}
		s.session.Step(p)
		s.tick++
	}

	cur := s.session.Field()
	for _, o := range s.observers {
		o.Observe(cur, s.tick)
	}
	if s.presenter != nil {
		s.presenter.Present(cur, s.tick)
	}
}

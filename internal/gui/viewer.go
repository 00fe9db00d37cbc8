// Package gui is the windowed front end: an ebiten game whose draw loop
// supplies the frame cadence the step scheduler runs on.
package gui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/morphlab/grayscott/internal/config"
	"github.com/morphlab/grayscott/internal/engine"
	"github.com/morphlab/grayscott/internal/field"
	"github.com/morphlab/grayscott/internal/viz"
)

// Viewer adapts a simulation session to the ebiten.Game interface.
type Viewer struct {
	session  *engine.Session
	sched    *engine.Scheduler
	cfg      *config.Config
	colorize viz.ColorFunc

	params engine.StepParams

	tex   *ebiten.Image
	pix   []byte
	tick  uint64
	scale int

	paused bool
}

// NewViewer wires a session, a scheduler and the pixel buffer the field
// is blitted into.
func NewViewer(cfg *config.Config, bitmap engine.BitmapProc, mask []float64, scale int) (*Viewer, error) {
	if scale <= 0 {
		scale = 2
	}

	session, err := engine.NewSession(engine.Config{
		Size:              cfg.Size,
		IterationsPerTick: cfg.Iterations,
		InitialBitmap:     bitmap,
		FeedMask:          mask,
	})
	if err != nil {
		return nil, err
	}

	colorize, err := viz.Palette(cfg.Palette)
	if err != nil {
		return nil, err
	}

	v := &Viewer{
		session:  session,
		cfg:      cfg,
		colorize: colorize,
		params:   cfg.Params(),
		tex:      ebiten.NewImage(cfg.Size, cfg.Size),
		pix:      make([]byte, 4*cfg.Size*cfg.Size),
		scale:    scale,
	}

	source := func(tick uint64) engine.StepParams { return v.params }
	sched, err := engine.NewScheduler(session, source, v)
	if err != nil {
		return nil, err
	}
	v.sched = sched

	session.Inoculate(cfg.Size/2, cfg.Size/2, float64(cfg.Size)/16, 0.9)
	sched.Start()
	return v, nil
}

// Present blits the committed field into the texture pixels.
func (v *Viewer) Present(g *field.Grid, tick uint64) {
	viz.FillRGBA(v.pix, g, v.colorize)
	v.tex.WritePixels(v.pix)
	v.tick = tick
}

// Update handles input and runs one scheduler tick per frame.
func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		v.sched.Stop()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		v.paused = !v.paused
		v.sched.SetVisible(!v.paused)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		v.params.Reset = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		v.session.Inoculate(v.cfg.Size/2, v.cfg.Size/2, float64(v.cfg.Size)/16, 0.9)
	}
	if x, y := ebiten.CursorPosition(); ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		v.session.Inoculate(x/v.scale, y/v.scale, float64(v.cfg.Size)/32, 0.9)
	}

	reset := v.params.Reset
	v.sched.Tick()
	if reset {
		v.params.Reset = false
	}
	return nil
}

// Draw renders the current texture scaled to the window.
func (v *Viewer) Draw(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(v.scale), float64(v.scale))
	screen.DrawImage(v.tex, op)

	status := fmt.Sprintf("tick %d  feed %.4f  kill %.4f", v.tick, v.params.Feed, v.params.Kill)
	if v.paused {
		status += "  [paused]"
	}
	ebitenutil.DebugPrint(screen, status)
}

// Layout reports the logical screen size.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.cfg.Size * v.scale, v.cfg.Size * v.scale
}

// Run opens the window and blocks until the viewer exits.
func Run(cfg *config.Config, bitmap engine.BitmapProc, mask []float64, scale int) error {
	v, err := NewViewer(cfg, bitmap, mask, scale)
	if err != nil {
		return err
	}
	ebiten.SetWindowSize(cfg.Size*scale, cfg.Size*scale)
	ebiten.SetWindowTitle("grayscott")
	return ebiten.RunGame(v)
}

package engine

import (
	"fmt"
	"log/slog"

	"github.com/morphlab/grayscott/internal/compute"
	"github.com/morphlab/grayscott/internal/field"
)

// Config carries the construction parameters of a simulation session.
type Config struct {
	// Size is the square grid resolution. Must be positive.
	Size int
	// IterationsPerTick is how many stencil steps run per scheduler
	// tick. Must be positive.
	IterationsPerTick int
	// InitialBitmap paints the seed field. Required.
	InitialBitmap BitmapProc
	// FeedMask optionally modulates the feed rate per cell. Length
	// mismatches are normalized, not rejected.
	FeedMask []float64
	// Backend runs the per-cell kernels. Defaults to compute.Auto().
	Backend compute.Backend
	// Logger receives recoverable-normalization diagnostics. Defaults
	// to slog.Default().
	Logger *slog.Logger
}

func (c Config) validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("grid size must be positive, got %d", c.Size)
	}
	if c.IterationsPerTick <= 0 {
		return fmt.Errorf("iterations per tick must be positive, got %d", c.IterationsPerTick)
	}
	if c.InitialBitmap == nil {
		return fmt.Errorf("initial bitmap procedure is required")
	}
	return nil
}

// Session owns the buffer pair, the feed mask and the seed bitmap for
// one simulation. Nothing outside the session writes these directly;
// external callers go through Reset, UpdateFeedMask and
// ReloadInitialBitmap.
type Session struct {
	size       int
	iterations int
	pair       *BufferPair
	mask       *field.Scalar
	bitmap     BitmapProc
	seedSrc    *Canvas
	backend    compute.Backend
	log        *slog.Logger
}

// NewSession validates the configuration, allocates both buffers,
// renders the initial bitmap and seeds the field. All failure modes
// surface here, synchronously; there is no retry.
func NewSession(cfg Config) (*Session, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("session config: %w", err)
	}

	pair, err := NewBufferPair(cfg.Size)
	if err != nil {
		return nil, err
	}

	backend := cfg.Backend
	if backend == nil {
		backend = compute.Auto()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Session{
		size:       cfg.Size,
		iterations: cfg.IterationsPerTick,
		pair:       pair,
		mask:       field.Uniform(cfg.Size, 1.0),
		bitmap:     cfg.InitialBitmap,
		backend:    backend,
		log:        logger,
	}

	if cfg.FeedMask != nil {
		s.UpdateFeedMask(cfg.FeedMask)
	}

	s.ReloadInitialBitmap()
	s.Reset()
	return s, nil
}

// Size returns the grid resolution.
func (s *Session) Size() int { return s.size }

// IterationsPerTick returns the configured steps per tick.
func (s *Session) IterationsPerTick() int { return s.iterations }

// Field returns the committed read buffer. Callers must not write it.
func (s *Session) Field() *field.Grid { return s.pair.Read() }

// Mask returns a copy of the active feed mask.
func (s *Session) Mask() *field.Scalar { return s.mask.Clone() }

// Step runs one stencil pass from the read buffer into the write buffer
// and commits the swap. The pass is dispatched as a per-cell kernel; no
// cell writes anything but its own output, so backends are free to
// parallelize.
func (s *Session) Step(p StepParams) {
	read := s.pair.Read()
	write := s.pair.Write()
	mask := s.mask

	s.backend.Dispatch(s.size, s.size, func(x, y int) {
		write.Set(x, y, stepCell(read, mask, p, x, y))
	})
	s.pair.Commit()
}

// Reset re-seeds the field from the current seed bitmap: channel A takes
// the painted value weighted by the bitmap's alpha, channel B keeps its
// old value scaled by (1-alpha). With the default alpha of 1 this is an
// overwrite with B = 0. The blend is painted into the inactive write
// buffer and committed.
func (s *Session) Reset() {
	read := s.pair.Read()
	write := s.pair.Write()
	src := s.seedSrc

	for y := 0; y < s.size; y++ {
		for x := 0; x < s.size; x++ {
			v := clamp01(src.value.At(x, y))
			a := src.alpha.At(x, y)
			cur := read.At(x, y)
			write.Set(x, y, field.Cell{
				A: cur.A + (v-cur.A)*a,
				B: cur.B * (1 - a),
			})
		}
	}
	s.pair.Commit()
}

// UpdateFeedMask replaces the spatial feed mask wholesale. A nil field
// removes the mask (uniform feed rate 1). A field whose length is not
// size*size is truncated or zero-padded to fit, with a diagnostic;
// padded cells get feed rate 0. The live A/B buffers are never touched.
func (s *Session) UpdateFeedMask(vals []float64) {
	if vals == nil {
		s.mask = field.Uniform(s.size, 1.0)
		return
	}

	want := s.size * s.size
	if len(vals) != want {
		s.log.Warn("feed mask length mismatch, normalizing",
			"got", len(vals), "want", want)
	}

	m, err := field.NewScalar(s.size)
	if err != nil {
		panic(err)
	}
	n := len(vals)
	if n > want {
		n = want
	}
	copy(m.Data[:n], vals[:n])
	s.mask = m
}

// ReloadInitialBitmap re-invokes the bitmap procedure to refresh the
// seed source. The live buffers are untouched until the next Reset.
func (s *Session) ReloadInitialBitmap() {
	c := newCanvas(s.size)
	s.bitmap(c)
	s.seedSrc = c
}

// Inoculate raises channel B to at least level within radius r of
// (cx, cy) on the live field. Seeds carry no catalyst, so this is how a
// reaction front gets started.
func (s *Session) Inoculate(cx, cy int, r, level float64) {
	read := s.pair.Read()
	ri := int(r)
	for dy := -ri; dy <= ri; dy++ {
		for dx := -ri; dx <= ri; dx++ {
			if float64(dx*dx+dy*dy) > r*r {
				continue
			}
			c := read.At(cx+dx, cy+dy)
			if c.B < level {
				c.B = level
				read.Set(cx+dx, cy+dy, c)
			}
		}
	}
}

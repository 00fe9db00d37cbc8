// Package telemetry writes run artifacts: a metadata header and one CSV
// row of metric values per tick. These are analysis exports, not
// resumable simulation state.
package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/morphlab/grayscott/internal/field"
	"github.com/morphlab/grayscott/internal/metrics"
)

// Meta describes the run the rows belong to.
type Meta struct {
	ID            string    `json:"id"`
	Preset        string    `json:"preset,omitempty"`
	Size          int       `json:"size"`
	Iterations    int       `json:"iterations_per_tick"`
	DiffusionRate float64   `json:"diffusion_rate"`
	DiffusionStep float64   `json:"diffusion_step"`
	Feed          float64   `json:"feed"`
	Kill          float64   `json:"kill"`
	Started       time.Time `json:"started"`
	Ticks         uint64    `json:"ticks"`
}

// Row is one tick's worth of metric values.
type Row struct {
	Tick      uint64  `csv:"tick"`
	MassA     float64 `csv:"mass_a"`
	MassB     float64 `csv:"mass_b"`
	ContrastA float64 `csv:"contrast_a"`
	Activity  float64 `csv:"activity"`
}

// Recorder observes the field once per tick and buffers a row. It
// satisfies the scheduler's Observer interface. Flush writes
// metadata.json and telemetry.csv into the run directory.
type Recorder struct {
	dir  string
	meta Meta
	rows []Row

	massA    *metrics.TotalMass
	massB    *metrics.TotalMass
	contrast *metrics.Contrast
	activity *metrics.Activity
}

// NewRecorder creates the run directory and a recorder writing into it.
func NewRecorder(dir string, meta Meta) (*Recorder, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating run directory: %w", err)
	}
	return &Recorder{
		dir:      dir,
		meta:     meta,
		massA:    metrics.NewTotalMass(metrics.ChannelA),
		massB:    metrics.NewTotalMass(metrics.ChannelB),
		contrast: metrics.NewContrast(metrics.ChannelA),
		activity: metrics.NewActivity(),
	}, nil
}

// Observe reduces the committed field to one row.
func (r *Recorder) Observe(g *field.Grid, tick uint64) {
	r.massA.Observe(g, tick)
	r.massB.Observe(g, tick)
	r.contrast.Observe(g, tick)
	r.activity.Observe(g, tick)

	r.rows = append(r.rows, Row{
		Tick:      tick,
		MassA:     r.massA.Value(),
		MassB:     r.massB.Value(),
		ContrastA: r.contrast.Value(),
		Activity:  r.activity.Value(),
	})
	r.meta.Ticks = tick
}

// Rows returns the buffered rows.
func (r *Recorder) Rows() []Row { return r.rows }

// Flush writes metadata.json and telemetry.csv.
func (r *Recorder) Flush() error {
	metaFile, err := os.Create(filepath.Join(r.dir, "metadata.json"))
	if err != nil {
		return err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r.meta); err != nil {
		return err
	}

	csvFile, err := os.Create(filepath.Join(r.dir, "telemetry.csv"))
	if err != nil {
		return err
	}
	defer csvFile.Close()

	return gocsv.MarshalFile(&r.rows, csvFile)
}

// Package tui is the terminal front end: a bubbletea program that
// drives the step scheduler from its own tick cadence and renders the
// colorized field with half-block cells.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/morphlab/grayscott/internal/config"
	"github.com/morphlab/grayscott/internal/engine"
	"github.com/morphlab/grayscott/internal/field"
	"github.com/morphlab/grayscott/internal/metrics"
	"github.com/morphlab/grayscott/internal/viz"
)

const historyCapacity = 240

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(0, 2)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	pausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).MarginTop(1)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model runs one simulation session inside the terminal.
type Model struct {
	session  *engine.Session
	sched    *engine.Scheduler
	cfg      *config.Config
	colorize viz.ColorFunc

	params engine.StepParams
	preset string

	frame       *field.Grid
	tick        uint64
	massB       *metrics.TotalMass
	contrast    *metrics.Contrast
	massHistory []float64

	paused bool
	width  int
	height int
	fps    int
}

// New builds the model and its scheduler. The model itself is the
// scheduler's presenter.
func New(cfg *config.Config, bitmap engine.BitmapProc, mask []float64) (*Model, error) {
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

	m := &Model{
		session:  session,
		cfg:      cfg,
		colorize: colorize,
		params:   cfg.Params(),
		preset:   cfg.Preset,
		massB:    metrics.NewTotalMass(metrics.ChannelB),
		contrast: metrics.NewContrast(metrics.ChannelA),
		fps:      30,
	}

	// The source reads the model's current parameters so interactive
	// preset switching takes effect on the next iteration.
	source := func(tick uint64) engine.StepParams { return m.params }
	sched, err := engine.NewScheduler(session, source, m)
	if err != nil {
		return nil, err
	}
	m.sched = sched

	session.Inoculate(cfg.Size/2, cfg.Size/2, float64(cfg.Size)/16, 0.9)
	sched.Start()
	return m, nil
}

// Present receives the committed read buffer after each visible tick.
func (m *Model) Present(g *field.Grid, tick uint64) {
	m.frame = g
	m.tick = tick

	m.massB.Observe(g, tick)
	m.contrast.Observe(g, tick)
	m.massHistory = append(m.massHistory, m.massB.Value())
	if len(m.massHistory) > historyCapacity {
		m.massHistory = m.massHistory[1:]
	}
}

func (m *Model) Init() tea.Cmd {
	return m.tickCmd()
}

func (m *Model) tickCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case TickMsg:
		if m.params.Reset {
			// One-shot: the flag rides exactly one tick's parameters.
			defer func() { m.params.Reset = false }()
		}
		m.sched.Tick()
		return m, m.tickCmd()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.sched.Stop()
			return m, tea.Quit
		case " ":
			// A paused view is a hidden surface: the whole tick is
			// skipped, nothing advances.
			m.paused = !m.paused
			m.sched.SetVisible(!m.paused)
		case "r":
			m.params.Reset = true
		case "b":
			m.session.Inoculate(m.cfg.Size/2, m.cfg.Size/2, float64(m.cfg.Size)/16, 0.9)
		case "tab":
			m.nextPreset()
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) nextPreset() {
	names := config.PresetNames()
	next := names[0]
	for i, n := range names {
		if n == m.preset {
			next = names[(i+1)%len(names)]
			break
		}
	}
	p := config.Presets[next]
	m.preset = next
	m.params.Feed = p.Feed
	m.params.Kill = p.Kill
	m.params.DiffusionRate = p.DiffusionRate
}

func (m *Model) View() string {
	if m.frame == nil {
		return "starting..."
	}

	canvas := m.renderCanvas()
	stats := m.renderStats()
	body := lipgloss.JoinHorizontal(lipgloss.Top, canvas, statsStyle.Render(stats))

	header := headerStyle.Render("grayscott · reaction-diffusion lab")
	help := helpStyle.Render("space pause · r reset · b inoculate · tab preset · q quit")
	return lipgloss.JoinVertical(lipgloss.Left, header, body, help)
}

// renderCanvas downsamples the field into half-block characters: each
// terminal cell shows two vertically stacked grid samples.
func (m *Model) renderCanvas() string {
	cols := m.frame.Size
	if m.width > 44 && cols > m.width-44 {
		cols = m.width - 44
	}
	if cols > 96 {
		cols = 96
	}
	if cols < 8 {
		cols = 8
	}
	rows := cols / 2

	var sb strings.Builder
	for ty := 0; ty < rows; ty++ {
		for tx := 0; tx < cols; tx++ {
			gx := tx * m.frame.Size / cols
			gyTop := (ty * 2) * m.frame.Size / (rows * 2)
			gyBot := (ty*2 + 1) * m.frame.Size / (rows * 2)

			top := viz.CellColor(m.colorize, m.frame.At(gx, gyTop))
			bot := viz.CellColor(m.colorize, m.frame.At(gx, gyBot))

			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", top.R, top.G, top.B))).
				Background(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", bot.R, bot.G, bot.B)))
			sb.WriteString(style.Render("▀"))
		}
		sb.WriteByte('\n')
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (m *Model) renderStats() string {
	row := func(label string, format string, args ...any) string {
		return labelStyle.Render(label) + valueStyle.Render(fmt.Sprintf(format, args...))
	}

	lines := []string{
		row("preset", "%s", presetLabel(m.preset)),
		row("tick", "%d", m.tick),
		row("feed", "%.4f", m.params.Feed),
		row("kill", "%.4f", m.params.Kill),
		row("diffusion", "%.2f", m.params.DiffusionRate),
		row("mass B", "%.4f", m.massB.Value()),
		row("contrast", "%.4f", m.contrast.Value()),
	}
	if m.paused {
		lines = append(lines, pausedStyle.Render("PAUSED"))
	}

	if len(m.massHistory) > 2 {
		graph := asciigraph.Plot(m.massHistory,
			asciigraph.Height(6),
			asciigraph.Width(30),
			asciigraph.Caption("mass B"))
		lines = append(lines, graphStyle.Render(graph))
	}

	return strings.Join(lines, "\n")
}

func presetLabel(p string) string {
	if p == "" {
		return "custom"
	}
	return p
}

// Run starts the program on the alternate screen.
func Run(cfg *config.Config, bitmap engine.BitmapProc, mask []float64) error {
	m, err := New(cfg, bitmap, mask)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

package viz

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/wavesim/internal/metrics"
	"github.com/san-kum/wavesim/internal/render"
	"github.com/san-kum/wavesim/internal/sim"
	"github.com/san-kum/wavesim/internal/wave"
)

const (
	historyCapacity = 300
	frameInterval   = time.Second / 60

	// Canvas origin inside the view, set by canvasStyle padding.
	canvasLeft = 2
	canvasTop  = 1
)

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Model hosts a driver in the terminal. It is the only caller of the
// driver, so every engine call happens on the bubbletea update goroutine.
type Model struct {
	driver       *sim.Driver
	sink         *TerminalSink
	title        string
	cursorCol    int
	cursorRow    int
	obstacleMode bool
	selected     int
	energy       []float64
	peaks        []float64
	confirmClear bool
	showHelp     bool
	recorder     *render.Recorder
	message      string
	// ticking is true while a TickMsg is in flight.
	ticking      bool
}

// NewModel renders the driver's surface cols characters wide.
func NewModel(d *sim.Driver, cols int, title string) Model {
	g := d.Grid()
	sink := NewTerminalSink(cols, g.Width(), g.Height())
	return Model{
		driver:    d,
		sink:      sink,
		title:     title,
		cursorCol: sink.Cols() / 2,
		cursorRow: sink.Rows(),
		energy:    make([]float64, 0, historyCapacity),
		peaks:     make([]float64, 0, historyCapacity),
		ticking:   true,
	}
}

func (m Model) Init() tea.Cmd { return tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case TickMsg:
		m.ticking = false
		if snap, ok := m.driver.Tick(); ok {
			m.record(snap)
		}
		return m, m.schedule()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if m.confirmClear {
		m.confirmClear = false
		if key == "y" || key == "Y" {
			m.driver.Reset(true)
			m.message = "field and obstacles cleared"
		} else {
			m.message = "obstacles kept"
		}
		return m, nil
	}

	p := m.driver.Params()
	tunables := wave.Tunables()
	switch key {
	case "q", "ctrl+c":
		m.stopRecording()
		return m, tea.Quit
	case " ":
		m.driver.Toggle()
		return m, m.schedule()
	case "s":
		if !m.driver.Running() {
			m.record(m.driver.Step())
		}
	case "r":
		m.driver.Reset(false)
		m.energy, m.peaks = m.energy[:0], m.peaks[:0]
	case "R":
		m.confirmClear = true
	case "b":
		p.Boundary = p.Boundary.Next()
	case "c":
		p.Scheme = p.Scheme.Next()
	case "o":
		m.obstacleMode = !m.obstacleMode
	case "t":
		NextTheme()
	case "g":
		m.toggleRecording()
	case "?":
		m.showHelp = !m.showHelp
	case "up", "k":
		m.moveCursor(0, -1)
	case "down", "j":
		m.moveCursor(0, 1)
	case "left", "h":
		m.moveCursor(-1, 0)
	case "right", "l":
		m.moveCursor(1, 0)
	case "enter":
		x, y := m.sink.ToSurface(m.cursorCol, m.cursorRow)
		m.driver.Click(x, y, m.obstacleMode, false)
	case "x":
		x, y := m.sink.ToSurface(m.cursorCol, m.cursorRow)
		m.driver.Click(x, y, m.obstacleMode, true)
	case "tab":
		m.selected = (m.selected + 1) % len(tunables)
	case "shift+tab":
		m.selected = (m.selected + len(tunables) - 1) % len(tunables)
	case "+", "=":
		p.Adjust(tunables[m.selected], 1)
	case "-", "_":
		p.Adjust(tunables[m.selected], -1)
	case "]":
		p.Adjust(tunables[m.selected], 10)
	case "[":
		p.Adjust(tunables[m.selected], -10)
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if m.showHelp {
		return
	}
	col := msg.X - canvasLeft
	pixRow := (msg.Y-canvasTop)*2 + 1
	if col < 0 || col >= m.sink.Cols() || pixRow < 0 || pixRow >= m.sink.Rows()*2 {
		if msg.Action == tea.MouseActionRelease {
			m.driver.Release()
		}
		return
	}
	m.cursorCol, m.cursorRow = col, pixRow
	x, y := m.sink.ToSurface(col, pixRow)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		if m.obstacleMode {
			m.driver.Press(x, y, msg.Shift)
		} else {
			m.driver.Click(x, y, false, msg.Shift)
		}
	case tea.MouseActionMotion:
		m.driver.Drag(x, y, msg.Shift)
	case tea.MouseActionRelease:
		m.driver.Release()
	}
}

// schedule starts the next tick unless the driver is paused or one is
// already pending.
func (m *Model) schedule() tea.Cmd {
	if m.ticking || !m.driver.Running() {
		return nil
	}
	m.ticking = true
	return tick()
}

func (m *Model) moveCursor(dc, dr int) {
	m.cursorCol = clampInt(m.cursorCol+dc, 0, m.sink.Cols()-1)
	m.cursorRow = clampInt(m.cursorRow+dr, 0, m.sink.Rows()*2-1)
}

func (m *Model) record(snap metrics.Snapshot) {
	m.energy = appendCapped(m.energy, snap.TotalEnergy)
	m.peaks = appendCapped(m.peaks, snap.MaxAmplitude)
	if m.recorder != nil {
		m.recorder.OnFrame(sim.Frame{
			Index:     m.driver.Frame(),
			Grid:      m.driver.Grid(),
			Obstacles: m.driver.Obstacles(),
			Params:    *m.driver.Params(),
			Metrics:   snap,
		})
	}
}

func (m *Model) toggleRecording() {
	if m.recorder != nil {
		m.stopRecording()
		return
	}
	g := m.driver.Grid()
	m.recorder = render.NewRecorder(int(g.Width()), int(g.Height()), 2, 300, "")
	m.message = "recording"
}

func (m *Model) stopRecording() {
	if m.recorder == nil {
		return
	}
	rec := m.recorder
	m.recorder = nil
	if rec.Len() == 0 {
		m.message = "nothing recorded"
		return
	}
	name := fmt.Sprintf("wavesim_%d.gif", time.Now().Unix())
	f, err := os.Create(name)
	if err != nil {
		m.message = "gif: " + err.Error()
		return
	}
	defer f.Close()
	if err := rec.Encode(f, 3); err != nil {
		m.message = "gif: " + err.Error()
		return
	}
	m.message = fmt.Sprintf("saved %s (%d frames)", name, rec.Len())
}

func (m Model) View() string {
	render.Paint(m.sink, m.driver.Grid(), m.driver.Obstacles(), m.driver.Params().Scheme)
	canvas := canvasStyle.Render(m.sink.Render(m.cursorCol, m.cursorRow))
	view := lipgloss.JoinHorizontal(lipgloss.Top, canvas, panelStyle().Render(m.panel()))
	if m.showHelp {
		return view + "\n" + helpText
	}
	return view
}

func (m Model) panel() string {
	d := m.driver
	p := d.Params()
	snap := d.Metrics().Rounded()

	var s strings.Builder
	s.WriteString(GradientText(strings.ToUpper(m.title), CurrentTheme.Primary, CurrentTheme.Accent) + "\n")
	s.WriteString(status(d.Running(), m.recorder != nil) + "\n\n")

	row := func(label, value string) {
		s.WriteString(labelStyle().Render(label) + valueStyle().Render(value) + "\n")
	}
	row("Frame", fmt.Sprintf("%d", d.Frame()))
	row("Max amplitude", fmt.Sprintf("%.2f", snap.MaxAmplitude))
	row("Energy", fmt.Sprintf("%.2f", snap.TotalEnergy))
	row("Updates/s", fmt.Sprintf("%d", snap.UpdatesPerSecond))
	row("Boundary", p.Boundary.String())
	row("Colors", p.Scheme.String())
	mode := "ripple"
	if m.obstacleMode {
		mode = "obstacle"
	}
	row("Mode", mode)
	row("Obstacles", fmt.Sprintf("%d", d.Obstacles().Len()))

	if len(m.energy) > 1 {
		chart := asciigraph.Plot(m.energy, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("energy"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}
	s.WriteString(labelStyle().Render("Peak") + Sparkline(m.peaks, 24) + "\n\n")

	s.WriteString(Separator(38) + "\n")
	for i, name := range wave.Tunables() {
		lo, hi := tunableRange(name)
		v := p.Value(name)
		line := fmt.Sprintf("%-16s %s %6.3f", name, ProgressBar((v-lo)/(hi-lo), 10), v)
		if i == m.selected {
			s.WriteString(lipgloss.NewStyle().Foreground(CurrentTheme.Primary).Bold(true).Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + lipgloss.NewStyle().Foreground(CurrentTheme.Muted).Render(line) + "\n")
		}
	}
	s.WriteString(Separator(38) + "\n")

	if m.confirmClear {
		s.WriteString(lipgloss.NewStyle().Foreground(CurrentTheme.Alert).Bold(true).Render("Clear all obstacles too? (y/n)") + "\n")
	} else if m.message != "" {
		s.WriteString(lipgloss.NewStyle().Foreground(CurrentTheme.Text).Render(m.message) + "\n")
	}
	s.WriteString("\n" + keyHint("space", "pause") + "  " + keyHint("o", "mode") + "  " + keyHint("?", "help") + "  " + keyHint("q", "quit"))
	return s.String()
}

const helpText = `
  space  pause / resume         s      single step while paused
  r      clear the field        R      clear field and obstacles
  b      next boundary          c      next color scheme
  o      ripple / obstacle      t      next theme
  arrows move cursor            enter  click at cursor
  x      shift-click at cursor  g      start / stop GIF recording
  tab    next parameter         + -    nudge parameter (] [ x10)
  mouse  click for ripples, drag to draw obstacles, shift removes
`

func tunableRange(name string) (lo, hi float64) {
	switch name {
	case "damping":
		return wave.MinDamping, wave.MaxDamping
	case "amplitude":
		return wave.MinAmplitude, wave.MaxAmplitude
	case "speed":
		return wave.MinSpeed, wave.MaxSpeed
	default:
		return wave.MinObstacleRadius, wave.MaxObstacleRadius
	}
}

func appendCapped(buf []float64, v float64) []float64 {
	buf = append(buf, v)
	if len(buf) > historyCapacity {
		buf = buf[1:]
	}
	return buf
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Run starts the live view full screen with mouse tracking.
func Run(d *sim.Driver, cols int, title string) error {
	_, err := tea.NewProgram(NewModel(d, cols, title), tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}

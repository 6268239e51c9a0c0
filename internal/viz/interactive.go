package viz

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/wavesim/internal/colormap"
	"github.com/san-kum/wavesim/internal/config"
	"github.com/san-kum/wavesim/internal/metrics"
	"github.com/san-kum/wavesim/internal/sim"
	"github.com/san-kum/wavesim/internal/wave"
)

const (
	stateMenu = iota
	stateConfig
	stateSim
)

// setup fields shown on the config screen.
var setupFields = []string{"grid_size", "damping", "amplitude", "speed", "boundary", "color_scheme"}

// DefaultCols is the canvas width used when the terminal size is unknown.
const DefaultCols = 64

type app struct {
	state       int
	cursor      int
	presets     []string
	cfg         *config.Config
	fieldCursor int
	editing     bool
	editBuf     string
	err         string
	cols        int
	live        Model
}

func newApp() *app {
	return &app{state: stateMenu, presets: config.ListPresets(), cols: DefaultCols}
}

func (a app) Init() tea.Cmd { return nil }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Leave room for the side panel.
		if c := msg.Width - 56; c >= 16 {
			a.cols = c
		}
		return a, nil
	case tea.KeyMsg:
		switch a.state {
		case stateMenu:
			return a.menuKey(msg)
		case stateConfig:
			return a.configKey(msg)
		}
	}
	if a.state == stateSim {
		next, cmd := a.live.Update(msg)
		a.live = next.(Model)
		return a, cmd
	}
	return a, nil
}

func (a app) menuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(a.presets)-1 {
			a.cursor++
		}
	case "enter", " ":
		a.cfg = config.GetPreset(a.presets[a.cursor])
		a.cfg.GridSize = min(a.cfg.GridSize, 96)
		a.state, a.fieldCursor, a.err = stateConfig, 0, ""
	}
	return a, nil
}

func (a app) configKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	field := setupFields[a.fieldCursor]
	if a.editing {
		switch msg.String() {
		case "enter":
			if v, err := strconv.ParseFloat(a.editBuf, 64); err == nil {
				a.setNumber(field, v)
			}
			a.editing, a.editBuf = false, ""
		case "esc":
			a.editing, a.editBuf = false, ""
		case "backspace":
			if len(a.editBuf) > 0 {
				a.editBuf = a.editBuf[:len(a.editBuf)-1]
			}
		default:
			if s := msg.String(); len(s) == 1 && strings.ContainsAny(s, "0123456789.-") {
				a.editBuf += s
			}
		}
		return a, nil
	}

	switch msg.String() {
	case "q", "esc":
		a.state = stateMenu
	case "up", "k":
		if a.fieldCursor > 0 {
			a.fieldCursor--
		}
	case "down", "j":
		if a.fieldCursor < len(setupFields)-1 {
			a.fieldCursor++
		}
	case "enter":
		if field != "boundary" && field != "color_scheme" {
			a.editing, a.editBuf = true, ""
		}
	case "left", "h":
		a.nudge(field, -1)
	case "right", "l":
		a.nudge(field, 1)
	case "s":
		return a.start()
	}
	return a, nil
}

func (a *app) nudge(field string, dir int) {
	switch field {
	case "grid_size":
		a.cfg.GridSize = max(a.cfg.GridSize+dir*8, 8)
	case "boundary":
		b, _ := wave.ParseBoundary(a.cfg.Boundary)
		if dir > 0 {
			b = b.Next()
		} else {
			b = b.Next().Next()
		}
		a.cfg.Boundary = b.String()
	case "color_scheme":
		s, _ := colormap.ParseScheme(a.cfg.ColorScheme)
		steps := 1
		if dir < 0 {
			steps = len(colormap.Schemes()) - 1
		}
		for i := 0; i < steps; i++ {
			s = s.Next()
		}
		a.cfg.ColorScheme = s.String()
	default:
		p := a.cfg.Params()
		p.Adjust(field, dir)
		a.setNumber(field, p.Value(field))
	}
}

func (a *app) setNumber(field string, v float64) {
	switch field {
	case "grid_size":
		a.cfg.GridSize = int(v)
	case "damping":
		a.cfg.Damping = v
	case "amplitude":
		a.cfg.Amplitude = v
	case "speed":
		a.cfg.Speed = v
	}
}

func (a *app) value(field string) string {
	switch field {
	case "grid_size":
		return strconv.Itoa(a.cfg.GridSize)
	case "damping":
		return fmt.Sprintf("%.3f", a.cfg.Damping)
	case "amplitude":
		return fmt.Sprintf("%.1f", a.cfg.Amplitude)
	case "speed":
		return fmt.Sprintf("%.2f", a.cfg.Speed)
	case "boundary":
		return a.cfg.Boundary
	case "color_scheme":
		return a.cfg.ColorScheme
	}
	return ""
}

func (a app) start() (tea.Model, tea.Cmd) {
	grid, obstacles, err := a.cfg.Build()
	if err != nil {
		a.err = err.Error()
		return a, nil
	}
	params := a.cfg.Params()
	d := sim.New(grid, obstacles, &params, metrics.NewCollector(nil))
	a.live = NewModel(d, a.cols, a.presets[a.cursor])
	a.state = stateSim
	return a, a.live.Init()
}

func (a app) View() string {
	switch a.state {
	case stateMenu:
		return a.viewMenu()
	case stateConfig:
		return a.viewConfig()
	case stateSim:
		return a.live.View()
	}
	return ""
}

func (a app) viewMenu() string {
	var b strings.Builder
	sub := lipgloss.NewStyle().Foreground(CurrentTheme.Muted)
	b.WriteString("\n\n    " + GradientText("WAVESIM", CurrentTheme.Primary, CurrentTheme.Accent) + "\n")
	b.WriteString("    " + sub.Render("2d wave simulation") + "\n    " + sub.Render(strings.Repeat("─", 25)) + "\n\n")
	for i, name := range a.presets {
		b.WriteString("    " + a.item(i == a.cursor, fmt.Sprintf("%-14s", name), config.PresetDescriptions[name]) + "\n")
	}
	b.WriteString("\n    " + keyHint("j/k", "navigate") + "  " + keyHint("enter", "select") + "  " + keyHint("q", "quit") + "\n")
	return b.String()
}

func (a app) viewConfig() string {
	var b strings.Builder
	sub := lipgloss.NewStyle().Foreground(CurrentTheme.Muted)
	name := a.presets[a.cursor]
	b.WriteString("\n\n    " + GradientText(strings.ToUpper(name), CurrentTheme.Primary, CurrentTheme.Accent) + "\n")
	b.WriteString("    " + sub.Render(config.PresetDescriptions[name]) + "\n    " + sub.Render(strings.Repeat("─", 25)) + "\n\n")
	for i, field := range setupFields {
		val := a.value(field)
		if a.editing && i == a.fieldCursor {
			val = a.editBuf + "_"
		}
		b.WriteString("    " + a.item(i == a.fieldCursor, fmt.Sprintf("%-14s", field), val) + "\n")
	}
	if a.err != "" {
		b.WriteString("\n    " + lipgloss.NewStyle().Foreground(CurrentTheme.Alert).Render(a.err) + "\n")
	}
	b.WriteString("\n    " + keyHint("j/k", "select") + "  " + keyHint("h/l", "adjust") + "  " + keyHint("enter", "edit") + "  " + keyHint("s", "start") + "  " + keyHint("esc", "back") + "\n")
	return b.String()
}

func (a app) item(selected bool, label, detail string) string {
	if selected {
		return lipgloss.NewStyle().Foreground(CurrentTheme.Accent).Bold(true).Render("▸ ") +
			lipgloss.NewStyle().Foreground(CurrentTheme.Text).Bold(true).Render(label) + " " +
			lipgloss.NewStyle().Foreground(CurrentTheme.Primary).Render(detail)
	}
	return "  " + lipgloss.NewStyle().Foreground(CurrentTheme.Muted).Render(label+" "+detail)
}

// RunInteractive opens the preset picker and then the live view.
func RunInteractive() error {
	_, err := tea.NewProgram(newApp(), tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}

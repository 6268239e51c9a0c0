package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	graphStyle  = lipgloss.NewStyle().Padding(1, 0)
)

func panelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(CurrentTheme.Border).
		Padding(1, 2).
		Width(44)
}

func labelStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Muted).Width(14)
}

func valueStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Accent).Bold(true)
}

func keyHint(key, action string) string {
	k := lipgloss.NewStyle().Foreground(CurrentTheme.Accent).Bold(true).Render(key)
	a := lipgloss.NewStyle().Foreground(CurrentTheme.Muted).Render(" " + action)
	return k + a
}

func status(running, recording bool) string {
	switch {
	case recording:
		return lipgloss.NewStyle().Bold(true).Foreground(CurrentTheme.Alert).Render("● REC")
	case running:
		return lipgloss.NewStyle().Bold(true).Foreground(CurrentTheme.Running).Render("▶ RUNNING")
	default:
		return lipgloss.NewStyle().Bold(true).Foreground(CurrentTheme.Paused).Render("⏸ PAUSED")
	}
}

// GradientText colors each rune of text along a linear gradient.
func GradientText(text string, start, end lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	sr, sg, sb := parseHex(string(start))
	er, eg, eb := parseHex(string(end))

	var b strings.Builder
	for i, c := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		col := fmt.Sprintf("#%02x%02x%02x",
			lerp(sr, er, t), lerp(sg, eg, t), lerp(sb, eb, t))
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(col)).Bold(true).Render(string(c)))
	}
	return b.String()
}

// ProgressBar renders percent in [0, 1] as a filled bar.
func ProgressBar(percent float64, width int) string {
	filled := int(percent*float64(width) + 0.5)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// Sparkline renders the last width values on an eight-level scale.
func Sparkline(values []float64, width int) string {
	if len(values) == 0 {
		return strings.Repeat("─", width)
	}
	if len(values) > width {
		values = values[len(values)-width:]
	}
	levels := []rune("▁▂▃▄▅▆▇█")
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo, hi = min(lo, v), max(hi, v)
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}
	out := make([]rune, len(values))
	for i, v := range values {
		idx := int((v - lo) / span * float64(len(levels)-1))
		out[i] = levels[idx]
	}
	return string(out)
}

func Separator(width int) string {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Border).Render(strings.Repeat("─", width))
}

func lerp(a, b int, t float64) int {
	return int(float64(a) + t*float64(b-a))
}

func parseHex(hex string) (r, g, b int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 255, 255, 255
	}
	if _, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return 255, 255, 255
	}
	return r, g, b
}

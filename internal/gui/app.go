package gui

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/wavesim/internal/metrics"
	"github.com/san-kum/wavesim/internal/render"
	"github.com/san-kum/wavesim/internal/sim"
	"github.com/san-kum/wavesim/internal/wave"
)

const (
	panelWidth   = 320
	minHeight    = 640
	maxTelemetry = 240
	fontPath     = "/usr/share/fonts/liberation/LiberationMono-Regular.ttf"
)

var (
	ColBg      = rl.NewColor(10, 10, 10, 255)
	ColAccent  = rl.NewColor(180, 180, 180, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
	ColAlert   = rl.NewColor(255, 90, 90, 255)
)

// App hosts a driver in a raylib window: the surface on the left at 1:1
// pixel scale, a panel on the right. The window loop is the only caller of
// the driver.
type App struct {
	driver       *sim.Driver
	title        string
	font         rl.Font
	logger       *slog.Logger
	surfaceW     int32
	surfaceH     int32
	obstacleMode bool
	paramSel     int
	confirmClear bool
	telemetry    []float64
	message      string
}

func NewApp(d *sim.Driver, title string, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		driver:    d,
		title:     title,
		logger:    logger,
		surfaceW:  int32(d.Grid().Width()),
		surfaceH:  int32(d.Grid().Height()),
		telemetry: make([]float64, 0, maxTelemetry),
	}
}

// Run opens the window and blocks until it is closed.
func Run(d *sim.Driver, title string, logger *slog.Logger) {
	app := NewApp(d, title, logger)
	rl.InitWindow(app.surfaceW+panelWidth, max(app.surfaceH, minHeight), "wavesim")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)

	app.font = loadFont()
	app.RunLoop()
}

func loadFont() rl.Font {
	if _, err := os.Stat(fontPath); err != nil {
		return rl.GetFontDefault()
	}
	font := rl.LoadFontEx(fontPath, 32, nil, 0)
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if a.Update() {
			return
		}
		if snap, ok := a.driver.Tick(); ok {
			a.observe(snap)
		}
		a.Draw()
	}
}

func (a *App) observe(snap metrics.Snapshot) {
	a.telemetry = append(a.telemetry, snap.TotalEnergy)
	if len(a.telemetry) > maxTelemetry {
		a.telemetry = a.telemetry[1:]
	}
}

// Update handles input for one frame and reports whether to quit.
func (a *App) Update() bool {
	d := a.driver
	p := d.Params()
	shift := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)

	if a.confirmClear {
		if rl.IsKeyPressed(rl.KeyY) {
			d.Reset(true)
			a.confirmClear, a.message = false, "field and obstacles cleared"
		} else if rl.IsKeyPressed(rl.KeyN) || rl.IsKeyPressed(rl.KeyEscape) {
			a.confirmClear, a.message = false, "obstacles kept"
		}
		return false
	}

	switch {
	case rl.IsKeyPressed(rl.KeyQ), rl.IsKeyPressed(rl.KeyEscape):
		return true
	case rl.IsKeyPressed(rl.KeySpace):
		d.Toggle()
	case rl.IsKeyPressed(rl.KeyS) && !d.Running():
		a.observe(d.Step())
	case rl.IsKeyPressed(rl.KeyR) && shift:
		a.confirmClear = true
	case rl.IsKeyPressed(rl.KeyR):
		d.Reset(false)
		a.telemetry = a.telemetry[:0]
	case rl.IsKeyPressed(rl.KeyB):
		p.Boundary = p.Boundary.Next()
	case rl.IsKeyPressed(rl.KeyC):
		p.Scheme = p.Scheme.Next()
	case rl.IsKeyPressed(rl.KeyO):
		a.obstacleMode = !a.obstacleMode
	case rl.IsKeyPressed(rl.KeyP):
		a.snapshot()
	case rl.IsKeyPressed(rl.KeyTab):
		a.paramSel = (a.paramSel + 1) % len(wave.Tunables())
	}

	steps := 1
	if shift {
		steps = 10
	}
	name := wave.Tunables()[a.paramSel]
	if rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyRight) {
		p.Adjust(name, steps)
	}
	if rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyLeft) {
		p.Adjust(name, -steps)
	}

	a.handleMouse(shift)
	return false
}

func (a *App) handleMouse(remove bool) {
	d := a.driver
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		d.Release()
	}
	pos := rl.GetMousePosition()
	if pos.X < 0 || pos.Y < 0 || pos.X >= float32(a.surfaceW) || pos.Y >= float32(a.surfaceH) {
		return
	}
	x, y := float64(pos.X), float64(pos.Y)

	switch {
	case rl.IsMouseButtonPressed(rl.MouseLeftButton):
		if a.obstacleMode {
			d.Press(x, y, remove)
		} else {
			d.Click(x, y, false, remove)
		}
	case rl.IsMouseButtonDown(rl.MouseLeftButton) && d.Drawing():
		d.Drag(x, y, remove)
	}
}

func (a *App) snapshot() {
	g := a.driver.Grid()
	sink := render.NewImageSink(int(g.Width()), int(g.Height()))
	render.Paint(sink, g, a.driver.Obstacles(), a.driver.Params().Scheme)

	name := fmt.Sprintf("wavesim_%d.png", time.Now().Unix())
	f, err := os.Create(name)
	if err != nil {
		a.message = err.Error()
		return
	}
	defer f.Close()
	if err := sink.WritePNG(f); err != nil {
		a.message = err.Error()
		return
	}
	a.message = "saved " + name
	a.logger.Info("snapshot saved", "file", name)
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	render.Paint(windowSink{}, a.driver.Grid(), a.driver.Obstacles(), a.driver.Params().Scheme)
	a.drawHUD()

	rl.EndDrawing()
}

func (a *App) drawHUD() {
	d := a.driver
	p := d.Params()
	snap := d.Metrics().Rounded()
	x := int(a.surfaceW) + 24

	a.drawText("wavesim", x, 24, 28, ColSelect)
	a.drawText(":: "+a.title, x, 58, 16, ColText)

	status, col := "RUNNING", ColSelect
	if !d.Running() {
		status, col = "PAUSED", ColTextDim
	}
	a.drawText(status, x, 90, 16, col)

	y := 130
	line := func(label, value string) {
		a.drawText(fmt.Sprintf("%-14s %s", label, value), x, y, 16, ColText)
		y += 22
	}
	line("frame", fmt.Sprintf("%d", d.Frame()))
	line("max amplitude", fmt.Sprintf("%.2f", snap.MaxAmplitude))
	line("energy", fmt.Sprintf("%.2f", snap.TotalEnergy))
	line("updates/s", fmt.Sprintf("%d", snap.UpdatesPerSecond))
	line("boundary", p.Boundary.String())
	line("colors", p.Scheme.String())
	mode := "ripple"
	if a.obstacleMode {
		mode = "obstacle"
	}
	line("mode", mode)
	line("obstacles", fmt.Sprintf("%d", d.Obstacles().Len()))

	y += 16
	for i, name := range wave.Tunables() {
		text := fmt.Sprintf("  %-16s %.3f", name, p.Value(name))
		c := ColText
		if i == a.paramSel {
			text, c = "> "+text[2:], ColSelect
		}
		a.drawText(text, x, y, 16, c)
		y += 22
	}

	a.drawTelemetry(x, y+20, panelWidth-48, 60)

	if a.confirmClear {
		a.drawText("clear obstacles too? [Y/N]", x, int(max(a.surfaceH, minHeight))-90, 16, ColAlert)
	} else if a.message != "" {
		a.drawText(a.message, x, int(max(a.surfaceH, minHeight))-90, 14, ColAccent)
	}
	a.drawText("[SPACE] PAUSE [R] RESET [B] EDGE", x, int(max(a.surfaceH, minHeight))-60, 12, ColTextDim)
	a.drawText("[C] COLORS [O] MODE [P] PNG [Q] QUIT", x, int(max(a.surfaceH, minHeight))-42, 12, ColTextDim)
	a.drawText(fmt.Sprintf("%d FPS", rl.GetFPS()), x, int(max(a.surfaceH, minHeight))-22, 12, ColTextDim)
}

func (a *App) drawTelemetry(x, y, width, height int) {
	if len(a.telemetry) < 2 {
		return
	}
	lo, hi := a.telemetry[0], a.telemetry[0]
	for _, v := range a.telemetry {
		lo, hi = min(lo, v), max(hi, v)
	}
	if hi == lo {
		hi = lo + 1
	}

	points := make([]rl.Vector2, len(a.telemetry))
	for i, v := range a.telemetry {
		px := float32(x) + float32(i)/float32(maxTelemetry)*float32(width)
		py := float32(y+height) - float32((v-lo)/(hi-lo))*float32(height)
		points[i] = rl.NewVector2(px, py)
	}
	rl.DrawLineStrip(points, ColAccent)
	a.drawText(fmt.Sprintf("E %.2e", a.telemetry[len(a.telemetry)-1]), x, y+height+6, 12, ColText)
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}

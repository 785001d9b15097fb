package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	log "github.com/sirupsen/logrus"

	"github.com/san-kum/galton/internal/board"
	"github.com/san-kum/galton/internal/layout"
)

var (
	ColBg     = rl.NewColor(20, 25, 40, 255) // Dark blue
	ColWhite  = rl.NewColor(255, 255, 255, 255)
	ColBlue   = rl.NewColor(100, 150, 255, 255)
	ColRed    = rl.NewColor(255, 100, 100, 255)
	ColGreen  = rl.NewColor(100, 255, 100, 255)
	ColYellow = rl.NewColor(255, 255, 100, 255)
	ColCurve  = rl.NewColor(0, 200, 200, 255)
	ColDim    = rl.NewColor(90, 100, 130, 255)
)

const (
	fontSize      = 22
	smallFontSize = 18
)

type App struct {
	Engine  *board.Engine
	Buttons []layout.Button
	Rate    int
	Paused  bool
	Font    rl.Font
	logger  log.FieldLogger
}

// initWindow opens a window the size of the board and caps the frame rate
// at the tick rate, so one frame is one tick.
func initWindow(g board.Geometry, rate int) {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(g.Width), int32(g.Height), "Galton Board Simulation")
	rl.SetTargetFPS(int32(rate))
}

func NewApp(e *board.Engine, rate int) *App {
	if rate <= 0 {
		rate = board.DefaultRates().TickRate
	}
	return &App{
		Engine:  e,
		Buttons: layout.Buttons(),
		Rate:    rate,
		logger:  log.WithField("frontend", "gui"),
	}
}

// Run opens the window and blocks until it is closed.
func Run(e *board.Engine, rate int) {
	app := NewApp(e, rate)
	initWindow(e.Geometry(), app.Rate)
	defer rl.CloseWindow()
	// the default font only exists once the window does
	app.Font = rl.GetFontDefault()
	app.logger.WithField("fps", app.Rate).Info("window opened")
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

// Update applies this frame's input, then ticks the board once.
func (a *App) Update() {
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		pos := rl.GetMousePosition()
		if cmd, ok := layout.Hit(a.Buttons, float64(pos.X), float64(pos.Y)); ok {
			a.logger.WithField("command", cmd.String()).Debug("button pressed")
			a.Engine.Apply(cmd)
		}
	}

	switch {
	case rl.IsKeyPressed(rl.KeyS), rl.IsKeyPressed(rl.KeyEnter):
		a.Engine.Apply(board.CmdStart)
	case rl.IsKeyPressed(rl.KeyR):
		a.Engine.Apply(board.CmdReset)
	case rl.IsKeyPressed(rl.KeySpace):
		a.Paused = !a.Paused
	}

	if !a.Paused {
		a.Engine.Tick()
	}
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	s := a.Engine.Snapshot()
	a.drawPegs(s)
	a.drawBins(s)
	a.drawCurve(s)
	a.drawBalls(s)
	a.drawControls(s)

	if a.Paused {
		a.drawText("PAUSED", int(s.Geometry.Width)-110, 20, fontSize, ColYellow)
	}
	a.drawText("[S] START  [R] RESET  [SPACE] PAUSE  [ESC] QUIT", 20, int(s.Geometry.Height)-30, 14, ColDim)

	rl.EndDrawing()
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}

// drawCentered draws text horizontally centered on x.
func (a *App) drawCentered(text string, x, y float64, size int, color rl.Color) {
	w := rl.MeasureTextEx(a.Font, text, float32(size), 1).X
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x)-w/2, float32(y)), float32(size), 1, color)
}

func (a *App) drawControls(s board.Snapshot) {
	for _, b := range a.Buttons {
		col := ColBlue
		roundness := float32(0.2)
		if b.Command == board.CmdReset {
			col = ColRed
		}
		if !b.Primary {
			roundness = 0.15
		}
		rect := rl.NewRectangle(float32(b.Rect.X), float32(b.Rect.Y), float32(b.Rect.W), float32(b.Rect.H))
		rl.DrawRectangleRounded(rect, roundness, 6, col)
		a.drawCentered(b.Label, b.Rect.X+b.Rect.W/2, b.Rect.Y+(b.Rect.H-fontSize)/2, fontSize, ColWhite)
	}

	a.drawText(fmt.Sprintf("Rows: %d", s.Rows), int(layout.RowsLabel.X), int(layout.RowsLabel.Y), fontSize, ColWhite)
	a.drawText(fmt.Sprintf("Balls: %d", s.BallCount), int(layout.BallsLabel.X), int(layout.BallsLabel.Y), fontSize, ColWhite)
	a.drawText(fmt.Sprintf("Dropped: %d/%d", s.Dropped, s.BallCount), int(layout.DroppedLabel.X), int(layout.DroppedLabel.Y), fontSize, ColWhite)
}

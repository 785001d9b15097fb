package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/galton/internal/board"
	"github.com/san-kum/galton/internal/layout"
)

func (a *App) drawPegs(s board.Snapshot) {
	r := float32(s.Geometry.PegRadius)
	for _, p := range s.Pegs {
		rl.DrawCircleV(rl.NewVector2(float32(p.X), float32(p.Y)), r, ColBlue)
	}
}

func (a *App) drawBalls(s board.Snapshot) {
	r := float32(s.Geometry.BallRadius)
	for _, b := range s.Balls {
		rl.DrawCircleV(rl.NewVector2(float32(b.X), float32(b.Y)), r, ColWhite)
	}
}

// drawBins draws each bar with its count above it and the binomial and
// observed percentages below.
func (a *App) drawBins(s board.Snapshot) {
	g := s.Geometry
	shares := s.Shares()
	for i, h := range s.BarHeights(g.MaxBarHeight) {
		bar := layout.Bar(g, s.Rows, i, h)
		if h > 0 {
			rect := rl.NewRectangle(float32(bar.X), float32(bar.Y), float32(bar.W), float32(bar.H))
			rl.DrawRectangleRounded(rect, 0.1, 4, ColRed)
		}

		c := layout.CountLabel(g, s.Rows, i, h)
		a.drawCentered(fmt.Sprint(s.Bins[i]), c.X, c.Y, fontSize, ColWhite)

		t := layout.TheoryLabel(g, s.Rows, i)
		a.drawCentered(fmt.Sprintf("%.1f%%", s.Probabilities[i]*100), t.X, t.Y, smallFontSize, ColYellow)

		if s.Dropped > 0 {
			o := layout.ActualLabel(g, s.Rows, i)
			a.drawCentered(fmt.Sprintf("%.1f%%", shares[i]*100), o.X, o.Y, smallFontSize, ColGreen)
		}
	}
}

// drawCurve traces the binomial overlay once balls are dropping.
func (a *App) drawCurve(s board.Snapshot) {
	if s.Dropped == 0 {
		return
	}
	pts := layout.Curve(s.Geometry, s.Rows, s.Probabilities)
	for i := 1; i < len(pts); i++ {
		from := rl.NewVector2(float32(pts[i-1].X), float32(pts[i-1].Y))
		to := rl.NewVector2(float32(pts[i].X), float32(pts[i].Y))
		rl.DrawLineEx(from, to, 2, ColCurve)
	}
}

// Package layout places the histogram, the binomial overlay and the control
// buttons in board world coordinates. Both front-ends draw from it, so the
// terminal and the window agree on where things are.
package layout

import (
	"github.com/san-kum/galton/internal/board"
)

// Offsets measured up from the bottom edge of the board.
const (
	BarBaseline = 150
	CurveBase   = 170
	CurveScale  = 300
	BarGap      = 4
)

type Point struct{ X, Y float64 }

// Rect is an axis-aligned box. Contains is inclusive on every edge.
type Rect struct{ X, Y, W, H float64 }

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Button is a clickable control bound to a board command.
type Button struct {
	Label   string
	Rect    Rect
	Command board.Command
	// Primary buttons are drawn large
	Primary bool
}

// Buttons is the control column in the top-left corner.
func Buttons() []Button {
	return []Button{
		{Label: "START", Rect: Rect{20, 20, 120, 40}, Command: board.CmdStart, Primary: true},
		{Label: "RESET", Rect: Rect{20, 70, 120, 40}, Command: board.CmdReset, Primary: true},
		{Label: "+", Rect: Rect{20, 120, 50, 30}, Command: board.CmdRowsUp},
		{Label: "-", Rect: Rect{90, 120, 50, 30}, Command: board.CmdRowsDown},
		{Label: "+", Rect: Rect{20, 200, 50, 30}, Command: board.CmdBallsUp},
		{Label: "-", Rect: Rect{90, 200, 50, 30}, Command: board.CmdBallsDown},
	}
}

// Hit returns the command of the first button under (x, y).
func Hit(buttons []Button, x, y float64) (board.Command, bool) {
	for _, b := range buttons {
		if b.Rect.Contains(x, y) {
			return b.Command, true
		}
	}
	return 0, false
}

// Labels under the row and ball buttons, and the dropped counter.
var (
	RowsLabel    = Point{20, 160}
	BallsLabel   = Point{20, 240}
	DroppedLabel = Point{20, 280}
)

// Bar is the rectangle of bin i when its bar is height tall.
func Bar(g board.Geometry, rows, i int, height float64) Rect {
	x := g.LeftEdge(rows) + float64(i)*g.BinWidth
	return Rect{
		X: x,
		Y: g.Height - BarBaseline - height,
		W: g.BinWidth - BarGap,
		H: height,
	}
}

// Baseline is the floor line the bars stand on.
func Baseline(g board.Geometry, rows int) (Point, Point) {
	y := g.Height - BarBaseline
	left := g.LeftEdge(rows)
	return Point{left, y}, Point{left + float64(rows+1)*g.BinWidth, y}
}

// Curve places one point per bin above the bars, rising with its
// probability.
func Curve(g board.Geometry, rows int, probabilities []float64) []Point {
	pts := make([]Point, len(probabilities))
	for i, p := range probabilities {
		pts[i] = Point{
			X: g.BinCenter(rows, i),
			Y: g.Height - CurveBase - p*CurveScale,
		}
	}
	return pts
}

// CountLabel is where bin i's count sits, just above the top of its bar.
func CountLabel(g board.Geometry, rows, i int, height float64) Point {
	return Point{g.BinCenter(rows, i), g.Height - CurveBase - height}
}

// TheoryLabel and ActualLabel stagger odd and even bins onto two lines so
// neighbouring percentages do not overlap.
func TheoryLabel(g board.Geometry, rows, i int) Point {
	y := g.Height - 135
	if i%2 == 1 {
		y = g.Height - 120
	}
	return Point{g.BinCenter(rows, i), y}
}

func ActualLabel(g board.Geometry, rows, i int) Point {
	y := g.Height - 105
	if i%2 == 1 {
		y = g.Height - 90
	}
	return Point{g.BinCenter(rows, i), y}
}

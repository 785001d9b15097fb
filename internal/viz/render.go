package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/galton/internal/board"
	"github.com/san-kum/galton/internal/layout"
)

const (
	statsWidth  = 30
	chartHeight = 6
	// rows taken by header, bin table, chart and borders
	chromeRows = 2 + 5 + chartHeight + 3 + 2

	minBoardCols = 20
	minBoardRows = 6
)

type frame struct {
	width, height int
	theme         Theme
	paused        bool
	showHelp      bool
}

// layer is one color plane of the board drawing.
type layer struct {
	canvas *Canvas
	style  lipgloss.Style
}

func render(s board.Snapshot, f frame) string {
	th := f.theme
	title := HeaderStyle.Render(fmt.Sprintf("GALTON BOARD  %d rows  %d balls", s.Rows, s.BallCount))

	cols := max(f.width-statsWidth-6, minBoardCols)
	rows := max(f.height-chromeRows, minBoardRows)

	var left string
	if f.showHelp {
		left = helpText()
	} else {
		left = composite(drawBoard(s, th, fitScale(cols, rows, s.Geometry)))
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		GlassPanel.Render(left),
		GlassPanel.Width(statsWidth).Render(statsPanel(s, th, f.paused)),
	)

	var b strings.Builder
	b.WriteString(title + "\n")
	b.WriteString(top + "\n")
	b.WriteString(binTable(s, th) + "\n")
	b.WriteString(distributionChart(s, th, f.width) + "\n")
	b.WriteString(KeyHint.Render("s start  r reset  +/- rows  [/] balls  space pause  t theme  ? help  q quit"))
	return b.String()
}

// fitScale picks the dots-per-unit scale that fits the whole board into a
// cols by rows character area.
func fitScale(cols, rows int, g board.Geometry) float64 {
	if g.Width <= 0 || g.Height <= 0 {
		return 0
	}
	sx := float64(cols*2) / g.Width
	sy := float64(rows*4) / g.Height
	return math.Min(sx, sy)
}

func canvasFor(g board.Geometry, scale float64) *Canvas {
	w := int(math.Ceil(g.Width * scale / 2))
	h := int(math.Ceil(g.Height * scale / 4))
	return NewCanvas(w, h)
}

// drawBoard rasterizes the snapshot into color layers, lowest priority first.
func drawBoard(s board.Snapshot, th Theme, scale float64) []layer {
	g := s.Geometry
	pegs := canvasFor(g, scale)
	bars := canvasFor(g, scale)
	curve := canvasFor(g, scale)
	balls := canvasFor(g, scale)

	dot := func(v float64) int { return int(math.Round(v * scale)) }

	for _, p := range s.Pegs {
		pegs.Set(dot(p.X), dot(p.Y))
	}

	from, to := layout.Baseline(g, s.Rows)
	pegs.DrawLine(dot(from.X), dot(from.Y), dot(to.X), dot(to.Y))

	for i, h := range s.BarHeights(g.MaxBarHeight) {
		if h <= 0 {
			continue
		}
		r := layout.Bar(g, s.Rows, i, h)
		for y := dot(r.Y); y <= dot(r.Y+r.H); y++ {
			bars.DrawLine(dot(r.X), y, dot(r.X+r.W), y)
		}
	}

	if s.Dropped > 0 {
		pts := layout.Curve(g, s.Rows, s.Probabilities)
		for i := 1; i < len(pts); i++ {
			curve.DrawLine(dot(pts[i-1].X), dot(pts[i-1].Y), dot(pts[i].X), dot(pts[i].Y))
		}
	}

	r := int(g.BallRadius * scale)
	for _, b := range s.Balls {
		balls.Disc(dot(b.X), dot(b.Y), r)
	}

	return []layer{
		{pegs, lipgloss.NewStyle().Foreground(th.Peg)},
		{bars, lipgloss.NewStyle().Foreground(th.Bar)},
		{curve, lipgloss.NewStyle().Foreground(th.Accent)},
		{balls, lipgloss.NewStyle().Foreground(th.Ball)},
	}
}

// composite merges the layers cell by cell. A cell takes the color of the
// highest layer with any dot lit in it.
func composite(layers []layer) string {
	if len(layers) == 0 {
		return ""
	}
	w, h := layers[0].canvas.Width, layers[0].canvas.Height
	var b strings.Builder
	for row := 0; row < h; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < w; col++ {
			cell := rune(brailleBlank)
			top := -1
			for i, l := range layers {
				bits := l.canvas.Grid[row][col] - brailleBlank
				if bits != 0 {
					cell |= bits
					top = i
				}
			}
			if top < 0 {
				b.WriteRune(cell)
				continue
			}
			b.WriteString(layers[top].style.Render(string(cell)))
		}
	}
	return b.String()
}

func statusLine(s board.Snapshot, paused bool) string {
	switch {
	case paused:
		return StatusPaused.Render("PAUSED")
	case s.Done():
		return StatusRunning.Render("DONE")
	case s.Dropping || len(s.Balls) > 0:
		return StatusRunning.Render("DROPPING")
	default:
		return StatusIdle.Render("IDLE")
	}
}

func statsPanel(s board.Snapshot, th Theme, paused bool) string {
	metric := func(label string, value any) string {
		return MetricLabel.Render(fmt.Sprintf("%-10s", label)) + MetricValue.Render(fmt.Sprint(value))
	}
	progress := 0.0
	if s.BallCount > 0 {
		progress = float64(s.Dropped) / float64(s.BallCount)
	}

	lines := []string{
		statusLine(s, paused),
		"",
		metric("Dropped:", fmt.Sprintf("%d/%d", s.Dropped, s.BallCount)),
		ProgressBar(progress, statsWidth-4),
		metric("In flight:", len(s.Balls)),
		metric("Settled:", s.Settled()),
		"",
		metric("Rows:", fmt.Sprintf("%d (%d-%d)", s.Rows, board.MinRows, board.MaxRows)),
		metric("Balls:", fmt.Sprintf("%d (%d-%d)", s.BallCount, board.MinBalls, board.MaxBalls)),
		metric("Tick:", s.Tick),
		metric("Theme:", th.Name),
	}
	return strings.Join(lines, "\n")
}

// binTable lists each bin's count with its binomial and observed shares.
func binTable(s board.Snapshot, th Theme) string {
	label := MetricLabel.Width(8)
	count := lipgloss.NewStyle().Foreground(th.Text)
	theory := lipgloss.NewStyle().Foreground(th.Theory)
	actual := lipgloss.NewStyle().Foreground(th.Actual)

	var idx, cnt, thy, obs strings.Builder
	idx.WriteString(label.Render("bin"))
	cnt.WriteString(label.Render("count"))
	thy.WriteString(label.Render("theory"))
	obs.WriteString(label.Render("actual"))

	shares := s.Shares()
	for i, c := range s.Bins {
		idx.WriteString(Subtle.Render(fmt.Sprintf("%7d", i)))
		cnt.WriteString(count.Render(fmt.Sprintf("%7d", c)))
		p := 0.0
		if i < len(s.Probabilities) {
			p = s.Probabilities[i]
		}
		thy.WriteString(theory.Render(fmt.Sprintf("%6.1f%%", p*100)))
		if s.Dropped > 0 {
			obs.WriteString(actual.Render(fmt.Sprintf("%6.1f%%", shares[i]*100)))
		} else {
			obs.WriteString(Subtle.Render(fmt.Sprintf("%7s", "-")))
		}
	}
	return strings.Join([]string{idx.String(), cnt.String(), thy.String(), obs.String()}, "\n")
}

// distributionChart plots the binomial shares against the observed ones.
func distributionChart(s board.Snapshot, th Theme, width int) string {
	theory := percentages(s.Probabilities)
	observed := percentages(s.Shares())
	if len(theory) < 2 || len(observed) != len(theory) {
		return ""
	}
	w := min(max(width-12, len(theory)), len(theory)*6)
	return asciigraph.PlotMany([][]float64{theory, observed},
		asciigraph.Height(chartHeight),
		asciigraph.Width(w),
		asciigraph.Precision(1),
		asciigraph.SeriesColors(th.CurveColor, th.ObservedColor),
		asciigraph.SeriesLegends("binomial", "observed"),
		asciigraph.Caption("share per bin (%)"),
	)
}

func percentages(v []float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = x * 100
	}
	return out
}

func helpText() string {
	lines := []string{
		HeaderStyle.Render("KEYS"),
		"s, enter   start dropping",
		"r          reset the board",
		"+, =       add a row",
		"-, _       remove a row",
		"]          fifty more balls",
		"[          fifty fewer balls",
		"space, p   pause ticks",
		"t          next theme",
		"?          close help",
		"q          quit",
	}
	return strings.Join(lines, "\n")
}

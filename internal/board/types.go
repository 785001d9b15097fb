package board

import "math"

const (
	MinRows     = 5
	MaxRows     = 15
	DefaultRows = 10

	MinBalls     = 50
	MaxBalls     = 500
	BallStep     = 50
	DefaultBalls = 100
)

// Ball is a falling ball. It exists only until it reaches the collection line.
type Ball struct {
	X, Y      float64
	Direction int
	Speed     float64
	Falling   bool
}

// Peg is a static obstacle in the lattice.
type Peg struct {
	X, Y     float64
	Row, Col int
}

// Geometry is the fixed layout of the board in screen units.
type Geometry struct {
	Width        float64
	Height       float64
	PegSpacing   float64
	TopOffset    float64
	BinWidth     float64
	PegRadius    float64
	BallRadius   float64
	SpawnY       float64
	MaxBarHeight float64
}

func DefaultGeometry() Geometry {
	return Geometry{
		Width:        1200,
		Height:       800,
		PegSpacing:   40,
		TopOffset:    150,
		BinWidth:     40,
		PegRadius:    5,
		BallRadius:   8,
		SpawnY:       100,
		MaxBarHeight: 120,
	}
}

func (g Geometry) CenterX() float64         { return g.Width / 2 }
func (g Geometry) CollisionRadius() float64 { return g.PegRadius + g.BallRadius }

// LeftEdge is the x coordinate of the left side of bin 0.
func (g Geometry) LeftEdge(rows int) float64 {
	return g.CenterX() - float64(rows)*g.BinWidth/2
}

// BinIndex maps an x coordinate on the collection line to a bin in [0, rows].
func (g Geometry) BinIndex(rows int, x float64) int {
	idx := math.Floor((x - g.LeftEdge(rows)) / g.BinWidth)
	if math.IsNaN(idx) || idx < 0 {
		return 0
	}
	if idx > float64(rows) {
		return rows
	}
	return int(idx)
}

// BinCenter is the x coordinate of the middle of bin i.
func (g Geometry) BinCenter(rows, i int) float64 {
	return g.LeftEdge(rows) + float64(i)*g.BinWidth + g.BinWidth/2
}

// Rates are the per-tick motion and release parameters.
type Rates struct {
	SpawnProbability float64
	FallSpeed        float64
	HorizontalStep   float64
	TickRate         int
}

func DefaultRates() Rates {
	return Rates{
		SpawnProbability: 0.1,
		FallSpeed:        3,
		HorizontalStep:   2,
		TickRate:         60,
	}
}

type Config struct {
	Rows      int
	BallCount int
	Geometry  Geometry
	Rates     Rates
}

func DefaultConfig() Config {
	return Config{
		Rows:      DefaultRows,
		BallCount: DefaultBalls,
		Geometry:  DefaultGeometry(),
		Rates:     DefaultRates(),
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package board

// Snapshot is a read-only copy of the board taken between ticks. Front-ends
// render from it and never touch the engine's own slices.
type Snapshot struct {
	Rows          int
	BallCount     int
	Dropped       int
	Dropping      bool
	Tick          uint64
	BottomY       float64
	Geometry      Geometry
	Pegs          []Peg
	Balls         []Ball
	Bins          []int
	Probabilities []float64
}

func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Rows:          e.rows,
		BallCount:     e.ballCount,
		Dropped:       e.dropped,
		Dropping:      e.dropping,
		Tick:          e.tick,
		BottomY:       e.bottomY,
		Geometry:      e.cfg.Geometry,
		Pegs:          make([]Peg, len(e.pegs)),
		Balls:         make([]Ball, len(e.balls)),
		Bins:          make([]int, len(e.bins)),
		Probabilities: Distribution(e.rows),
	}
	copy(s.Pegs, e.pegs)
	copy(s.Balls, e.balls)
	copy(s.Bins, e.bins)
	return s
}

// Settled is the number of balls already folded into bins.
func (s Snapshot) Settled() int {
	n := 0
	for _, c := range s.Bins {
		n += c
	}
	return n
}

func (s Snapshot) Done() bool {
	return s.Dropped == s.BallCount && len(s.Balls) == 0
}

// MaxBin is the largest bin count, or 1 when every bin is empty.
func (s Snapshot) MaxBin() int {
	m := 0
	for _, c := range s.Bins {
		if c > m {
			m = c
		}
	}
	if m == 0 {
		return 1
	}
	return m
}

// BarHeights scales each bin against the fullest one so the tallest bar is
// height high.
func (s Snapshot) BarHeights(height float64) []float64 {
	top := float64(s.MaxBin())
	h := make([]float64, len(s.Bins))
	for i, c := range s.Bins {
		h[i] = float64(c) / top * height
	}
	return h
}

// Shares is each bin's fraction of the balls dropped so far. All zero before
// the first drop.
func (s Snapshot) Shares() []float64 {
	out := make([]float64, len(s.Bins))
	if s.Dropped == 0 {
		return out
	}
	for i, c := range s.Bins {
		out[i] = float64(c) / float64(s.Dropped)
	}
	return out
}

package metrics

import (
	"github.com/san-kum/galton/internal/board"
)

// PeakInFlight is the largest number of balls falling at once.
type PeakInFlight struct {
	name string
	peak int
}

func NewPeakInFlight() *PeakInFlight {
	return &PeakInFlight{name: "peak_in_flight"}
}

func (p *PeakInFlight) Name() string { return p.name }

func (p *PeakInFlight) OnTick(s board.Snapshot) {
	if n := len(s.Balls); n > p.peak {
		p.peak = n
	}
}

func (p *PeakInFlight) Value() float64 { return float64(p.peak) }

func (p *PeakInFlight) Reset() { p.peak = 0 }

// MeanDescent is the average number of ticks a ball spends between release
// and settling, estimated as ball-ticks in flight over balls settled.
type MeanDescent struct {
	name       string
	ballTicks  int
	settled    int
	lastTick   uint64
	lastSettle int
}

func NewMeanDescent() *MeanDescent {
	return &MeanDescent{name: "mean_descent_ticks"}
}

func (m *MeanDescent) Name() string { return m.name }

func (m *MeanDescent) OnTick(s board.Snapshot) {
	settled := s.Settled()
	// a reset between ticks zeroes the bins
	if s.Tick <= m.lastTick || settled < m.lastSettle {
		m.Reset()
	}
	m.lastTick = s.Tick
	m.lastSettle = settled
	m.ballTicks += len(s.Balls)
	m.settled = settled
}

func (m *MeanDescent) Value() float64 {
	if m.settled == 0 {
		return 0
	}
	return float64(m.ballTicks) / float64(m.settled)
}

func (m *MeanDescent) Reset() {
	m.ballTicks = 0
	m.settled = 0
	m.lastTick = 0
	m.lastSettle = 0
}

// Package metrics observes a board while it runs and reduces what it sees
// to single numbers.
package metrics

import (
	"github.com/san-kum/galton/internal/board"
)

// Metric watches snapshots tick by tick. It satisfies sim.Observer.
type Metric interface {
	Name() string
	OnTick(s board.Snapshot)
	Value() float64
	Reset()
}

// Standard returns the metrics the headless runner reports.
func Standard() []Metric {
	return []Metric{
		NewPeakInFlight(),
		NewMeanDescent(),
		NewSkew(),
		NewSpread(),
	}
}

// Values collects every metric's current value by name.
func Values(ms []Metric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}

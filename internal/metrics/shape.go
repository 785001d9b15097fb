package metrics

import (
	"github.com/san-kum/galton/internal/board"
)

// moments returns the mean and variance of the settled bin indices.
func moments(bins []int) (mean, variance float64, n int) {
	for _, c := range bins {
		n += c
	}
	if n == 0 {
		return 0, 0, 0
	}
	for i, c := range bins {
		mean += float64(i * c)
	}
	mean /= float64(n)
	for i, c := range bins {
		d := float64(i) - mean
		variance += d * d * float64(c)
	}
	variance /= float64(n)
	return mean, variance, n
}

// Skew is how far the settled mean bin sits from the center bin. Negative
// means the pile leans left.
type Skew struct {
	name  string
	value float64
}

func NewSkew() *Skew { return &Skew{name: "skew_bins"} }

func (k *Skew) Name() string { return k.name }

func (k *Skew) OnTick(s board.Snapshot) {
	mean, _, n := moments(s.Bins)
	if n == 0 {
		k.value = 0
		return
	}
	k.value = mean - float64(s.Rows)/2
}

func (k *Skew) Value() float64 { return k.value }
func (k *Skew) Reset()         { k.value = 0 }

// Spread is the settled variance over the binomial variance rows/4. A fair
// board tends to 1; the proximity model here settles narrower.
type Spread struct {
	name  string
	value float64
}

func NewSpread() *Spread { return &Spread{name: "spread_ratio"} }

func (p *Spread) Name() string { return p.name }

func (p *Spread) OnTick(s board.Snapshot) {
	_, variance, n := moments(s.Bins)
	if n == 0 || s.Rows == 0 {
		p.value = 0
		return
	}
	p.value = variance / (float64(s.Rows) / 4)
}

func (p *Spread) Value() float64 { return p.value }
func (p *Spread) Reset()         { p.value = 0 }

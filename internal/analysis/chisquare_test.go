package analysis

import (
	"math"
	"testing"
)

func TestPValue(t *testing.T) {
	tests := []struct {
		stat     float64
		dof      int
		expected float64
	}{
		{5.991464547, 2, 0.05},
		{3.841458821, 1, 0.05},
		{18.307038, 10, 0.05},
		{4, 2, math.Exp(-2)},
		{0.5, 4, math.Exp(-0.25) * 1.25},
		{1, 1, 0.3173105078629},
		{0, 3, 1},
	}

	for _, tt := range tests {
		if got := PValue(tt.stat, tt.dof); math.Abs(got-tt.expected) > 1e-6 {
			t.Errorf("PValue(%v, %d) = %v, want %v", tt.stat, tt.dof, got, tt.expected)
		}
	}

	if got := PValue(3, 0); got != 1 {
		t.Errorf("PValue with no degrees of freedom = %v, want 1", got)
	}
}

func TestChiSquare_PerfectFit(t *testing.T) {
	fit := ChiSquare([]int{25, 50, 25}, []float64{0.25, 0.5, 0.25})
	if fit.Statistic != 0 {
		t.Errorf("expected zero statistic, got %v", fit.Statistic)
	}
	if fit.DegreesOfFreedom != 2 {
		t.Errorf("expected 2 degrees of freedom, got %d", fit.DegreesOfFreedom)
	}
	if fit.PValue != 1 {
		t.Errorf("expected p-value 1, got %v", fit.PValue)
	}
}

func TestChiSquare_KnownStatistic(t *testing.T) {
	fit := ChiSquare([]int{30, 40, 30}, []float64{0.25, 0.5, 0.25})
	if math.Abs(fit.Statistic-4) > 1e-12 {
		t.Errorf("expected statistic 4, got %v", fit.Statistic)
	}
	if math.Abs(fit.PValue-math.Exp(-2)) > 1e-9 {
		t.Errorf("expected p-value %v, got %v", math.Exp(-2), fit.PValue)
	}
	if fit.N != 100 {
		t.Errorf("expected N=100, got %d", fit.N)
	}
}

func TestChiSquare_PoolsSparseTails(t *testing.T) {
	// Binomial(10, 0.5) scaled to 100 balls.
	probs := make([]float64, 11)
	c := 1.0
	for k := 0; k <= 10; k++ {
		probs[k] = c / 1024
		c = c * float64(10-k) / float64(k+1)
	}
	observed := []int{0, 1, 4, 12, 21, 24, 20, 12, 4, 1, 1}

	fit := ChiSquare(observed, probs)
	if fit.Classes != 7 {
		t.Errorf("expected 7 pooled classes, got %d", fit.Classes)
	}
	if fit.DegreesOfFreedom != 6 {
		t.Errorf("expected 6 degrees of freedom, got %d", fit.DegreesOfFreedom)
	}
	if fit.PValue < 0.5 {
		t.Errorf("near-binomial counts should fit well, p=%v", fit.PValue)
	}
}

func TestChiSquare_Degenerate(t *testing.T) {
	tests := []struct {
		name  string
		obs   []int
		probs []float64
	}{
		{"empty", []int{0, 0, 0}, []float64{0.25, 0.5, 0.25}},
		{"length mismatch", []int{1, 2}, []float64{1}},
		{"single class", []int{1, 1, 1}, []float64{0.25, 0.5, 0.25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fit := ChiSquare(tt.obs, tt.probs)
			if fit.DegreesOfFreedom != 0 || fit.PValue != 1 {
				t.Errorf("expected trivial fit, got %+v", fit)
			}
		})
	}
}

func TestTotalVariation(t *testing.T) {
	if d := TotalVariation([]int{25, 50, 25}, []float64{0.25, 0.5, 0.25}); d != 0 {
		t.Errorf("identical distributions: got %v", d)
	}
	if d := TotalVariation([]int{100, 0}, []float64{0, 1}); math.Abs(d-1) > 1e-12 {
		t.Errorf("disjoint distributions: got %v, want 1", d)
	}
	if d := TotalVariation(nil, nil); d != 0 {
		t.Errorf("empty: got %v", d)
	}
}

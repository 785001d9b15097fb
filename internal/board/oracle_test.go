package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBinomial(t *testing.T) {
	tests := []struct {
		n, k int
		want float64
	}{
		{0, 0, 1},
		{5, 0, 1},
		{5, 2, 10},
		{10, 5, 252},
		{15, 7, 6435},
		{15, 15, 1},
		{4, 5, 0},
		{4, -1, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Binomial(tt.n, tt.k), "C(%d,%d)", tt.n, tt.k)
	}
}

func TestProbability_SumsToOne(t *testing.T) {
	for rows := MinRows; rows <= MaxRows; rows++ {
		sum := 0.0
		for i := 0; i <= rows; i++ {
			sum += Probability(rows, i)
		}
		assert.InDelta(t, 1.0, sum, 1e-12, "rows=%d", rows)
	}
}

func TestProbability_Symmetric(t *testing.T) {
	for rows := MinRows; rows <= MaxRows; rows++ {
		for i := 0; i <= rows; i++ {
			assert.Equal(t, Probability(rows, i), Probability(rows, rows-i), "rows=%d bin=%d", rows, i)
		}
	}
}

func TestProbability_KnownValues(t *testing.T) {
	assert.InDelta(t, 252.0/1024.0, Probability(10, 5), 1e-15)
	assert.InDelta(t, 1.0/1024.0, Probability(10, 0), 1e-15)
	assert.Zero(t, Probability(10, 11))
	assert.Zero(t, Probability(10, -1))
}

func TestExpected(t *testing.T) {
	e := Expected(10, 1024)
	assert.Len(t, e, 11)
	assert.InDelta(t, 252.0, e[5], 1e-9)
	assert.InDelta(t, 1.0, e[10], 1e-9)
	assert.Nil(t, Distribution(-1))
}

package board

import "math"

// Binomial returns C(n, k) as a float64. It is 0 outside 0 <= k <= n.
func Binomial(n, k int) float64 {
	if k < 0 || n < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	c := 1.0
	for i := 1; i <= k; i++ {
		c = c * float64(n-k+i) / float64(i)
	}
	return math.Round(c)
}

// Probability is the chance that a ball passing rows fair pegs lands in bin:
// exactly bin rightward deflections out of rows.
func Probability(rows, bin int) float64 {
	if rows < 0 || bin < 0 || bin > rows {
		return 0
	}
	return Binomial(rows, bin) * math.Pow(0.5, float64(rows))
}

// Distribution returns Probability(rows, i) for every bin.
func Distribution(rows int) []float64 {
	if rows < 0 {
		return nil
	}
	p := make([]float64, rows+1)
	for i := range p {
		p[i] = Probability(rows, i)
	}
	return p
}

// Expected scales the distribution to n balls.
func Expected(rows, n int) []float64 {
	p := Distribution(rows)
	for i := range p {
		p[i] *= float64(n)
	}
	return p
}

package analysis

import "math"

// MinExpected is the smallest expected count a class may carry before it is
// pooled with its neighbour.
const MinExpected = 5.0

// Fit is the result of a chi-square goodness of fit test.
type Fit struct {
	Statistic        float64
	DegreesOfFreedom int
	PValue           float64
	Classes          int
	N                int
}

// ChiSquare tests observed counts against the given bin probabilities.
// Adjacent bins are merged left to right until each class expects at least
// MinExpected balls; a short tail is folded into the class before it.
func ChiSquare(observed []int, probabilities []float64) Fit {
	n := 0
	for _, c := range observed {
		n += c
	}
	fit := Fit{PValue: 1, N: n}
	if n == 0 || len(observed) != len(probabilities) {
		return fit
	}

	var obs, exp []float64
	accO, accE := 0.0, 0.0
	for i := range observed {
		accO += float64(observed[i])
		accE += probabilities[i] * float64(n)
		if accE >= MinExpected {
			obs = append(obs, accO)
			exp = append(exp, accE)
			accO, accE = 0, 0
		}
	}
	if accE > 0 || accO > 0 {
		if len(exp) == 0 {
			obs = append(obs, accO)
			exp = append(exp, accE)
		} else {
			obs[len(obs)-1] += accO
			exp[len(exp)-1] += accE
		}
	}

	fit.Classes = len(exp)
	if fit.Classes < 2 {
		return fit
	}

	for i := range exp {
		if exp[i] == 0 {
			continue
		}
		d := obs[i] - exp[i]
		fit.Statistic += d * d / exp[i]
	}
	fit.DegreesOfFreedom = fit.Classes - 1
	fit.PValue = PValue(fit.Statistic, fit.DegreesOfFreedom)
	return fit
}

// PValue is P(X >= stat) for X chi-square distributed with dof degrees of
// freedom.
func PValue(stat float64, dof int) float64 {
	if dof <= 0 {
		return 1
	}
	return upperGamma(float64(dof)/2, stat/2)
}

// TotalVariation is half the L1 distance between two distributions of equal
// length. Counts are normalized first.
func TotalVariation(observed []int, probabilities []float64) float64 {
	n := 0
	for _, c := range observed {
		n += c
	}
	if n == 0 || len(observed) != len(probabilities) {
		return 0
	}
	d := 0.0
	for i, c := range observed {
		d += math.Abs(float64(c)/float64(n) - probabilities[i])
	}
	return d / 2
}

// upperGamma is the regularized upper incomplete gamma function Q(a, x).
func upperGamma(a, x float64) float64 {
	if x <= 0 {
		return 1
	}
	if x < a+1 {
		return 1 - lowerSeries(a, x)
	}
	return upperFraction(a, x)
}

const (
	gammaIter = 500
	gammaEps  = 1e-14
	gammaTiny = 1e-300
)

// lowerSeries evaluates P(a, x) by its power series; converges for x < a+1.
func lowerSeries(a, x float64) float64 {
	lg, _ := math.Lgamma(a)
	term := 1 / a
	sum := term
	for n := 1; n < gammaIter; n++ {
		term *= x / (a + float64(n))
		sum += term
		if math.Abs(term) < math.Abs(sum)*gammaEps {
			break
		}
	}
	return sum * math.Exp(-x+a*math.Log(x)-lg)
}

// upperFraction evaluates Q(a, x) by its continued fraction (modified Lentz).
func upperFraction(a, x float64) float64 {
	lg, _ := math.Lgamma(a)
	b := x + 1 - a
	c := 1 / gammaTiny
	d := 1 / b
	h := d
	for i := 1; i < gammaIter; i++ {
		an := -float64(i) * (float64(i) - a)
		b += 2
		d = an*d + b
		if math.Abs(d) < gammaTiny {
			d = gammaTiny
		}
		c = b + an/c
		if math.Abs(c) < gammaTiny {
			c = gammaTiny
		}
		d = 1 / d
		del := d * c
		h *= del
		if math.Abs(del-1) < gammaEps {
			break
		}
	}
	return math.Exp(-x+a*math.Log(x)-lg) * h
}

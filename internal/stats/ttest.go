package stats

import (
	"errors"
	"math"
)

// TTestResult holds a two-sample pooled-variance t-test outcome.
type TTestResult struct {
	T           float64
	P           float64 // two-sided
	DF          float64
	Significant bool // p < 0.05
}

// ErrSampleSize is returned when either sample has fewer than two values.
var ErrSampleSize = errors.New("t-test requires at least two values per sample")

// TTest runs a two-sample Student's t-test assuming equal variances and
// returns the t statistic with its two-sided p-value.
func TTest(a, b []float64) (TTestResult, error) {
	n1, n2 := float64(len(a)), float64(len(b))
	if len(a) < 2 || len(b) < 2 {
		return TTestResult{}, ErrSampleSize
	}

	m1, v1 := meanVar(a)
	m2, v2 := meanVar(b)

	df := n1 + n2 - 2
	pooled := ((n1-1)*v1 + (n2-1)*v2) / df
	se := math.Sqrt(pooled * (1/n1 + 1/n2))
	if se == 0 {
		return TTestResult{}, errors.New("t-test undefined: zero pooled variance")
	}

	t := (m1 - m2) / se
	p := studentTwoSided(t, df)
	return TTestResult{T: t, P: p, DF: df, Significant: p < 0.05}, nil
}

// meanVar returns the sample mean and unbiased variance.
func meanVar(xs []float64) (mean, variance float64) {
	n := float64(len(xs))
	for _, x := range xs {
		mean += x
	}
	mean /= n
	for _, x := range xs {
		d := x - mean
		variance += d * d
	}
	if len(xs) > 1 {
		variance /= n - 1
	}
	return mean, variance
}

// studentTwoSided is the two-sided tail probability of Student's t
// distribution with df degrees of freedom.
func studentTwoSided(t, df float64) float64 {
	x := df / (df + t*t)
	return regIncBeta(df/2, 0.5, x)
}

// regIncBeta is the regularized incomplete beta function I_x(a, b),
// evaluated with the Lentz continued fraction.
func regIncBeta(a, b, x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}

	lbeta, _ := math.Lgamma(a + b)
	la, _ := math.Lgamma(a)
	lb, _ := math.Lgamma(b)
	front := math.Exp(lbeta - la - lb + a*math.Log(x) + b*math.Log(1-x))

	// The continued fraction converges fast for x < (a+1)/(a+b+2); use the
	// symmetry I_x(a,b) = 1 - I_{1-x}(b,a) otherwise.
	if x > (a+1)/(a+b+2) {
		return 1 - regIncBeta(b, a, 1-x)
	}

	const (
		maxIter = 200
		eps     = 1e-14
		tiny    = 1e-30
	)
	c := 1.0
	d := 1 - (a+b)*x/(a+1)
	if math.Abs(d) < tiny {
		d = tiny
	}
	d = 1 / d
	h := d

	for m := 1; m <= maxIter; m++ {
		fm := float64(m)
		// even step
		num := fm * (b - fm) * x / ((a + 2*fm - 1) * (a + 2*fm))
		d = 1 + num*d
		if math.Abs(d) < tiny {
			d = tiny
		}
		c = 1 + num/c
		if math.Abs(c) < tiny {
			c = tiny
		}
		d = 1 / d
		h *= d * c
		// odd step
		num = -(a + fm) * (a + b + fm) * x / ((a + 2*fm) * (a + 2*fm + 1))
		d = 1 + num*d
		if math.Abs(d) < tiny {
			d = tiny
		}
		c = 1 + num/c
		if math.Abs(c) < tiny {
			c = tiny
		}
		d = 1 / d
		delta := d * c
		h *= delta
		if math.Abs(delta-1) < eps {
			break
		}
	}
	return front * h / a
}

package stats

import (
	"errors"
	"math"
)

// Sentinel errors for the z-test.
var (
	// ErrNoObservations indicates an empty sample (total of zero).
	ErrNoObservations = errors.New("stats: both samples must contain observations")

	// ErrZeroVariance indicates the pooled standard error is zero, so no
	// z-score can be formed (both proportions are 0 or both are 1).
	ErrZeroVariance = errors.New("stats: standard error is zero, cannot perform z-test")
)

// significanceLevel is the two-sided alpha used for the verdict.
const significanceLevel = 0.05

// ZTestResult is the outcome of a two-proportion z-test.
type ZTestResult struct {
	Z           float64 // z-score of the difference in proportions
	P           float64 // two-sided p-value
	Significant bool    // P < 0.05
}

// TwoProportionZTest compares count1/total1 against count2/total2 with a
// pooled two-proportion z-test and a two-sided p-value.
func TwoProportionZTest(count1, total1, count2, total2 int) (ZTestResult, error) {
	if total1 <= 0 || total2 <= 0 {
		return ZTestResult{}, ErrNoObservations
	}

	t1, t2 := float64(total1), float64(total2)
	p1 := float64(count1) / t1
	p2 := float64(count2) / t2
	pooled := (float64(count1) + float64(count2)) / (t1 + t2)

	se := math.Sqrt(pooled * (1 - pooled) * (1/t1 + 1/t2))
	if se == 0 {
		return ZTestResult{}, ErrZeroVariance
	}

	z := (p1 - p2) / se
	p := 2 * (1 - stdNormalCDF(math.Abs(z)))
	if p < 0 {
		p = 0
	}

	return ZTestResult{Z: z, P: p, Significant: p < significanceLevel}, nil
}

// stdNormalCDF is Φ(x) for the standard normal distribution.
func stdNormalCDF(x float64) float64 {
	return 0.5 * math.Erfc(-x/math.Sqrt2)
}

package seasonality

import (
	"math"
	"time"
)

// Cycle lengths for the built-in seasonality names.
const (
	yearlyPeriod = time.Duration(365.25 * 24 * float64(time.Hour))
	weeklyPeriod = 7 * 24 * time.Hour
	dailyPeriod  = 24 * time.Hour
)

// DefaultPeriod returns the cycle length for a built-in seasonality name.
// The second return is false for custom names, whose cycle length must be
// supplied by the caller.
func DefaultPeriod(name string) (time.Duration, bool) {
	switch name {
	case Yearly:
		return yearlyPeriod, true
	case Weekly:
		return weeklyPeriod, true
	case Daily:
		return dailyPeriod, true
	}
	return 0, false
}

// FourierTerms expands timestamps into the harmonic features a
// fourier-kind period contributes to the model: one row per date with
// 2*resolution columns ordered sin_1, cos_1, ..., sin_k, cos_k. The row
// width matches the dimension reported by Config.ModelDims for the period.
func FourierTerms(dates []time.Time, period time.Duration, resolution int) [][]float64 {
	terms := make([][]float64, len(dates))
	for i, d := range dates {
		row := make([]float64, 2*resolution)
		t := float64(d.UnixNano()) / float64(period.Nanoseconds())
		for k := 1; k <= resolution; k++ {
			x := 2 * math.Pi * float64(k) * t
			row[2*(k-1)] = math.Sin(x)
			row[2*(k-1)+1] = math.Cos(x)
		}
		terms[i] = row
	}
	return terms
}

// Package metrics provides forecast error metrics and epoch metric reporting.
package metrics

import "math"

// stpeEpsilon guards the STPE denominator when both series are all zero.
const stpeEpsilon = 1e-8

// SymmetricTotalPercentageError computes STPE, a scale-invariant
// percentage error: 100 * sum|est-val| / (eps + sum(|est| + |val|)).
// The result is 0 for identical series and bounded near 100 when the
// series disagree completely. Inputs must have equal length.
func SymmetricTotalPercentageError(values, estimates []float64) float64 {
	sumAbsDiff := 0.0
	sumAbs := 0.0
	for i := range values {
		sumAbsDiff += math.Abs(estimates[i] - values[i])
		sumAbs += math.Abs(estimates[i]) + math.Abs(values[i])
	}
	return 100 * sumAbsDiff / (stpeEpsilon + sumAbs)
}

// RMSE computes the root mean squared error between actual and predicted.
func RMSE(actual, predicted []float64) float64 {
	if len(actual) == 0 {
		return 0
	}
	sum := 0.0
	for i := range actual {
		diff := predicted[i] - actual[i]
		sum += diff * diff
	}
	return math.Sqrt(sum / float64(len(actual)))
}

// MAE computes the mean absolute error between actual and predicted.
func MAE(actual, predicted []float64) float64 {
	if len(actual) == 0 {
		return 0
	}
	sum := 0.0
	for i := range actual {
		sum += math.Abs(predicted[i] - actual[i])
	}
	return sum / float64(len(actual))
}

// MAPE computes the mean absolute percentage error between actual and
// predicted, skipping zero actuals.
func MAPE(actual, predicted []float64) float64 {
	sum := 0.0
	count := 0
	for i := range actual {
		if actual[i] == 0 {
			continue
		}
		sum += math.Abs((predicted[i] - actual[i]) / actual[i])
		count++
	}
	if count == 0 {
		return 0
	}
	return 100 * sum / float64(count)
}

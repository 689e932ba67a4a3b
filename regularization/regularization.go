// Package regularization provides lambda scheduling and weight penalty functions.
package regularization

import "math"

// baseRate converts a sparsity target into regularization strength.
const baseRate = 0.02

// Lambda computes regularization strength for a sparsity target in (0, 1).
// Smaller targets equate to stronger regularization. The second return is
// false when the target disables regularization (absent, zero, or >= 1).
func Lambda(sparsity float64) (float64, bool) {
	if sparsity <= 0 || sparsity >= 1 {
		return 0, false
	}
	return baseRate * (1/sparsity - 1), true
}

// Schedule computes per-epoch regularization strength, optionally ramping
// up linearly over the first DelayEpochs epochs.
type Schedule struct {
	// Sparsity is the target fraction of active weights in (0, 1).
	// Values outside that range disable regularization.
	Sparsity float64
	// DelayEpochs is how many epochs to wait before applying full
	// strength; zero applies full strength immediately.
	DelayEpochs int
}

// At returns the regularization strength for the given epoch. During the
// warm-up window the strength ramps from 0 at epoch 0 to full strength at
// epoch DelayEpochs. The second return is false when regularization is
// disabled entirely.
func (s Schedule) At(epoch int) (float64, bool) {
	lam, ok := Lambda(s.Sparsity)
	if !ok {
		return 0, false
	}
	if s.DelayEpochs > 0 && epoch < s.DelayEpochs {
		lam = lam * float64(epoch) / float64(s.DelayEpochs)
	}
	return lam, true
}

// PenaltyAR computes the sparsity-inducing penalty for autoregressive
// weights, following the AR-Net formulation: a cube-root soft threshold
// passed through a sigmoid, averaged over all weights. Small weights are
// cheap and the penalty saturates below 1 for large magnitudes, so the
// result is always in [0, 1).
func PenaltyAR(weights []float64) float64 {
	if len(weights) == 0 {
		return 0
	}
	sum := 0.0
	for _, w := range weights {
		abs := math.Abs(w)
		sum += 2.0/(1.0+math.Exp(-3.0*math.Cbrt(1e-12+abs))) - 1.0
	}
	return sum / float64(len(weights))
}

// PenaltyTrend computes the total magnitude of trend weights outside a
// dead zone: |w| - threshold clamped at zero, summed over all weights.
// A threshold <= 0 penalizes all magnitude.
func PenaltyTrend(weights []float64, threshold float64) float64 {
	sum := 0.0
	for _, w := range weights {
		abs := math.Abs(w)
		if threshold > 0 {
			abs = math.Max(abs-threshold, 0)
		}
		sum += abs
	}
	return sum
}

// PenaltySeason computes the mean absolute magnitude of seasonality weights.
func PenaltySeason(weights []float64) float64 {
	if len(weights) == 0 {
		return 0
	}
	sum := 0.0
	for _, w := range weights {
		sum += math.Abs(w)
	}
	return sum / float64(len(weights))
}

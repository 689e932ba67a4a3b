package regularization

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLambda(t *testing.T) {
	lam, ok := Lambda(0.5)
	require.True(t, ok)
	assert.InDelta(t, 0.02, lam, 1e-12)

	lam, ok = Lambda(0.1)
	require.True(t, ok)
	assert.InDelta(t, 0.18, lam, 1e-12)

	// Stronger regularization for smaller targets.
	weak, _ := Lambda(0.9)
	strong, _ := Lambda(0.1)
	assert.Greater(t, strong, weak)
}

func TestLambdaDisabled(t *testing.T) {
	for _, sparsity := range []float64{1.0, 1.5, 0.0, -0.3} {
		lam, ok := Lambda(sparsity)
		assert.False(t, ok, "sparsity=%v", sparsity)
		assert.Equal(t, 0.0, lam)
	}
}

func TestScheduleRamp(t *testing.T) {
	sched := Schedule{Sparsity: 0.5, DelayEpochs: 10}

	lam, ok := sched.At(0)
	require.True(t, ok)
	assert.Equal(t, 0.0, lam)

	half, ok := sched.At(5)
	require.True(t, ok)
	full, _ := Lambda(0.5)
	assert.InDelta(t, full/2, half, 1e-12)

	// At the delay boundary the ramp is over.
	lam, ok = sched.At(10)
	require.True(t, ok)
	assert.InDelta(t, full, lam, 1e-12)

	lam, _ = sched.At(100)
	assert.InDelta(t, full, lam, 1e-12)
}

func TestScheduleNoDelay(t *testing.T) {
	sched := Schedule{Sparsity: 0.5}

	lam, ok := sched.At(0)
	require.True(t, ok)
	full, _ := Lambda(0.5)
	assert.InDelta(t, full, lam, 1e-12)
}

func TestScheduleDisabled(t *testing.T) {
	sched := Schedule{Sparsity: 1.0, DelayEpochs: 10}
	for _, epoch := range []int{0, 5, 10, 50} {
		_, ok := sched.At(epoch)
		assert.False(t, ok)
	}
}

func TestPenaltyARRange(t *testing.T) {
	zeros := make([]float64, 100)
	assert.InDelta(t, 0.0, PenaltyAR(zeros), 1e-3)

	large := []float64{1e6, -1e6, 1e9, -1e9}
	p := PenaltyAR(large)
	assert.Greater(t, p, 0.9)
	assert.Less(t, p, 1.0)

	mixed := []float64{0.01, -0.5, 2.0, 0}
	p = PenaltyAR(mixed)
	assert.GreaterOrEqual(t, p, 0.0)
	assert.Less(t, p, 1.0)
}

func TestPenaltyARSignInvariant(t *testing.T) {
	w := []float64{0.1, 0.5, 1.2}
	neg := []float64{-0.1, -0.5, -1.2}
	assert.InDelta(t, PenaltyAR(w), PenaltyAR(neg), 1e-12)
}

func TestPenaltyAREmpty(t *testing.T) {
	assert.Equal(t, 0.0, PenaltyAR(nil))
}

func TestPenaltyTrendDeadZone(t *testing.T) {
	// All weights inside the dead zone incur no penalty.
	w := []float64{0.05, -0.08, 0.1}
	assert.Equal(t, 0.0, PenaltyTrend(w, 0.1))

	// Only the magnitude beyond the threshold is counted.
	w = []float64{0.5, -0.3}
	assert.InDelta(t, 0.4+0.2, PenaltyTrend(w, 0.1), 1e-12)
}

func TestPenaltyTrendNoThreshold(t *testing.T) {
	w := []float64{0.5, -0.3, 0.2}
	assert.InDelta(t, 1.0, PenaltyTrend(w, 0), 1e-12)
}

func TestPenaltyTrendMonotonic(t *testing.T) {
	small := []float64{0.2, -0.2}
	big := []float64{0.4, -0.4}
	assert.LessOrEqual(t, PenaltyTrend(small, 0.1), PenaltyTrend(big, 0.1))
}

func TestPenaltySeason(t *testing.T) {
	w := []float64{0.5, -0.3, 0.2, -0.4}
	assert.InDelta(t, 0.35, PenaltySeason(w), 1e-12)

	assert.Equal(t, 0.0, PenaltySeason(nil))
	assert.Equal(t, 0.0, PenaltySeason([]float64{0, 0, 0}))
}

func TestPenaltyARMatchesFormula(t *testing.T) {
	w := 0.7
	want := 2.0/(1.0+math.Exp(-3.0*math.Pow(1e-12+w, 1.0/3.0))) - 1.0
	assert.InDelta(t, want, PenaltyAR([]float64{w}), 1e-12)
}

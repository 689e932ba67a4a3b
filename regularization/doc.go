// Package regularization provides lambda scheduling and weight penalty functions.
//
// During gradient-based training, each regularized model component
// accumulates loss as lambda times a component-specific penalty over its
// weights. The lambda comes from a sparsity target, optionally ramped up
// over the first epochs so early training is unconstrained.
//
// # Scheduling
//
//	sched := regularization.Schedule{Sparsity: 0.5, DelayEpochs: 10}
//	lam, ok := sched.At(epoch)
//	if ok {
//	    loss += lam * regularization.PenaltyAR(arWeights)
//	    loss += lam * regularization.PenaltyTrend(trendWeights, 0.1)
//	    loss += lam * regularization.PenaltySeason(seasonWeights)
//	}
//
// A sparsity target of 1 (or anything outside (0, 1)) disables
// regularization; ok is false and no penalty should be applied.
//
// # Penalty Shapes
//
// PenaltyAR approximates an L0 penalty while staying differentiable:
// small weights are nearly free and the cost saturates quickly as
// magnitude grows. PenaltyTrend is an L1 penalty with an optional dead
// zone below which changepoint weights are not penalized. PenaltySeason
// is a plain mean-absolute penalty.
package regularization

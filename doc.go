// Package goprophet provides training utilities for additive time series forecasting.
//
// GoProphet is a Go package with the numeric building blocks used when fitting
// an additive decomposition model (trend + seasonality + autoregression) by
// gradient descent: sparsity-driven regularization, automatic seasonality
// selection from a date series, and epoch-level metric reporting.
//
// # Features
//
//   - Regularization lambda scheduling from a sparsity target, with warm-up ramping
//   - Sparsity-inducing penalty functions for AR, trend, and seasonality weights
//   - Automatic enabling/disabling of yearly, weekly, and daily seasonality
//   - Fourier feature expansion for resolved seasonal periods
//   - Symmetric total percentage error (STPE) and classic accuracy metrics
//   - Per-epoch metric printing and end-of-training summary tables
//
// # Quick Start
//
// Resolve seasonality from historical dates and size the seasonal inputs:
//
//	cfg := seasonality.NewConfig(seasonality.Fourier)
//	cfg.Add("yearly", seasonality.Auto(), 6)
//	cfg.Add("weekly", seasonality.Auto(), 4)
//	cfg, _ = seasonality.ResolveAuto(dates, cfg)
//	dims := cfg.ModelDims()
//
// Schedule regularization strength during training:
//
//	sched := regularization.Schedule{Sparsity: 0.5, DelayEpochs: 10}
//	lam, ok := sched.At(epoch)
//	if ok {
//		loss += lam * regularization.PenaltyAR(weights)
//	}
//
// # Packages
//
// The library is organized into the following packages:
//
//   - regularization: Lambda scheduling and weight penalty functions
//   - seasonality: Seasonal configuration, auto resolution, and Fourier features
//   - metrics: Error metrics and epoch metric reporting
//   - timeseries: Time series data structures and date-sequence utilities
//
// # References
//
//   - Triebe, O., et al. (2021). NeuralProphet: Explainable Forecasting at Scale
//   - Taylor, S.J., & Letham, B. (2018). Forecasting at Scale
package goprophet

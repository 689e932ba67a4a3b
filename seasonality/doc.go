// Package seasonality implements seasonal configuration for additive forecasting models.
//
// A seasonal configuration is an ordered set of periods (yearly, weekly,
// daily, or custom names), each requested as auto, enabled, disabled, or
// an explicit resolution override. The resolver inspects the historical
// date sequence and decides which auto periods the data can support.
//
// # Resolving Seasonality
//
// Build a configuration and resolve it against the history:
//
//	cfg := seasonality.NewConfig(seasonality.Fourier)
//	cfg.Add("yearly", seasonality.Auto(), 6)
//	cfg.Add("weekly", seasonality.Auto(), 4)
//	cfg.Add("daily", seasonality.Disabled(), 6)
//
//	cfg, err := seasonality.ResolveAuto(dates, cfg)
//
// The resolver mutates the configuration in place and drops periods that
// resolve to zero resolution. A nil result means no seasonality survived.
//
// # Model Dimensions
//
// Convert a resolved configuration to input dimensions for the seasonal
// submodule:
//
//	for _, dim := range cfg.ModelDims() {
//	    fmt.Printf("%s: %d inputs\n", dim.Name, dim.Size)
//	}
//
// Fourier-kind periods contribute 2*resolution dimensions (sin/cos pairs);
// the features themselves come from FourierTerms.
//
// # Automatic Rules
//
// Only the three built-in names have automatic rules:
//
//   - yearly: disabled under 730 days of history
//   - weekly: disabled under 14 days of history, or spacing >= 7 days
//   - daily: disabled under 2 days of history, or spacing >= 1 day
//
// Custom names resolve Auto to their default resolution.
package seasonality

// Package timeseries provides time series data structures and utilities.
//
// This package includes the Series type for representing time series data,
// along with date-sequence utilities used when deriving seasonality from
// historical timestamps.
//
// # Creating a Series
//
// Create a time series from a slice:
//
//	values := []float64{100, 102, 105, 103, 108, 110}
//	series := timeseries.New(values)
//
// Or with explicit timestamps:
//
//	series, err := timeseries.NewWithTimestamps(dates, values)
//
// # Basic Statistics
//
// Calculate summary statistics:
//
//	mean := series.Mean()
//	std := series.Std()
//	min := series.Min()
//	max := series.Max()
//
// # Date Sequences
//
// Analyze the spacing of historical dates:
//
//	span := timeseries.Span(dates)    // last - first
//	gap := timeseries.MinGap(dates)   // smallest positive spacing
//
// Generate evenly spaced dates:
//
//	dates := timeseries.DateRange(start, 365, 24*time.Hour)
package timeseries

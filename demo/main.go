// Package main demonstrates seasonality resolution, regularization
// scheduling, and epoch metric reporting on a synthetic history.
package main

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"

	"github.com/sartorproj/goprophet/metrics"
	"github.com/sartorproj/goprophet/regularization"
	"github.com/sartorproj/goprophet/seasonality"
	"github.com/sartorproj/goprophet/timeseries"
)

const (
	historyYears = 3
	stepHours    = 6
	epochs       = 12
)

func main() {
	section := color.New(color.FgCyan, color.Bold)

	section.Println("=== GoProphet Demo ===")
	fmt.Printf("Generating %d years of synthetic history (%dh steps)...\n", historyYears, stepHours)
	series := generateHistory()
	fmt.Printf("Observations: %d, mean=%.2f, std=%.2f\n\n",
		series.Len(), series.Mean(), series.Std())

	section.Println("1. Auto-Seasonality Resolution")
	cfg := resolveSeasonality(series)
	if cfg == nil {
		fmt.Println("No seasonality survived resolution")
		os.Exit(1)
	}
	for _, dim := range cfg.ModelDims() {
		fmt.Printf("   %s: %d model inputs\n", dim.Name, dim.Size)
	}
	fmt.Println()

	section.Println("2. Fourier Features")
	period, _ := seasonality.DefaultPeriod(seasonality.Weekly)
	weekly := cfg.Period(seasonality.Weekly)
	terms := seasonality.FourierTerms(series.Timestamps[:8], period, weekly.Resolution)
	fmt.Printf("   weekly features for first date: %d columns, first pair [%.3f %.3f]\n\n",
		len(terms[0]), terms[0][0], terms[0][1])

	section.Println("3. Simulated Training")
	runTraining(series)
}

// generateHistory builds an additive trend + weekly + daily series with
// deterministic pseudo-noise, reporting progress while it fills.
func generateHistory() *timeseries.Series {
	n := historyYears * 365 * 24 / stepHours
	start := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	dates := timeseries.DateRange(start, n, stepHours*time.Hour)

	bar := progressbar.Default(int64(n))
	values := make([]float64, n)
	for i, d := range dates {
		hours := d.Sub(start).Hours()
		trend := 100 + 0.01*hours
		weeklyCycle := 5 * math.Sin(2*math.Pi*hours/(7*24))
		dailyCycle := 2 * math.Sin(2*math.Pi*hours/24)
		noise := (float64(i%17) - 8) / 8
		values[i] = trend + weeklyCycle + dailyCycle + noise
		_ = bar.Add(1)
	}

	series, _ := timeseries.NewWithTimestamps(dates, values)
	series.Name = "synthetic"
	return series
}

func resolveSeasonality(series *timeseries.Series) *seasonality.Config {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	cfg := seasonality.NewConfig(seasonality.Fourier)
	cfg.Add(seasonality.Yearly, seasonality.Auto(), 6)
	cfg.Add(seasonality.Weekly, seasonality.Auto(), 4)
	cfg.Add(seasonality.Daily, seasonality.Auto(), 6)

	resolver := &seasonality.Resolver{Logger: logger, Verbose: true}
	resolved, err := resolver.Resolve(series.Timestamps, cfg)
	if err != nil {
		logger.Fatalf("resolve seasonality: %v", err)
	}
	return resolved
}

// runTraining simulates a training loop: weights shrink each epoch, the
// regularization lambda ramps up, and the fit improves.
func runTraining(series *timeseries.Series) {
	sched := regularization.Schedule{Sparsity: 0.3, DelayEpochs: 4}
	printer := &metrics.EpochPrinter{}
	rec := &metrics.Recorder{}

	// Hold out the last 10% as validation.
	split := series.Len() * 9 / 10
	train := series.Values[:split]
	val := series.Values[split:]

	arWeights := []float64{0.8, -0.5, 0.3, -0.2, 0.1}
	for epoch := 0; epoch < epochs; epoch++ {
		// Weights decay toward sparsity as training progresses.
		for i := range arWeights {
			arWeights[i] *= 0.85
		}

		fit := 1.0 / float64(epoch+2)
		trainEst := perturb(train, fit)
		valEst := perturb(val, fit*1.2)

		loss := metrics.RMSE(train, trainEst)
		if lam, ok := sched.At(epoch); ok {
			loss += lam * regularization.PenaltyAR(arWeights)
			loss += lam * regularization.PenaltySeason(arWeights)
		}

		trainRow := metrics.NewRow().
			Set("loss", loss).
			Set("stpe", metrics.SymmetricTotalPercentageError(train, trainEst))
		valRow := metrics.NewRow().
			Set("stpe", metrics.SymmetricTotalPercentageError(val, valEst))

		printer.Print(epoch, trainRow, valRow)
		rec.Record(epoch, trainRow, valRow)
	}

	fmt.Println()
	color.New(color.FgGreen, color.Bold).Println("Training summary")
	if err := rec.Summary(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "render summary: %v\n", err)
	}
}

// perturb returns values shifted by a deterministic error of the given scale.
func perturb(values []float64, scale float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v + scale*math.Sin(float64(i))
	}
	return out
}

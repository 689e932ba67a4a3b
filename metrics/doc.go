// Package metrics provides forecast error metrics and epoch metric reporting.
//
// # Error Metrics
//
// Compare a forecast against observed values:
//
//	stpe := metrics.SymmetricTotalPercentageError(values, estimates)
//	rmse := metrics.RMSE(actual, predicted)
//	mae := metrics.MAE(actual, predicted)
//	mape := metrics.MAPE(actual, predicted)
//
// STPE is symmetric in its inputs' magnitudes and guards its denominator,
// so it stays finite even for all-zero series.
//
// # Epoch Reporting
//
// During training, print one line per epoch (header at epoch 0):
//
//	printer := &metrics.EpochPrinter{}
//	row := metrics.NewRow().Set("loss", trainLoss).Set("stpe", stpe)
//	printer.Print(epoch, row, valRow)
//
// A Recorder keeps the per-epoch rows and renders a summary table after
// training:
//
//	rec := &metrics.Recorder{}
//	rec.Record(epoch, row, valRow)
//	...
//	rec.Summary(os.Stdout)
package metrics

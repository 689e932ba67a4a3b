package timeseries

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}
	series := New(values)

	require.NotNil(t, series)
	assert.Equal(t, 5, series.Len())
	assert.Len(t, series.Timestamps, 5)
}

func TestNewWithTimestamps(t *testing.T) {
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	dates := DateRange(start, 3, 24*time.Hour)

	series, err := NewWithTimestamps(dates, []float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 3, series.Len())

	_, err = NewWithTimestamps(dates, []float64{1, 2})
	assert.Error(t, err)
}

func TestStatistics(t *testing.T) {
	series := New([]float64{2, 4, 6, 8})

	assert.InDelta(t, 5.0, series.Mean(), 1e-10)
	assert.InDelta(t, 2.0, series.Min(), 1e-10)
	assert.InDelta(t, 8.0, series.Max(), 1e-10)
	assert.InDelta(t, 20.0/3.0, series.Variance(), 1e-10)
}

func TestStatisticsEmpty(t *testing.T) {
	series := New(nil)

	assert.Equal(t, 0.0, series.Mean())
	assert.Equal(t, 0.0, series.Variance())
}

func TestCopy(t *testing.T) {
	series := New([]float64{1, 2, 3})
	series.Name = "original"

	clone := series.Copy()
	clone.Values[0] = 99

	assert.Equal(t, 1.0, series.Values[0])
	assert.Equal(t, "original", clone.Name)
}

func TestSpan(t *testing.T) {
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	dates := DateRange(start, 10, 24*time.Hour)
	assert.Equal(t, 9*24*time.Hour, Span(dates))

	// Unsorted input: span is still max - min.
	shuffled := []time.Time{dates[5], dates[0], dates[9], dates[2]}
	assert.Equal(t, 9*24*time.Hour, Span(shuffled))

	assert.Equal(t, time.Duration(0), Span(dates[:1]))
	assert.Equal(t, time.Duration(0), Span(nil))
}

func TestMinGap(t *testing.T) {
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	dates := DateRange(start, 5, 24*time.Hour)
	assert.Equal(t, 24*time.Hour, MinGap(dates))

	// Duplicate timestamps produce zero gaps, which are ignored.
	withDup := append([]time.Time{start}, dates...)
	assert.Equal(t, 24*time.Hour, MinGap(withDup))

	// Uneven spacing: the smallest positive gap wins.
	uneven := []time.Time{
		start,
		start.Add(6 * time.Hour),
		start.Add(48 * time.Hour),
	}
	assert.Equal(t, 6*time.Hour, MinGap(uneven))

	// All duplicates: no positive gap exists.
	same := []time.Time{start, start, start}
	assert.Equal(t, time.Duration(0), MinGap(same))
}

func TestDateRange(t *testing.T) {
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	dates := DateRange(start, 3, time.Hour)

	require.Len(t, dates, 3)
	assert.Equal(t, start, dates[0])
	assert.Equal(t, start.Add(2*time.Hour), dates[2])
}

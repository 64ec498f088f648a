package profiling

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	// Sorted: 2 4 4 4 5 5 7 9
	values := []float64{5, 4, 9, 4, 2, 5, 4, 7}

	summary, err := Summarize(values)
	require.NoError(t, err)

	assert.Equal(t, 8, summary.Count)
	assert.Equal(t, 0, summary.Missing)
	assert.InDelta(t, 5.0, summary.Mean, 1e-9)
	assert.InDelta(t, 2.0, summary.StdDev, 1e-9)
	assert.InDelta(t, 2.0, summary.Min, 1e-9)
	assert.InDelta(t, 9.0, summary.Max, 1e-9)
	assert.InDelta(t, 4.5, summary.Median, 1e-9)
	assert.InDelta(t, 4.0, summary.Q25, 1e-9)
	assert.InDelta(t, 5.0, summary.Q75, 1e-9)
	// IQR = 1, so the fences sit at 2.5 and 6.5: 2, 7 and 9 fall outside
	assert.Equal(t, 3, summary.Outliers)
	assert.True(t, summary.Normal)
	assert.GreaterOrEqual(t, summary.NormalP, 0.0)
	assert.LessOrEqual(t, summary.NormalP, 1.0)
}

func TestSummarizeCountsNonFiniteAsMissing(t *testing.T) {
	values := []float64{1, math.NaN(), 2, math.Inf(1), 3}

	summary, err := Summarize(values)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Count)
	assert.Equal(t, 2, summary.Missing)
	assert.InDelta(t, 2.0, summary.Mean, 1e-9)
	assert.InDelta(t, 1.0, summary.Min, 1e-9)
	assert.InDelta(t, 3.0, summary.Max, 1e-9)
}

func TestSummarizeDegenerateSeries(t *testing.T) {
	empty, err := Summarize(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Count)
	assert.Equal(t, 0, empty.Missing)

	allMissing, err := Summarize([]float64{math.NaN(), math.NaN()})
	require.NoError(t, err)
	assert.Equal(t, 0, allMissing.Count)
	assert.Equal(t, 2, allMissing.Missing)

	single, err := Summarize([]float64{42})
	require.NoError(t, err)
	assert.Equal(t, 1, single.Count)
	assert.InDelta(t, 42.0, single.Mean, 1e-9)
	assert.InDelta(t, 42.0, single.Median, 1e-9)
	assert.InDelta(t, 42.0, single.Q25, 1e-9)
	assert.InDelta(t, 42.0, single.Q75, 1e-9)
	assert.Zero(t, single.StdDev)
	assert.Zero(t, single.Outliers)
}

func TestSummarizeConstantSeries(t *testing.T) {
	summary, err := Summarize([]float64{5, 5, 5, 5, 5})
	require.NoError(t, err)

	assert.Equal(t, 5, summary.Count)
	assert.InDelta(t, 5.0, summary.Mean, 1e-9)
	assert.Zero(t, summary.StdDev)
	assert.Zero(t, summary.Outliers)
	// Zero spread pins skewness and kurtosis to their normal reference
	// values, so the normality flag stays set.
	assert.True(t, summary.Normal)
}

package profiling

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Summary describes the shape of one numeric series from a loaded table
type Summary struct {
	Count    int     `json:"count"`
	Missing  int     `json:"missing"`
	Mean     float64 `json:"mean"`
	StdDev   float64 `json:"std_dev"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Median   float64 `json:"median"`
	Q25      float64 `json:"q25"`
	Q75      float64 `json:"q75"`
	Outliers int     `json:"outliers"`
	Normal   bool    `json:"normal"`
	NormalP  float64 `json:"normal_p"`
}

// Summarize computes summary statistics over a numeric series. Non-finite
// entries (a blank quantity cell loads as NaN) are excluded from the
// statistics and counted in Missing. Series too small for a statistic
// degrade gracefully rather than erroring.
func Summarize(values []float64) (Summary, error) {
	finite := make([]float64, 0, len(values))
	missing := 0
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			missing++
			continue
		}
		finite = append(finite, v)
	}

	summary := Summary{Count: len(finite), Missing: missing}
	if len(finite) == 0 {
		return summary, nil
	}

	mean, err := stats.Mean(finite)
	if err != nil {
		return summary, err
	}

	stdDev, err := stats.StandardDeviation(finite)
	if err != nil {
		return summary, err
	}

	min, err := stats.Min(finite)
	if err != nil {
		return summary, err
	}

	max, err := stats.Max(finite)
	if err != nil {
		return summary, err
	}

	median, err := stats.Median(finite)
	if err != nil {
		return summary, err
	}

	summary.Mean = mean
	summary.StdDev = stdDev
	summary.Min = min
	summary.Max = max
	summary.Median = median

	// Quartiles need at least four points; below that the fences
	// collapse to the observed range and nothing counts as an outlier.
	if len(finite) >= 4 {
		q25, err := stats.Percentile(finite, 25)
		if err != nil {
			return summary, err
		}

		q75, err := stats.Percentile(finite, 75)
		if err != nil {
			return summary, err
		}

		summary.Q25 = q25
		summary.Q75 = q75
		summary.Outliers = countOutliers(finite, q25, q75)
	} else {
		summary.Q25 = min
		summary.Q75 = max
	}

	summary.Normal, summary.NormalP = testNormality(finite, mean, stdDev)

	return summary, nil
}

// calculateSkewness computes sample skewness using the adjusted Fisher-Pearson coefficient
func calculateSkewness(data []float64, mean, stdDev float64) float64 {
	if len(data) < 3 || stdDev == 0 {
		return 0
	}

	n := float64(len(data))
	sumCubedDeviations := 0.0

	for _, x := range data {
		deviation := (x - mean) / stdDev
		sumCubedDeviations += deviation * deviation * deviation
	}

	skewness := sumCubedDeviations / n

	// Bias correction for sample skewness
	correction := math.Sqrt(n*(n-1)) / (n - 2)
	skewness *= correction

	return skewness
}

// calculateKurtosis computes sample kurtosis (3 is normal)
func calculateKurtosis(data []float64, mean, stdDev float64) float64 {
	if len(data) < 4 || stdDev == 0 {
		return 3
	}

	n := float64(len(data))
	sumFourthDeviations := 0.0

	for _, x := range data {
		deviation := (x - mean) / stdDev
		sumFourthDeviations += deviation * deviation * deviation * deviation
	}

	kurtosis := sumFourthDeviations / n

	// Convert to excess kurtosis (subtract 3 for normal distribution)
	excessKurtosis := kurtosis - 3

	// Bias correction for sample excess kurtosis
	if n > 3 {
		correction := (n - 1) / ((n - 2) * (n - 3))
		excessKurtosis = excessKurtosis*correction + 6/(n+1)
	}

	return excessKurtosis + 3
}

// testNormality performs a simplified normality check from skewness and
// kurtosis, with the p-value approximated through a chi-squared
// distribution. Rough by construction; good enough to flag obviously
// non-normal planning series.
func testNormality(data []float64, mean, stdDev float64) (isNormal bool, pValue float64) {
	if len(data) < 3 {
		return false, 1.0
	}

	skewness := calculateSkewness(data, mean, stdDev)
	kurtosis := calculateKurtosis(data, mean, stdDev)

	testStat := math.Abs(skewness) + math.Abs(kurtosis-3)/2

	chiDist := distuv.ChiSquared{K: 2}
	pValue = 1 - chiDist.CDF(testStat*testStat)

	isNormal = pValue > 0.05

	return isNormal, pValue
}

// countOutliers identifies outliers using the 1.5 IQR method
func countOutliers(data []float64, q25, q75 float64) int {
	iqr := q75 - q25
	lowerBound := q25 - 1.5*iqr
	upperBound := q75 + 1.5*iqr

	outlierCount := 0
	for _, x := range data {
		if x < lowerBound || x > upperBound {
			outlierCount++
		}
	}

	return outlierCount
}

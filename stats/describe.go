package stats

import (
	"math"
	"sort"

	"github.com/pivolan/giveaway_stats/domain/models"
)

// calculateQuantile returns the p-quantile of sorted, interpolating linearly between the two
// nearest ranks.
func calculateQuantile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return math.NaN()
	}

	pos := p * float64(len(sorted)-1)
	floor := math.Floor(pos)
	ceil := math.Ceil(pos)

	if floor == ceil {
		return sorted[int(pos)]
	}

	lower := sorted[int(floor)]
	upper := sorted[int(ceil)]
	fraction := pos - floor

	return lower + fraction*(upper-lower)
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// sampleStd uses the n-1 denominator and is NaN for fewer than two values.
func sampleStd(values []float64, avg float64) float64 {
	if len(values) < 2 {
		return math.NaN()
	}
	sumSq := 0.0
	for _, v := range values {
		d := v - avg
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(values)-1))
}

// Describe computes count, mean, sample standard deviation, min, quartiles and max.
func Describe(values []float64) models.Summary {
	if len(values) == 0 {
		nan := math.NaN()
		return models.Summary{Mean: nan, Std: nan, Min: nan, P25: nan, P50: nan, P75: nan, Max: nan}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	avg := mean(values)
	return models.Summary{
		Count: len(values),
		Mean:  avg,
		Std:   sampleStd(values, avg),
		Min:   sorted[0],
		P25:   calculateQuantile(sorted, 0.25),
		P50:   calculateQuantile(sorted, 0.5),
		P75:   calculateQuantile(sorted, 0.75),
		Max:   sorted[len(sorted)-1],
	}
}

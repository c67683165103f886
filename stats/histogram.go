package stats

import (
	"fmt"
	"math"

	"github.com/pivolan/giveaway_stats/domain/models"
)

// DefaultBins is the bucket count used for report histograms.
const DefaultBins = 10

// Histogram buckets values into equal-width bins spanning [min, max]. NaN values are skipped.
// When every value is equal the range is widened to [v-0.5, v+0.5].
func Histogram(values []float64, bins int) ([]models.Bin, error) {
	if bins < 1 {
		return nil, fmt.Errorf("%w: bins must be positive, got %d", ErrInvalidArgument, bins)
	}

	finite := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			finite = append(finite, v)
		}
	}
	if len(finite) == 0 {
		return []models.Bin{}, nil
	}

	lo, hi := finite[0], finite[0]
	for _, v := range finite {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}

	width := (hi - lo) / float64(bins)
	result := make([]models.Bin, bins)
	for i := range result {
		result[i].Start = lo + float64(i)*width
		result[i].End = lo + float64(i+1)*width
	}
	result[bins-1].End = hi

	for _, v := range finite {
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		result[idx].Count++
	}
	return result, nil
}

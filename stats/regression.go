package stats

import (
	"fmt"
	"math"

	"github.com/pivolan/giveaway_stats/domain/models"
)

// LinearFit fits y = slope*x + intercept by ordinary least squares.
func LinearFit(x, y []float64) (models.LinearFit, error) {
	if len(x) != len(y) {
		return models.LinearFit{}, fmt.Errorf("%w: %d x values and %d y values", ErrInvalidArgument, len(x), len(y))
	}
	if len(x) < 2 {
		return models.LinearFit{}, fmt.Errorf("%w: a line needs at least 2 points, got %d", ErrInvalidArgument, len(x))
	}

	mx, my := mean(x), mean(y)
	var sxx, sxy float64
	for i := range x {
		dx := x[i] - mx
		sxx += dx * dx
		sxy += dx * (y[i] - my)
	}
	if sxx == 0 {
		return models.LinearFit{}, fmt.Errorf("%w: all x values are equal", ErrInvalidArgument)
	}

	slope := sxy / sxx
	return models.LinearFit{Slope: slope, Intercept: my - slope*mx}, nil
}

// Correlation is the Pearson correlation coefficient of x and y, NaN when undefined.
func Correlation(x, y []float64) float64 {
	if len(x) != len(y) || len(x) < 2 {
		return math.NaN()
	}
	mx, my := mean(x), mean(y)
	var sxx, syy, sxy float64
	for i := range x {
		dx, dy := x[i]-mx, y[i]-my
		sxx += dx * dx
		syy += dy * dy
		sxy += dx * dy
	}
	if sxx == 0 || syy == 0 {
		return math.NaN()
	}
	return sxy / math.Sqrt(sxx*syy)
}

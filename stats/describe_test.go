package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribe(t *testing.T) {
	s := Describe([]float64{4, 1, 3, 2})

	assert.Equal(t, 4, s.Count)
	assert.InDelta(t, 2.5, s.Mean, 1e-12)
	assert.InDelta(t, math.Sqrt(5.0/3.0), s.Std, 1e-12)
	assert.Equal(t, 1.0, s.Min)
	assert.InDelta(t, 1.75, s.P25, 1e-12)
	assert.InDelta(t, 2.5, s.P50, 1e-12)
	assert.InDelta(t, 3.25, s.P75, 1e-12)
	assert.Equal(t, 4.0, s.Max)
}

func TestDescribeSingleValueKeepsNaNStd(t *testing.T) {
	s := Describe([]float64{42})

	assert.Equal(t, 1, s.Count)
	assert.Equal(t, 42.0, s.Mean)
	assert.True(t, math.IsNaN(s.Std), "std of one value must stay undefined, got %v", s.Std)
	assert.Equal(t, 42.0, s.P25)
	assert.Equal(t, 42.0, s.Max)
}

func TestDescribeEmpty(t *testing.T) {
	s := Describe(nil)

	assert.Equal(t, 0, s.Count)
	assert.True(t, math.IsNaN(s.Mean))
	assert.True(t, math.IsNaN(s.Max))
}

func TestDescribeDoesNotReorderInput(t *testing.T) {
	values := []float64{3, 1, 2}
	Describe(values)
	assert.Equal(t, []float64{3, 1, 2}, values)
}

func TestCalculateQuantile(t *testing.T) {
	sorted := []float64{10, 20, 30, 40, 50}
	tests := []struct {
		p    float64
		want float64
	}{
		{0, 10},
		{0.25, 20},
		{0.5, 30},
		{0.9, 46},
		{1, 50},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, calculateQuantile(sorted, tt.p), 1e-9, "p=%v", tt.p)
	}
}

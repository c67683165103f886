package plot

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/pivolan/giveaway_stats/domain/models"
)

// ErrNoData is returned when there is nothing to draw.
var ErrNoData = errors.New("plot: no data")

// DrawHistogram renders histogram bins as a PNG bar chart.
func DrawHistogram(bins []models.Bin, title string) ([]byte, error) {
	if len(bins) == 0 {
		return nil, ErrNoData
	}
	return drawPlotBar(newDataBinsForGraph(bins, "Giveaways", title))
}

// DrawPlotBar renders one bar per label.
func DrawPlotBar(labels []string, values []float64, title string) ([]byte, error) {
	if len(labels) == 0 {
		return nil, ErrNoData
	}
	if len(labels) != len(values) {
		return nil, fmt.Errorf("plot: %d labels for %d values", len(labels), len(values))
	}
	return drawPlotBar(newDataXStringsForGraph(labels, values, "", title))
}

// DrawScatter renders x against y as dots, plus the fitted line when fit is not nil.
// Points with a NaN coordinate are skipped.
func DrawScatter(x, y []float64, fit *models.LinearFit, xName, yName string) ([]byte, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("plot: %d x values for %d y values", len(x), len(y))
	}
	xs := make([]float64, 0, len(x))
	ys := make([]float64, 0, len(y))
	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		xs = append(xs, x[i])
		ys = append(ys, y[i])
	}
	if len(xs) == 0 {
		return nil, ErrNoData
	}

	minX, maxX := paddedRange(xs)
	minY, maxY := paddedRange(ys)

	series := []chart.Series{
		chart.ContinuousSeries{
			Name:    "giveaways",
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				DotWidth:    5,
				DotColor:    drawing.ColorBlue.WithAlpha(160),
			},
		},
	}
	if fit != nil {
		y0, y1 := fit.At(minX), fit.At(maxX)
		minY = math.Min(minY, math.Min(y0, y1))
		maxY = math.Max(maxY, math.Max(y0, y1))
		series = append(series, chart.ContinuousSeries{
			Name:    "trend",
			XValues: []float64{minX, maxX},
			YValues: []float64{y0, y1},
			Style: chart.Style{
				StrokeColor: drawing.ColorRed,
				StrokeWidth: 2,
			},
		})
	}

	graph := chart.Chart{
		Title: fmt.Sprintf("%s vs %s", yName, xName),
		Background: chart.Style{
			Padding: chart.Box{
				Top:    40,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
			FillColor: drawing.ColorWhite,
		},
		Width:  1280,
		Height: 720,
		XAxis: chart.XAxis{
			Name:           xName,
			Range:          &chart.ContinuousRange{Min: minX, Max: maxX},
			ValueFormatter: formatValue,
		},
		YAxis: chart.YAxis{
			Name:           yName,
			Range:          &chart.ContinuousRange{Min: minY, Max: maxY},
			ValueFormatter: formatValue,
		},
		Series: series,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("error rendering chart: %w", err)
	}
	return buffer.Bytes(), nil
}

func drawPlotBar(data dataForGraph) ([]byte, error) {
	barValues := data.generateBarValues()
	paddingX := customizePaddingXBottom(barValues)
	width, height := data.calculateChartDimensions(100)

	maxY := findMaxValue(data.getYValues())
	if maxY <= 0 {
		maxY = 1
	}

	bar := chart.BarChart{}
	bar.Title = data.GetNameGraph()
	bar.Background = chart.Style{
		StrokeColor: chart.ColorBlack,
		Padding: chart.Box{
			Bottom: paddingX,
			Top:    50,
		},
	}
	bar.Height = height + 50
	bar.Width = width + paddingX + 50
	bar.BarWidth = 60
	bar.Bars = barValues
	bar.YAxis = chart.YAxis{
		Name: data.getNameYAxis(),
		Range: &chart.ContinuousRange{
			Min: 0.0,
			Max: maxY,
		},
		Style: chart.Style{
			StrokeWidth: 2,
			StrokeColor: chart.ColorBlack,
			FontSize:    17,
		},
		Ticks: data.generateGrid(),
		GridMinorStyle: chart.Style{
			StrokeColor: chart.ColorBlack,
			StrokeWidth: 1,
			DotWidth:    1,
		},
		GridMajorStyle: chart.Style{
			StrokeColor:     chart.ColorBlack,
			StrokeWidth:     1,
			DotWidth:        1,
			StrokeDashArray: []float64{5.0, 5.0},
		},
	}
	bar.XAxis = chart.Style{
		StrokeWidth:         2,
		StrokeColor:         chart.ColorBlack,
		TextRotationDegrees: 88,
		FontSize:            17,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := bar.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("error rendering chart: %w", err)
	}
	return buffer.Bytes(), nil
}

func calculateGridStep(maxValue float64) float64 {
	if maxValue <= 0 {
		return 0
	}
	if maxValue < 1e-10 {
		return 1e-10
	}

	// order of magnitude, then normalise to [1, 10)
	magnitude := math.Pow(10, math.Floor(math.Log10(maxValue)))
	normalized := maxValue / magnitude

	var step float64
	switch {
	case normalized <= 1:
		step = 0.2
	case normalized <= 2:
		step = 0.5
	case normalized <= 5:
		step = 1.0
	default:
		step = 2.0
	}

	finalStep := step * magnitude
	if finalStep >= 1000 {
		return math.Round(finalStep/100) * 100
	}
	if finalStep >= 100 {
		return math.Round(finalStep/10) * 10
	}
	return finalStep
}

func findMaxValue(y []float64) float64 {
	if len(y) == 0 {
		return 0
	}
	max := y[0]
	for _, v := range y {
		if v > max {
			max = v
		}
	}
	return max
}

func customizePaddingXBottom(values []chart.Value) int {
	count := 0
	for _, v := range values {
		if len(v.Label) > count {
			count = len(v.Label)
		}
	}
	return count * 8
}

// paddedRange widens a degenerate range so the axis has a non-zero span.
func paddedRange(values []float64) (min, max float64) {
	min, max = values[0], values[0]
	for _, v := range values {
		min = math.Min(min, v)
		max = math.Max(max, v)
	}
	if min == max {
		return min - 0.5, max + 0.5
	}
	return min, max
}

func formatTick(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

func formatValue(v interface{}) string {
	if vf, isFloat := v.(float64); isFloat {
		return formatTick(vf)
	}
	return ""
}

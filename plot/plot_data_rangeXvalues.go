package plot

import (
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/pivolan/giveaway_stats/domain/models"
)

// dataBinsForGraph renders histogram bins as bars labelled with their range.
type dataBinsForGraph struct {
	bins      []models.Bin
	nameYAxis string
	nameGraph string
}

func newDataBinsForGraph(bins []models.Bin, nameYAxis, nameGraph string) dataBinsForGraph {
	return dataBinsForGraph{
		bins:      bins,
		nameYAxis: nameYAxis,
		nameGraph: nameGraph,
	}
}

func (d dataBinsForGraph) GetNameGraph() string {
	return d.nameGraph
}
func (d dataBinsForGraph) getNameYAxis() string {
	return d.nameYAxis
}
func (d dataBinsForGraph) getYValues() []float64 {
	y := make([]float64, len(d.bins))
	for i, b := range d.bins {
		y[i] = float64(b.Count)
	}
	return y
}

func (d dataBinsForGraph) calculateChartDimensions(minBarWidth float64) (width, height int) {
	return chartDimensions(len(d.bins), minBarWidth)
}

func (d dataBinsForGraph) generateBarValues() []chart.Value {
	bars := make([]chart.Value, 0, len(d.bins))
	for _, b := range d.bins {
		bars = append(bars, chart.Value{
			Value: float64(b.Count),
			Label: fmt.Sprintf("%.2f..%.2f", b.Start, b.End),
			Style: chart.Style{
				FillColor: drawing.ColorPurple.WithAlpha(100),
			},
		})
	}
	return bars
}

func (d dataBinsForGraph) generateGrid() []chart.Tick {
	return gridTicks(findMaxValue(d.getYValues()))
}

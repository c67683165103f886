package plot

import (
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

type dataXStringsForGraph struct {
	xValues   []string
	yValues   []float64
	nameYAxis string
	nameGraph string
}

func newDataXStringsForGraph(xValues []string, y []float64, nameYAxis, nameGraph string) dataXStringsForGraph {
	return dataXStringsForGraph{
		xValues:   xValues,
		yValues:   y,
		nameYAxis: nameYAxis,
		nameGraph: nameGraph,
	}
}

func (d dataXStringsForGraph) GetNameGraph() string {
	return d.nameGraph
}
func (d dataXStringsForGraph) getNameYAxis() string {
	return d.nameYAxis
}
func (d dataXStringsForGraph) getYValues() []float64 {
	return d.yValues
}

func (d dataXStringsForGraph) calculateChartDimensions(minBarWidth float64) (width, height int) {
	return chartDimensions(len(d.xValues), minBarWidth)
}

func (d dataXStringsForGraph) generateBarValues() []chart.Value {
	bars := make([]chart.Value, 0, len(d.xValues))
	for i, label := range d.xValues {
		bars = append(bars, chart.Value{
			Value: d.yValues[i],
			Label: label,
			Style: chart.Style{
				FillColor: drawing.ColorBlue.WithAlpha(120),
			},
		})
	}
	return bars
}

func (d dataXStringsForGraph) generateGrid() []chart.Tick {
	return gridTicks(findMaxValue(d.yValues))
}

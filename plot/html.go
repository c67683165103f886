package plot

import (
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/pivolan/giveaway_stats/domain/models"
)

// HTMLPage carries the data for the interactive report page.
type HTMLPage struct {
	Title string

	Bins []models.Bin

	WorthX, UsersY []float64
	Fit            *models.LinearFit

	TypeLabels []string
	TypeCounts []float64
}

// RenderHTMLPage writes a standalone echarts page with the histogram, scatter and type charts.
func RenderHTMLPage(w io.Writer, page HTMLPage) error {
	p := components.NewPage()
	p.PageTitle = page.Title
	p.AddCharts(
		histogramChart(page.Bins),
		scatterChart(page.WorthX, page.UsersY, page.Fit),
		typesChart(page.TypeLabels, page.TypeCounts),
	)
	return p.Render(w)
}

func histogramChart(bins []models.Bin) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Z-score distribution"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Giveaways"}),
	)

	labels := make([]string, 0, len(bins))
	data := make([]opts.BarData, 0, len(bins))
	for _, b := range bins {
		labels = append(labels, formatTick(b.Start)+".."+formatTick(b.End))
		data = append(data, opts.BarData{Value: b.Count})
	}
	bar.SetXAxis(labels).AddSeries("giveaways", data)
	return bar
}

func scatterChart(x, y []float64, fit *models.LinearFit) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Users vs worth"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Worth", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Users", Type: "value"}),
	)

	points := make([]opts.ScatterData, 0, len(x))
	minX, maxX := math.Inf(1), math.Inf(-1)
	for i := range x {
		if i >= len(y) || math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		points = append(points, opts.ScatterData{Value: []float64{x[i], y[i]}, SymbolSize: 8})
		minX = math.Min(minX, x[i])
		maxX = math.Max(maxX, x[i])
	}
	scatter.AddSeries("giveaways", points)

	if fit != nil && len(points) > 0 {
		trend := charts.NewLine()
		trend.AddSeries("trend", []opts.LineData{
			{Value: []float64{minX, fit.At(minX)}},
			{Value: []float64{maxX, fit.At(maxX)}},
		})
		scatter.Overlap(trend)
	}
	return scatter
}

func typesChart(labels []string, counts []float64) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "Giveaways per type"}))

	data := make([]opts.BarData, 0, len(counts))
	for _, c := range counts {
		data = append(data, opts.BarData{Value: c})
	}
	bar.SetXAxis(labels).AddSeries("giveaways", data)
	return bar
}

package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/pivolan/giveaway_stats/plot"
	"github.com/pivolan/giveaway_stats/stats"
)

// Chart names served by RenderCharts.
const (
	ChartZScores = "zscores.png"
	ChartWorth   = "worth.png"
	ChartTypes   = "types.png"
)

var ChartNames = []string{ChartZScores, ChartWorth, ChartTypes}

// ErrUnknownChart is returned by RenderChart for a name outside ChartNames.
var ErrUnknownChart = errors.New("unknown chart")

func chartRenderers(r *Report) map[string]func() ([]byte, error) {
	return map[string]func() ([]byte, error){
		ChartZScores: func() ([]byte, error) {
			return plot.DrawHistogram(r.ZScoreBins, "User z-scores within type")
		},
		ChartWorth: func() ([]byte, error) {
			x, y := stats.WorthUsersSeries(r.Worth)
			return plot.DrawScatter(x, y, r.Fit, "Worth", "Users")
		},
		ChartTypes: func() ([]byte, error) {
			labels, values := r.TypeChartData()
			return plot.DrawPlotBar(labels, values, "Giveaways per type")
		},
	}
}

// RenderCharts draws the PNG charts concurrently. Charts with nothing to plot are left out.
func RenderCharts(ctx context.Context, r *Report) (map[string][]byte, error) {
	renderers := chartRenderers(r)

	var mu sync.Mutex
	out := make(map[string][]byte, len(renderers))
	g, ctx := errgroup.WithContext(ctx)
	for name, render := range renderers {
		name, render := name, render
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			b, err := render()
			if errors.Is(err, plot.ErrNoData) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			mu.Lock()
			out[name] = b
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// RenderChart draws a single chart by name. It returns plot.ErrNoData when the chart would be empty.
func RenderChart(r *Report, name string) ([]byte, error) {
	render, ok := chartRenderers(r)[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownChart, name)
	}
	return render()
}

// WriteHTML renders the interactive echarts page for r.
func WriteHTML(w io.Writer, r *Report) error {
	labels, values := r.TypeChartData()
	x, y := stats.WorthUsersSeries(r.Worth)
	return plot.RenderHTMLPage(w, plot.HTMLPage{
		Title:      "Giveaway report " + r.RunID.String(),
		Bins:       r.ZScoreBins,
		WorthX:     x,
		UsersY:     y,
		Fit:        r.Fit,
		TypeLabels: labels,
		TypeCounts: values,
	})
}

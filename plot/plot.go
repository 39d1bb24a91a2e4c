// SPDX-License-Identifier: MIT

// Package plot renders a reconstruction as an interactive HTML chart: the
// decoded shares as scatter points and the recovered polynomial as a curve
// from x = 0, where it crosses the secret, to the largest share coordinate.
package plot

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/katalvlaran/polysecret/interp"
	"github.com/katalvlaran/polysecret/secret"
)

// DefaultSamples is the number of curve points drawn between 0 and max x.
const DefaultSamples = 128

// Series names, in legend order.
const (
	SeriesUsed       = "used shares"
	SeriesUnused     = "unused shares"
	SeriesExtra      = "extra points"
	SeriesPolynomial = "polynomial"
)

// ErrNoResult is returned when Render is given a nil or empty result.
var ErrNoResult = errors.New("plot: nothing to render")

// Sample evaluates coeffs at n evenly spaced x in [from, to], both ends
// included. n < 2 yields the single point at from.
func Sample(coeffs []float64, from, to float64, n int) [][2]float64 {
	if n < 2 {
		return [][2]float64{{from, interp.Evaluate(coeffs, from)}}
	}
	out := make([][2]float64, n)
	step := (to - from) / float64(n-1)
	for i := range out {
		x := from + step*float64(i)
		if i == n-1 {
			x = to
		}
		out[i] = [2]float64{x, interp.Evaluate(coeffs, x)}
	}

	return out
}

func scatterItems(points []interp.Point) []opts.ScatterData {
	items := make([]opts.ScatterData, len(points))
	for i, p := range points {
		items[i] = opts.ScatterData{Value: []any{p.X, p.Y}}
	}

	return items
}

// Render writes a self-contained HTML page for res to w. extra points, if
// any, are drawn as a third scatter series (for example shares from another
// document claimed to lie on the same polynomial).
func Render(w io.Writer, res *secret.Result, extra []interp.Point) error {
	if res == nil || len(res.Coefficients) == 0 {
		return ErrNoResult
	}

	maxX := 1
	for _, group := range [][]interp.Point{res.Used, res.Unused, extra} {
		for _, p := range group {
			if p.X > maxX {
				maxX = p.X
			}
		}
	}

	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "polysecret", Width: "1000px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("secret = %s", formatSecret(res.Secret)),
			Subtitle: fmt.Sprintf("degree %d, fingerprint %.12s", len(res.Coefficients)-1, res.Fingerprint),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "x", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "y", Type: "value"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}, opts.DataZoom{Type: "slider"}),
	)

	sc.AddSeries(SeriesUsed, scatterItems(res.Used),
		charts.WithScatterChartOpts(opts.ScatterChart{Symbol: "circle", SymbolSize: 10}))
	if len(res.Unused) > 0 {
		sc.AddSeries(SeriesUnused, scatterItems(res.Unused),
			charts.WithScatterChartOpts(opts.ScatterChart{Symbol: "diamond", SymbolSize: 10}))
	}
	if len(extra) > 0 {
		sc.AddSeries(SeriesExtra, scatterItems(extra),
			charts.WithScatterChartOpts(opts.ScatterChart{Symbol: "triangle", SymbolSize: 10}))
	}

	curve := Sample(res.Coefficients, 0, float64(maxX), DefaultSamples)
	lineItems := make([]opts.LineData, len(curve))
	for i, c := range curve {
		lineItems[i] = opts.LineData{Value: []any{c[0], c[1]}}
	}
	line := charts.NewLine()
	line.AddSeries(SeriesPolynomial, lineItems,
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true), ShowSymbol: opts.Bool(false)}))
	sc.Overlap(line)

	page := components.NewPage().SetPageTitle("polysecret")
	page.AddCharts(sc)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("plot: render: %w", err)
	}

	return nil
}

func formatSecret(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1<<53 {
		return fmt.Sprintf("%.0f", v)
	}

	return fmt.Sprintf("%g", v)
}

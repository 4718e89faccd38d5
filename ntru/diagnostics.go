package ntru

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// CoefficientGrowthSample records the maximum absolute coefficient seen
// across one round of repeated convolution, labeled by round number. The
// decrypt center-lift step (spec §4.5) only recovers the right answer as
// long as q stays much larger than this magnitude; benchmarks use this to
// watch the margin shrink as parameters scale.
type CoefficientGrowthSample struct {
	Round     int
	MaxAbsCoeff int64
}

// RenderCoefficientGrowthChart writes an interactive line chart of
// coefficient growth across rounds to w, for inspection in a browser.
// Grounded on the teacher's go-echarts scatter page
// (Additionnals/plot_pacs_sweep.go), reduced from a sweep-filtering UI to a
// single line series.
func RenderCoefficientGrowthChart(w io.Writer, title string, samples []CoefficientGrowthSample) error {
	page := components.NewPage().SetPageTitle(title)

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithXAxisOpts(opts.XAxis{Name: "round"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "max |coefficient|", Type: "value"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)

	xs := make([]int, len(samples))
	data := make([]opts.LineData, len(samples))
	for i, s := range samples {
		xs[i] = s.Round
		data[i] = opts.LineData{Value: s.MaxAbsCoeff}
	}
	line.SetXAxis(xs).AddSeries("max |coeff|", data)

	page.AddCharts(line)
	return page.Render(w)
}

// MaxAbsCoeff returns the largest absolute value among p's coefficients.
func (p ConvPoly) MaxAbsCoeff() int64 {
	var m int64
	for _, c := range p.Coeffs {
		a := c
		if a < 0 {
			a = -a
		}
		if a > m {
			m = a
		}
	}
	return m
}

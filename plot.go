package timeseries

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// LineTSeries generates an echart multi-line chart for some arbitrary time/value combination. Every
// slice in y must have the same length as t. NaN values are left as gaps.
func LineTSeries(title string, seriesName []string, t []time.Time, y [][]float64) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
		charts.WithXAxisOpts(opts.XAxis{Type: "time"}),
	)

	line = line.SetXAxis(t)
	for i, name := range seriesName {
		if i >= len(y) {
			break
		}
		lineData := make([]opts.LineData, 0, len(y[i]))
		for j, v := range y[i] {
			if j >= len(t) {
				break
			}
			var val any
			if !math.IsNaN(v) && !math.IsInf(v, 0) {
				val = v
			}
			lineData = append(lineData, opts.LineData{Value: []any{t[j], val}})
		}
		line = line.AddSeries(name, lineData)
	}
	return line
}

// LineForecast generates an echart line chart of the history followed by the forecast on a shared
// time axis
func LineForecast(history, forecast *Series) *charts.Line {
	t := append(history.Dates(), forecast.Dates()...)

	actual := make([]float64, len(t))
	predicted := make([]float64, len(t))
	for i := range t {
		actual[i], predicted[i] = math.NaN(), math.NaN()
	}
	copy(actual, history.y)
	copy(predicted[history.Len():], forecast.y)

	return LineTSeries("Forecast", []string{"Actual", "Forecast"}, t, [][]float64{actual, predicted})
}

// PlotForecast renders an HTML page charting history and its forecast to w
func PlotForecast(w io.Writer, history, forecast *Series) error {
	if history == nil || forecast == nil {
		return ErrNilSeries
	}
	page := components.NewPage()
	page.AddCharts(LineForecast(history, forecast))
	if err := page.Render(w); err != nil {
		return fmt.Errorf("unable to render forecast plot, %w", err)
	}
	return nil
}

// PlotDecomposition renders an HTML page with the series followed by one chart per component
func PlotDecomposition(w io.Writer, s *Series, comps *Group) error {
	if s == nil || comps == nil {
		return ErrNilSeries
	}
	page := components.NewPage()
	page.AddCharts(LineTSeries("Series", []string{"Series"}, s.Dates(), [][]float64{s.y}))
	for name, comp := range comps.All() {
		if comp == nil {
			return fmt.Errorf("component %q, %w", name, ErrNilSeries)
		}
		page.AddCharts(LineTSeries(name, []string{name}, comp.Dates(), [][]float64{comp.y}))
	}
	if err := page.Render(w); err != nil {
		return fmt.Errorf("unable to render decomposition plot, %w", err)
	}
	return nil
}

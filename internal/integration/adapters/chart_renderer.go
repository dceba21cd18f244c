package adapters

import (
	"bytes"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/barbershop/backend/internal/application/usecase/report"
)

// maxTickLabels bounds the number of x-axis labels drawn.
const maxTickLabels = 12

// ChartRenderer implements report.ChartRenderer using go-chart.
type ChartRenderer struct{}

// NewChartRenderer creates a new chart renderer instance.
func NewChartRenderer() *ChartRenderer {
	return &ChartRenderer{}
}

// RenderPNG draws revenue and expenses per period as a line chart.
func (c *ChartRenderer) RenderPNG(r *report.Report, opts report.ChartOptions) ([]byte, error) {
	n := len(r.Summaries)
	xValues := make([]float64, 0, n)
	revenue := make([]float64, 0, n)
	expenses := make([]float64, 0, n)
	labels := make([]string, 0, n)
	for i, s := range r.Summaries {
		xValues = append(xValues, float64(i))
		revenue = append(revenue, s.Revenue.InexactFloat64())
		expenses = append(expenses, s.Expenses.InexactFloat64())
		labels = append(labels, s.Label)
	}
	if n == 0 {
		revenue = append(revenue, 0)
		expenses = append(expenses, 0)
		labels = append(labels, "No data")
	}
	// The x range comes from the ticks and needs two distinct values, so a
	// single period is drawn as a flat segment with one label.
	if n < 2 {
		xValues = []float64{0, 1}
		revenue = append(revenue[:1], revenue[0])
		expenses = append(expenses[:1], expenses[0])
		labels = append(labels[:1], "")
	}

	yMin, yMax := valueRange(revenue, expenses)

	graph := chart.Chart{
		Title:  opts.Title,
		Width:  opts.Width,
		Height: opts.Height,
		TitleStyle: chart.Style{
			FontSize:  14,
			FontColor: chart.ColorBlack,
		},
		Background: chart.Style{
			Padding: chart.Box{
				Top:    50,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
			FillColor: chart.ColorWhite,
		},
		XAxis: chart.XAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: float64(len(xValues) - 1)},
			Ticks: ticks(labels),
			Style: chart.Style{
				FontSize:  10,
				FontColor: chart.ColorBlack,
			},
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: yMin, Max: yMax},
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return report.FormatMoney(opts.CurrencySymbol, decimal.NewFromFloat(f))
				}
				return ""
			},
			Style: chart.Style{
				FontSize:  10,
				FontColor: chart.ColorBlack,
			},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Revenue",
				XValues: xValues,
				YValues: revenue,
				Style: chart.Style{
					StrokeColor: chart.ColorGreen,
					StrokeWidth: 2,
					DotColor:    chart.ColorGreen,
					DotWidth:    3,
				},
			},
			chart.ContinuousSeries{
				Name:    "Expenses",
				XValues: xValues,
				YValues: expenses,
				Style: chart.Style{
					StrokeColor: chart.ColorRed,
					StrokeWidth: 2,
					DotColor:    chart.ColorRed,
					DotWidth:    3,
				},
			},
		},
	}

	graph.Elements = []chart.Renderable{
		chart.Legend(&graph, chart.Style{
			FontSize:  10,
			FontColor: chart.ColorBlack,
		}),
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render report chart: %w", err)
	}
	return buffer.Bytes(), nil
}

// ticks labels evenly spaced points, skipping labels when there are too many.
// The returned ticks always span the first and last point.
func ticks(labels []string) []chart.Tick {
	step := (len(labels) + maxTickLabels - 1) / maxTickLabels
	if step < 1 {
		step = 1
	}
	out := make([]chart.Tick, 0, len(labels)/step+1)
	for i := 0; i < len(labels); i += step {
		out = append(out, chart.Tick{Value: float64(i), Label: labels[i]})
	}
	// An unlabelled last tick keeps the final point inside the axis range.
	if last := len(labels) - 1; last > 0 && out[len(out)-1].Value < float64(last) {
		out = append(out, chart.Tick{Value: float64(last)})
	}
	return out
}

// valueRange returns a y-axis range covering every value with some headroom.
func valueRange(series ...[]float64) (float64, float64) {
	lo, hi := 0.0, 0.0
	for _, values := range series {
		for _, v := range values {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	if hi <= lo {
		hi = lo + 1
	}
	return lo, hi * 1.1
}

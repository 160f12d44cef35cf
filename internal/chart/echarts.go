package chart

import (
	"bytes"
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"suburbscope/internal/pkg/text"
	"suburbscope/internal/report"
)

const (
	colorBackground    = "#060c1b"
	colorTextPrimary   = "#eceff4"
	colorTextSecondary = "#9ca3af"

	chartWidthPx = 960
)

// BarPage renders the ranked pairs as a horizontal go-echarts bar chart and
// returns the standalone HTML page. Returns nil for empty input: no pairs,
// no chart.
func BarPage(title string, pairs []report.NumericPair) ([]byte, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	heightPx := Layout(pairs, chartWidthPx).Height + 120

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme:           types.ThemeWesteros,
			Width:           fmt.Sprintf("%dpx", chartWidthPx),
			Height:          fmt.Sprintf("%dpx", heightPx),
			BackgroundColor: colorBackground,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:      title,
			Left:       "left",
			Top:        "10",
			TitleStyle: &opts.TextStyle{Color: colorTextPrimary, FontSize: 18},
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{
			AxisLabel: &opts.AxisLabel{Color: colorTextSecondary},
			SplitLine: &opts.SplitLine{Show: opts.Bool(true), LineStyle: &opts.LineStyle{Color: colorTextSecondary, Opacity: opts.Float(0.15)}},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type:      "category",
			AxisLabel: &opts.AxisLabel{Color: colorTextSecondary},
			SplitLine: &opts.SplitLine{Show: opts.Bool(false)},
		}),
	)

	// echarts stacks category bars bottom-up; reverse so the largest
	// magnitude renders on top.
	labels := make([]string, len(pairs))
	data := make([]opts.BarData, len(pairs))
	for i := range pairs {
		p := pairs[len(pairs)-1-i]
		labels[i] = text.Truncate(p.Label, labelBudget)
		color := colorPositive
		if p.Value < 0 {
			color = colorNegative
		}
		data[i] = opts.BarData{
			Value:     p.Value,
			ItemStyle: &opts.ItemStyle{Color: color, Opacity: opts.Float(0.85)},
			Label: &opts.Label{
				Show:     opts.Bool(true),
				Position: "right",
				Color:    colorTextPrimary,
			},
		}
	}
	bar.SetXAxis(labels)
	bar.AddSeries("Value", data)
	bar.XYReversal()

	page := components.NewPage()
	page.SetLayout(components.PageFlexLayout)
	page.AddCharts(bar)

	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

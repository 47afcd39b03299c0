package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

const (
	chartBar   = "bar"
	chartPie   = "pie"
	chartTrend = "trend"
)

var (
	ErrUnknownChart = errors.New("unknown chart")
	errNoChartData  = errors.New("no statistics to chart")
)

// Sequential red-to-blue ramp used for the pie slices.
var rdBuRamp = opts.Colors{
	"rgb(103,0,31)", "rgb(178,24,43)", "rgb(214,96,77)", "rgb(244,165,130)",
	"rgb(253,219,199)", "rgb(247,247,247)", "rgb(209,229,240)", "rgb(146,197,222)",
	"rgb(67,147,195)", "rgb(33,102,172)", "rgb(5,48,97)",
}

// One color per club bar.
var barPalette = []string{
	"#636efa", "#EF553B", "#00cc96", "#ab63fa", "#FFA15A",
	"#19d3f3", "#FF6692", "#B6E880", "#FF97FF", "#FECB52",
}

type renderer interface {
	Render(w io.Writer) error
}

// buildChart returns the chart page for kind. Bar and pie use the club table,
// the trend chart uses the long-form trend rows.
func buildChart(kind string, clubs []ClubTrophyRecord, trend []TrendPoint) (renderer, error) {
	switch kind {
	case chartBar, chartPie:
		if len(clubs) == 0 {
			return nil, fmt.Errorf("%s chart: %w", kind, errNoChartData)
		}
	case chartTrend:
		if len(trend) == 0 {
			return nil, fmt.Errorf("%s chart: %w", kind, errNoChartData)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownChart, kind)
	}

	switch kind {
	case chartBar:
		return trophyBarChart(clubs), nil
	case chartPie:
		return trophyPieChart(clubs), nil
	default:
		return trophyTrendChart(trend), nil
	}
}

func trophyBarChart(clubs []ClubTrophyRecord) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Club trophies",
			Theme:     types.ThemeChalk,
			Width:     "100%",
			Height:    "460px",
		}),
		charts.WithTitleOpts(opts.Title{Title: "Trophy Count of Popular Clubs"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
	)

	names := make([]string, len(clubs))
	data := make([]opts.BarData, len(clubs))
	for i, c := range clubs {
		names[i] = c.Club
		data[i] = opts.BarData{
			Name:      c.Club,
			Value:     c.Trophies,
			ItemStyle: &opts.ItemStyle{Color: barPalette[i%len(barPalette)]},
		}
	}
	bar.SetXAxis(names).AddSeries("Trophies", data)
	return bar
}

func trophyPieChart(clubs []ClubTrophyRecord) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Club trophy share",
			Width:     "100%",
			Height:    "460px",
		}),
		charts.WithTitleOpts(opts.Title{Title: "Favorite Club Distribution by Trophies"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
		charts.WithLegendOpts(opts.Legend{Show: true, Top: "bottom"}),
		charts.WithColorsOpts(rdBuRamp),
	)

	items := make([]opts.PieData, len(clubs))
	for i, c := range clubs {
		items[i] = opts.PieData{Name: c.Club, Value: c.Trophies}
	}
	pie.AddSeries("Trophies", items, charts.WithPieChartOpts(opts.PieChart{Radius: []string{"40%", "70%"}}))
	return pie
}

func trophyTrendChart(points []TrendPoint) *charts.Line {
	trend := pivotTrend(points)

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Club trophy trend",
			Theme:     types.ThemeChalk,
			Width:     "100%",
			Height:    "460px",
		}),
		charts.WithTitleOpts(opts.Title{Title: "Club Trophy Trend Year by Year"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: true, Top: "bottom"}),
	)

	years := make([]string, len(trend.Years))
	for i, y := range trend.Years {
		years[i] = strconv.Itoa(y)
	}
	line.SetXAxis(years)

	for _, s := range trend.Series {
		data := make([]opts.LineData, len(s.Trophies))
		for i, n := range s.Trophies {
			data[i] = opts.LineData{Value: n}
		}
		line.AddSeries(s.Club, data,
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: true, Symbol: "circle"}))
	}
	return line
}

package v1

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/DoctFaust/campus-info-system/internal/analysis"
)

// typePie строит круговую диаграмму категорий в их цветах маркеров
func typePie(freq []analysis.TypeCount) *charts.Pie {
	data := make([]opts.PieData, 0, len(freq))
	for _, tc := range freq {
		data = append(data, opts.PieData{
			Name:      tc.Label,
			Value:     tc.Count,
			ItemStyle: &opts.ItemStyle{Color: tc.Color},
		})
	}

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "480px"}),
		charts.WithTitleOpts(opts.Title{Title: "Incidents by type"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	pie.AddSeries("types", data,
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Formatter: "{b}: {c}"}),
	)
	return pie
}

// hourlyBar строит распределение инцидентов по часам суток
func hourlyBar(report analysis.TrendReport) *charts.Bar {
	x := make([]string, 0, len(report.Hourly))
	y := make([]opts.BarData, 0, len(report.Hourly))
	for hour, n := range report.Hourly {
		x = append(x, fmt.Sprintf("%02d:00", hour))
		y = append(y, opts.BarData{Value: n})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "480px"}),
		charts.WithTitleOpts(opts.Title{Title: "Incidents by hour of day", Subtitle: "UTC"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(x).
		AddSeries("incidents", y,
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}),
		)
	return bar
}

// @Summary Analytics dashboard
// @Description HTML page with a type pie chart and an hourly bar chart.
// @Tags Analytics
// @Produce html
// @Success 200 {string} string "HTML page"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /analytics/charts [get]
func (h *Handler) getCharts(c *gin.Context) {
	q, ok := analysisQuery(c)
	if !ok {
		return
	}

	overview, err := h.analyticsService.Overview(c.Request.Context(), q)
	if err != nil {
		h.analyticsError(c, "getCharts", err)
		return
	}

	page := components.NewPage()
	page.SetPageTitle("Campus incidents")
	page.AddCharts(typePie(overview.TypeFrequencies), hourlyBar(overview.Trends))

	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		h.analyticsError(c, "getCharts", err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

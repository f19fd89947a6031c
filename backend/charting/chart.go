package charting

import (
	"fmt"
	"github.com/fernandosanchezjr/sungod/analytics"
	"github.com/go-echarts/go-echarts/charts"
	"io"
	"strconv"
)

// BuildChart renders a report's byte histogram as a bar chart.
func BuildChart(report *analytics.Report, title string, refresh bool) *charts.Bar {
	barChart := charts.NewBar()
	barChart.SetGlobalOptions(
		charts.InitOpts{
			Width:  "100wh",
			Height: "85vh",
		},
		charts.TitleOpts{
			Title: title,
			Subtitle: fmt.Sprintf("samples %d, chi-square %.2f, p-value %.4f",
				report.Samples, report.ChiSquare, report.PValue),
		},
		charts.ToolboxOpts{
			Show: true,
		},
	)
	labels := make([]string, analytics.Buckets)
	counts := make([]uint64, analytics.Buckets)
	for i, count := range report.Histogram {
		labels[i] = strconv.Itoa(i)
		counts[i] = count
	}
	barChart.AddXAxis(labels)
	barChart.AddYAxis("count", counts)
	if refresh {
		barChart.AddJSFuncs("setTimeout(function(){location.reload();}, 60000);")
	}
	return barChart
}

func RenderChart(w io.Writer, report *analytics.Report, title string, refresh bool) error {
	return BuildChart(report, title, refresh).Render(w)
}

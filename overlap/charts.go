package overlap

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// WriteHTML 将重叠统计输出为网页图表
func (r *Result) WriteHTML(w io.Writer) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "类别重叠",
			Subtitle: fmt.Sprintf("Total Overlaps: %d / %d samples", r.Total(), r.SampleCount),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Scale: opts.Bool(true),
		}),
	)
	names := make([]string, 0, len(r.classOrder))
	items := make([]opts.BarData, 0, len(r.classOrder))
	for _, c := range r.classOrder {
		names = append(names, r.classNames[c])
		items = append(items, opts.BarData{Value: r.PerClass[c]})
	}
	bar.SetXAxis(names).AddSeries("重叠样本", items)

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "准确率估计",
			Subtitle: fmt.Sprintf("%.2f%% accuracy", r.Accuracy()),
		}),
	)
	pie.AddSeries("样本", []opts.PieData{
		{Name: "重叠", Value: r.Total()},
		{Name: "可分", Value: r.SampleCount - r.Total()},
	})

	page := components.NewPage()
	page.AddCharts(bar, pie)
	return page.Render(w)
}

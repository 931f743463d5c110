package render

import (
	"fmt"
	"io"
	"math"
	"net/http"

	"inclusion/grid"
	"inclusion/maths"
	"inclusion/types"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	echarts "github.com/go-echarts/go-echarts/v2/types"
)

// 色图
var (
	coolwarm = []string{"#3b4cc0", "#7b9ff9", "#c0d4f5", "#f2cbb7", "#ee8468", "#b40426"}
	viridis  = []string{"#440154", "#3b528b", "#21918c", "#5ec962", "#fde725"}
)

// Charts 网页交互图表
type Charts struct {
	logger
	Stride int // 抽样步长
}

// Name 输出名称
func (*Charts) Name() string { return "charts" }

// Filename 默认文件名
func (*Charts) Filename() string { return "fields.html" }

// Render 格式化
func (c *Charts) Render(w io.Writer, res *types.Result) error {
	g, rows, cols := grid.Downsample(res.Grid, c.Stride)
	f := res.Fields
	sub := func(m maths.Field) maths.Field { return maths.Downsample(m, rows, cols) }
	page := components.NewPage()
	page.SetPageTitle("Elliptical inclusion")
	page.AddCharts(
		heatMap("等效应力", "Von Mises σe (MPa)", g, sub(f.Seq), coolwarm),
		heatMap("应变 exx", "平面应变分量", g, sub(f.Exx), viridis),
		heatMap("应变 eyy", "平面应变分量", g, sub(f.Eyy), viridis),
		heatMap("应变 exy", "剪应变分量", g, sub(f.Exy), viridis),
		boundaryLine(res),
	)
	return page.Render(w)
}

// heatMap 以 (r, θ) 采样序号为坐标的热力图
func heatMap(title, subtitle string, g *types.Grid, z maths.Field, colors []string) *charts.HeatMap {
	lo, hi := maths.Range(z)
	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme:  echarts.ThemeWesteros,
			Width:  "900px",
			Height: "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: subtitle,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type:      "category",
			Name:      "r (m)",
			Data:      axisLabels(g.Radius, 1, "%.4f"),
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type:      "category",
			Name:      "θ (°)",
			Data:      axisLabels(g.Angle, 180/math.Pi, "%.1f"),
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
		}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        float32(lo),
			Max:        float32(hi),
			Orient:     "vertical",
			Right:      "10",
			Top:        "middle",
			InRange:    &opts.VisualMapInRange{Color: colors},
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	rows, cols := z.Dims()
	data := make([]opts.HeatMapData, 0, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			data = append(data, opts.HeatMapData{Value: [3]interface{}{j, i, z.At(i, j)}})
		}
	}
	hm.AddSeries(title, data)
	return hm
}

// boundaryLine 弹塑性界面半径随角度变化曲线
func boundaryLine(res *types.Result) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: echarts.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "弹塑性界面",
			Subtitle: fmt.Sprintf("σe > σy = %g MPa 的最大半径", res.Params.Yield),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:        "θ (°)",
			SplitNumber: 12,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:  "r (m)",
			Scale: opts.Bool(true),
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
	)
	b := res.Summary.Boundary
	items := make([]opts.LineData, len(b))
	for i, v := range b {
		if v.Plastic {
			items[i].Value = v.Radius
		} else {
			items[i].Value = "-"
		}
	}
	line.SetXAxis(axisLabels(res.Grid.Angle, 180/math.Pi, "%.1f"))
	line.AddSeries("r_p", items)
	return line
}

func axisLabels(v []float64, scale float64, format string) []string {
	out := make([]string, len(v))
	for i, x := range v {
		out[i] = fmt.Sprintf(format, x*scale)
	}
	return out
}

// Handler 发布到网页
func (c *Charts) Handler(res *types.Result) http.HandlerFunc {
	return Handler(c, res, "text/html; charset=utf-8")
}

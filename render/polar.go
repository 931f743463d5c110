package render

import (
	"image/color"
	"math"

	"inclusion/maths"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// xy 数据坐标点
type xy struct{ X, Y float64 }

// polarFill 在曲线网格上按色带填充单元，相当于 contourf。
// plotter.HeatMap 只支持矩形网格，极坐标网格需要逐单元绘制。
type polarFill struct {
	X, Y, Z  maths.Field
	Palette  palette.Palette
	Min, Max float64
}

// Plot 实现 plot.Plotter
func (pf *polarFill) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	colors := pf.Palette.Colors()
	rows, cols := pf.Z.Dims()
	quad := make([]vg.Point, 4)
	for i := 0; i < rows-1; i++ {
		for j := 0; j < cols-1; j++ {
			z := (pf.Z.At(i, j) + pf.Z.At(i, j+1) + pf.Z.At(i+1, j+1) + pf.Z.At(i+1, j)) / 4
			if math.IsNaN(z) {
				continue
			}
			for k, d := range corners {
				quad[k] = vg.Point{X: trX(pf.X.At(i+d[0], j+d[1])), Y: trY(pf.Y.At(i+d[0], j+d[1]))}
			}
			c.FillPolygon(colors[band(z, pf.Min, pf.Max, len(colors))], c.ClipPolygonXY(quad))
		}
	}
}

// DataRange 实现 plot.DataRanger
func (pf *polarFill) DataRange() (xmin, xmax, ymin, ymax float64) {
	return dataRange(pf.X, pf.Y)
}

// band 值 z 在 [lo, hi] 上均分 n 个色带中的序号
func band(z, lo, hi float64, n int) int {
	if !(hi > lo) {
		return 0
	}
	k := int(math.Floor((z - lo) / (hi - lo) * float64(n)))
	switch {
	case k < 0:
		return 0
	case k >= n:
		return n - 1
	}
	return k
}

// polarContour 在曲线网格上绘制等值线（marching squares）
type polarContour struct {
	X, Y, Z   maths.Field
	Levels    []float64
	LineStyle draw.LineStyle
}

// 单元四角：(i,j) (i,j+1) (i+1,j+1) (i+1,j)，第 k 条边由角 k 指向角 k+1
var corners = [4][2]int{{0, 0}, {0, 1}, {1, 1}, {1, 0}}

// Plot 实现 plot.Plotter
func (pc *polarContour) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	line := make([]vg.Point, 2)
	for _, seg := range pc.segments() {
		line[0] = vg.Point{X: trX(seg[0].X), Y: trY(seg[0].Y)}
		line[1] = vg.Point{X: trX(seg[1].X), Y: trY(seg[1].Y)}
		c.StrokeLines(pc.LineStyle, c.ClipLinesXY(line)...)
	}
}

// DataRange 实现 plot.DataRanger
func (pc *polarContour) DataRange() (xmin, xmax, ymin, ymax float64) {
	return dataRange(pc.X, pc.Y)
}

// segments 计算所有等值线线段（数据坐标）
func (pc *polarContour) segments() (segs [][2]xy) {
	rows, cols := pc.Z.Dims()
	for _, level := range pc.Levels {
		for i := 0; i < rows-1; i++ {
			for j := 0; j < cols-1; j++ {
				segs = pc.cell(segs, level, i, j)
			}
		}
	}
	return segs
}

func (pc *polarContour) cell(segs [][2]xy, level float64, i, j int) [][2]xy {
	var (
		v [4]float64
		p [4]xy
	)
	for k, d := range corners {
		v[k] = pc.Z.At(i+d[0], j+d[1])
		if math.IsNaN(v[k]) {
			return segs
		}
		p[k] = xy{pc.X.At(i+d[0], j+d[1]), pc.Y.At(i+d[0], j+d[1])}
	}
	cross := make([]xy, 0, 4)
	for k := 0; k < 4; k++ {
		n := (k + 1) % 4
		if (v[k] >= level) == (v[n] >= level) {
			continue
		}
		t := (level - v[k]) / (v[n] - v[k])
		cross = append(cross, xy{p[k].X + t*(p[n].X-p[k].X), p[k].Y + t*(p[n].Y-p[k].Y)})
	}
	switch len(cross) {
	case 2:
		segs = append(segs, [2]xy{cross[0], cross[1]})
	case 4:
		// 鞍点：用单元中心值判断连接方式
		center := (v[0] + v[1] + v[2] + v[3]) / 4
		if (center >= level) == (v[0] >= level) {
			segs = append(segs, [2]xy{cross[0], cross[1]}, [2]xy{cross[2], cross[3]})
		} else {
			segs = append(segs, [2]xy{cross[3], cross[0]}, [2]xy{cross[1], cross[2]})
		}
	}
	return segs
}

func dataRange(x, y maths.Field) (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = maths.Range(x)
	ymin, ymax = maths.Range(y)
	return xmin, xmax, ymin, ymax
}

// 等值线样式
var (
	levelStyle    = draw.LineStyle{Color: color.Black, Width: vg.Points(1)}
	boundaryStyle = draw.LineStyle{Color: color.Black, Width: vg.Points(2)}
)

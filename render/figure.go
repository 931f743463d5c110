package render

import (
	"fmt"
	"io"
	"math"

	"inclusion/grid"
	"inclusion/maths"
	"inclusion/types"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	_ "gonum.org/v1/plot/vg/vgeps"
	_ "gonum.org/v1/plot/vg/vgimg"
	_ "gonum.org/v1/plot/vg/vgpdf"
	_ "gonum.org/v1/plot/vg/vgsvg"
)

// 填充色带数
const fillBands = 100

// Panel 一个等值线子图：直角坐标网格、标量场与可选掩码
type Panel struct {
	Title string // 子图标题
	Label string // 色标标签

	X, Y maths.Field // 直角坐标
	Z    maths.Field // 标量场
	Mask maths.Field // 可选，在 0.5 处绘制界面

	Lines    []float64               // 可选等值线高度
	Bands    int                     // 填充色带数
	ColorMap func() palette.ColorMap // 色图
}

// Plots 构建子图与色标
func (pn Panel) Plots() (main, bar *plot.Plot) {
	lo, hi := maths.Range(pn.Z)
	if !(hi > lo) {
		hi = lo + 1
	}
	cm := pn.ColorMap()
	cm.SetMin(lo)
	cm.SetMax(hi)
	bands := max(pn.Bands, 2)

	main = plot.New()
	main.Title.Text = pn.Title
	main.X.Label.Text = "X (m)"
	main.Y.Label.Text = "Y (m)"
	main.Add(&polarFill{X: pn.X, Y: pn.Y, Z: pn.Z, Palette: cm.Palette(bands), Min: lo, Max: hi})
	if len(pn.Lines) > 0 {
		main.Add(&polarContour{X: pn.X, Y: pn.Y, Z: pn.Z, Levels: pn.Lines, LineStyle: levelStyle})
	}
	if pn.Mask != nil {
		main.Add(&polarContour{X: pn.X, Y: pn.Y, Z: pn.Mask, Levels: []float64{0.5}, LineStyle: boundaryStyle})
	}
	equalAspect(main, pn.X, pn.Y)

	bar = plot.New()
	bar.Title.Text = " "
	bar.Add(&plotter.ColorBar{ColorMap: cm, Vertical: true})
	bar.HideX()
	bar.Y.Label.Text = pn.Label
	bar.Y.Padding = 0
	return main, bar
}

// equalAspect 两个坐标轴取相同范围，配合方形画布实现等比例
func equalAspect(p *plot.Plot, x, y maths.Field) {
	xmin, xmax, ymin, ymax := dataRange(x, y)
	cx, cy := (xmin+xmax)/2, (ymin+ymax)/2
	half := math.Max(xmax-xmin, ymax-ymin) / 2
	p.X.Min, p.X.Max = cx-half, cx+half
	p.Y.Min, p.Y.Max = cy-half, cy+half
}

// Figure 若干子图横向排列的静态图
type Figure struct {
	logger
	name, file string

	Format   string    // 图片格式
	Stride   int       // 网格抽样步长
	Width    vg.Length // 每个子图宽度
	Height   vg.Length // 图高度
	BarWidth vg.Length // 色标宽度

	panels func(res *types.Result, g *types.Grid, rows, cols []int) []Panel
}

// NewStressFigure 等效应力云图，含 10 条等值线与弹塑性界面
func NewStressFigure(format string) *Figure {
	return &Figure{
		name:     "stress",
		file:     "sigma_e",
		Format:   format,
		Stride:   1,
		Width:    16 * vg.Centimeter,
		Height:   14 * vg.Centimeter,
		BarWidth: 2.5 * vg.Centimeter,
		panels:   stressPanels,
	}
}

// NewStrainFigure 三个应变分量的云图
func NewStrainFigure(format string) *Figure {
	return &Figure{
		name:     "strain",
		file:     "strain",
		Format:   format,
		Stride:   1,
		Width:    16 * vg.Centimeter,
		Height:   14 * vg.Centimeter,
		BarWidth: 2.5 * vg.Centimeter,
		panels:   strainPanels,
	}
}

func stressPanels(res *types.Result, g *types.Grid, rows, cols []int) []Panel {
	seq := maths.Downsample(res.Fields.Seq, rows, cols)
	_, hi := maths.Range(seq)
	return []Panel{{
		Title:    "Von Mises equivalent stress",
		Label:    "σe (MPa)",
		X:        g.X,
		Y:        g.Y,
		Z:        seq,
		Mask:     maths.Downsample(res.Fields.Plastic, rows, cols),
		Lines:    maths.LinSpace(0, hi, 10),
		Bands:    fillBands,
		ColorMap: func() palette.ColorMap { return moreland.SmoothBlueRed() },
	}}
}

func strainPanels(res *types.Result, g *types.Grid, rows, cols []int) []Panel {
	f := res.Fields
	panel := func(title string, z maths.Field) Panel {
		return Panel{
			Title:    "Strain " + title,
			Label:    title,
			X:        g.X,
			Y:        g.Y,
			Z:        maths.Downsample(z, rows, cols),
			Bands:    fillBands,
			ColorMap: moreland.Kindlmann,
		}
	}
	return []Panel{panel("exx", f.Exx), panel("eyy", f.Eyy), panel("exy", f.Exy)}
}

// Name 输出名称
func (f *Figure) Name() string { return f.name }

// Filename 默认文件名
func (f *Figure) Filename() string { return f.file + "." + f.Format }

// Render 绘制并按格式写出
func (f *Figure) Render(w io.Writer, res *types.Result) error {
	g, rows, cols := grid.Downsample(res.Grid, f.Stride)
	panels := f.panels(res, g, rows, cols)
	width := vg.Length(len(panels)) * f.Width
	c, err := draw.NewFormattedCanvas(width, f.Height, f.Format)
	if err != nil {
		return fmt.Errorf("%w: %v", types.ErrUnknownOutput, err)
	}
	dc := draw.New(c)
	tiles := draw.Tiles{
		Rows:      1,
		Cols:      len(panels),
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
		PadX:      vg.Millimeter * 4,
	}
	for k, pn := range panels {
		main, bar := pn.Plots()
		tile := tiles.At(dc, k, 0)
		tw := tile.Max.X - tile.Min.X
		main.Draw(draw.Crop(tile, 0, -f.BarWidth, 0, 0))
		bar.Draw(draw.Crop(tile, tw-f.BarWidth, 0, 0, 0))
	}
	_, err = c.WriteTo(w)
	return err
}

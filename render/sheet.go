package render

import (
	"fmt"
	"io"
	"math"

	"inclusion/grid"
	"inclusion/maths"
	"inclusion/types"

	"github.com/xuri/excelize/v2"
)

// Sheet 电子表格输出，每个场量一张工作表
type Sheet struct {
	logger
	Stride int // 抽样步长
}

// Name 输出名称
func (*Sheet) Name() string { return "sheet" }

// Filename 默认文件名
func (*Sheet) Filename() string { return "fields.xlsx" }

// Render 写出工作簿
func (s *Sheet) Render(w io.Writer, res *types.Result) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.Error(err)
		}
	}()
	if err := f.SetSheetName("Sheet1", "summary"); err != nil {
		return err
	}
	if err := summarySheet(f, "summary", res); err != nil {
		return err
	}
	g, rows, cols := grid.Downsample(res.Grid, s.Stride)
	fs := res.Fields
	for _, v := range []struct {
		name string
		data maths.Field
	}{
		{"seq", fs.Seq},
		{"sxx", fs.Sxx},
		{"syy", fs.Syy},
		{"sxy", fs.Sxy},
		{"exx", fs.Exx},
		{"eyy", fs.Eyy},
		{"exy", fs.Exy},
		{"plastic", fs.Plastic},
	} {
		if _, err := f.NewSheet(v.name); err != nil {
			return err
		}
		if err := fieldSheet(f, v.name, g, maths.Downsample(v.data, rows, cols)); err != nil {
			return fmt.Errorf("%s: %w", v.name, err)
		}
	}
	f.SetActiveSheet(0)
	return f.Write(w)
}

// summarySheet 参数与摘要
func summarySheet(f *excelize.File, sheet string, res *types.Result) error {
	p, sum := res.Params, res.Summary
	rows := [][]interface{}{
		{"参数", "值"},
		{"a (m)", p.A},
		{"b (m)", p.B},
		{"P1 (MPa)", p.P1},
		{"P2 (MPa)", p.P2},
		{"P0 (MPa)", p.P0},
		{"G (MPa)", p.G},
		{"G1 (MPa)", p.G1},
		{"E (MPa)", p.E},
		{"ν", p.Nu},
		{"σy (MPa)", p.Yield},
		{"NR", p.NR},
		{"NTheta", p.NTheta},
		{},
		{"摘要", "值"},
		{"max σe (MPa)", sum.MaxSeq.Value},
		{"max σe r (m)", sum.MaxSeq.R},
		{"max σe θ (°)", sum.MaxSeq.Theta * 180 / math.Pi},
		{"min σe (MPa)", sum.MinSeq.Value},
		{"mean σe (MPa)", sum.MeanSeq},
		{"std σe (MPa)", sum.StdSeq},
		{"塑性点数", sum.PlasticCount},
		{"塑性比例", sum.PlasticFraction},
		{"应力集中系数", sum.Concentration},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

// fieldSheet 首行为半径，首列为角度
func fieldSheet(f *excelize.File, sheet string, g *types.Grid, z maths.Field) error {
	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return err
	}
	err = sw.SetPanes(&excelize.Panes{
		Freeze:      true,
		XSplit:      1,
		YSplit:      1,
		TopLeftCell: "B2",
		ActivePane:  "bottomRight",
	})
	if err != nil {
		return err
	}
	head := make([]interface{}, 0, len(g.Radius)+1)
	head = append(head, "θ \\ r")
	for _, r := range g.Radius {
		head = append(head, r)
	}
	if err := sw.SetRow("A1", head); err != nil {
		return err
	}
	_, c := z.Dims()
	for i, t := range g.Angle {
		row := make([]interface{}, 0, c+1)
		row = append(row, t)
		for j := 0; j < c; j++ {
			row = append(row, z.At(i, j))
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, row); err != nil {
			return err
		}
	}
	return sw.Flush()
}

package field

import (
	"inclusion/grid"
	"inclusion/maths"
	"inclusion/types"

	"gonum.org/v1/gonum/stat"
)

// Summarize 统计等效应力与塑性区
func Summarize(p types.Params, g *types.Grid, f *types.Fields) types.Summary {
	var s types.Summary
	if i, j, _ := maths.ArgMax(f.Seq); i >= 0 {
		s.MaxSeq = grid.Point(g, f.Seq, i, j)
	}
	if i, j, _ := maths.ArgMin(f.Seq); i >= 0 {
		s.MinSeq = grid.Point(g, f.Seq, i, j)
	}
	s.MeanSeq, s.StdSeq = stat.MeanStdDev(maths.Values(f.Seq), nil)
	rows, cols := f.Plastic.Dims()
	s.PlasticCount = f.Plastic.Count()
	s.PlasticFraction = float64(s.PlasticCount) / float64(rows*cols)
	if scale := p.LoadScale(); scale > 0 {
		s.Concentration = s.MaxSeq.Value / scale
	}
	s.Boundary = Boundary(g, f.Plastic)
	return s
}

// Boundary 每个角度上塑性点的最大半径
func Boundary(g *types.Grid, plastic *maths.Mask) []types.Boundary {
	rows, cols := plastic.Dims()
	out := make([]types.Boundary, rows)
	for i := 0; i < rows; i++ {
		out[i].Theta = g.Angle[i]
		for j := 0; j < cols; j++ {
			if !plastic.Get(i, j) {
				continue
			}
			if r := g.Radius[j]; !out[i].Plastic || r > out[i].Radius {
				out[i].Radius = r
			}
			out[i].Plastic = true
		}
	}
	return out
}

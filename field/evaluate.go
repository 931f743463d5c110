package field

import (
	"inclusion/maths"
	"inclusion/types"
)

// Evaluate 在网格上计算全部场量
func Evaluate(p types.Params, g *types.Grid) *types.Fields {
	sxx, syy, sxy := Stress(p, g)
	exx, eyy, exy := Strain(p, sxx, syy, sxy)
	srr, stt, srt := Polar(g.Theta, sxx, syy, sxy)
	seq := Equivalent(sxx, syy, sxy)
	return &types.Fields{
		Sxx:     sxx,
		Syy:     syy,
		Sxy:     sxy,
		Srr:     srr,
		Stt:     stt,
		Srt:     srt,
		Exx:     exx,
		Eyy:     eyy,
		Exy:     exy,
		Ezz:     maths.Apply2(sxx, syy, func(x, y float64) float64 { return StrainZZ(p, x, y) }),
		Seq:     seq,
		Plastic: Plastic(p, seq),
	}
}

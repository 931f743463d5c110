package field

import (
	"inclusion/maths"
	"inclusion/types"

	"gonum.org/v1/gonum/mat"
)

// StrainXX 平面应力胡克定律 exx = (σxx − ν·σyy)/E
func StrainXX(p types.Params, sxx, syy float64) float64 {
	return (sxx - p.Nu*syy) / p.E
}

// StrainYY eyy = (σyy − ν·σxx)/E
func StrainYY(p types.Params, sxx, syy float64) float64 {
	return (syy - p.Nu*sxx) / p.E
}

// StrainXY exy = σxy/G
func StrainXY(p types.Params, sxy float64) float64 {
	return sxy / p.G
}

// StrainZZ 平面应力下的面外应变 ezz = −ν(σxx+σyy)/E
func StrainZZ(p types.Params, sxx, syy float64) float64 {
	return -p.Nu * (sxx + syy) / p.E
}

// Strain 由应力场计算三个应变分量
func Strain(p types.Params, sxx, syy, sxy maths.Field) (exx, eyy, exy *mat.Dense) {
	exx = maths.Apply2(sxx, syy, func(x, y float64) float64 { return StrainXX(p, x, y) })
	eyy = maths.Apply2(sxx, syy, func(x, y float64) float64 { return StrainYY(p, x, y) })
	exy = maths.Apply(sxy, func(v float64) float64 { return StrainXY(p, v) })
	return exx, eyy, exy
}

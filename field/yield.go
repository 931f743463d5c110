package field

import (
	"math"

	"inclusion/maths"
	"inclusion/types"

	"gonum.org/v1/gonum/mat"
)

// 根号下允许的舍入负值
const radicandTolerance = 1e-9

// VonMises 平面应力 von Mises 等效应力
// σe = sqrt(σxx² + σyy² − σxx·σyy + 3·σxy²)
// 先按最大分量幅值归一化再开方，分量本身有限时平方不会溢出
func VonMises(sxx, syy, sxy float64) float64 {
	m := math.Max(math.Abs(sxx), math.Max(math.Abs(syy), math.Abs(sxy)))
	if m == 0 || math.IsNaN(m) || math.IsInf(m, 0) {
		return m
	}
	x, y, z := sxx/m, syy/m, sxy/m
	q := x*x + y*y - x*y + 3*z*z
	if q < 0 {
		// 二次型半正定，负值只可能来自舍入
		if q < -radicandTolerance*(x*x+y*y+3*z*z) {
			panic("von mises: negative radicand")
		}
		return 0
	}
	return m * math.Sqrt(q)
}

// Equivalent 在网格上计算等效应力
func Equivalent(sxx, syy, sxy maths.Field) *mat.Dense {
	return maths.Apply3(sxx, syy, sxy, VonMises)
}

// Plastic 塑性区掩码，逐点 σe > σy
func Plastic(p types.Params, seq maths.Field) *maths.Mask {
	return maths.Compare(seq, func(v float64) bool { return v > p.Yield })
}

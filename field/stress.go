package field

import (
	"math"

	"inclusion/maths"
	"inclusion/types"

	"gonum.org/v1/gonum/mat"
)

// modulation 返回 (a/r)²
func modulation(p types.Params, r float64) float64 {
	q := p.A / r
	return q * q
}

// StressXX σxx = P1·(1 + (a/r)²·cos2θ) + P0·(a/r)²·cos2θ·(G/G1)
func StressXX(p types.Params, r, theta float64) float64 {
	m, c := modulation(p, r), math.Cos(2*theta)
	return p.P1*(1+m*c) + p.P0*m*c*p.ModulusRatio()
}

// StressYY σyy = P2·(1 − (a/r)²·cos2θ) + P0·(a/r)²·cos2θ·(G/G1)
func StressYY(p types.Params, r, theta float64) float64 {
	m, c := modulation(p, r), math.Cos(2*theta)
	return p.P2*(1-m*c) + p.P0*m*c*p.ModulusRatio()
}

// StressXY σxy = −P0·(a/r)²·sin2θ·(G/G1)
func StressXY(p types.Params, r, theta float64) float64 {
	return -p.P0 * modulation(p, r) * math.Sin(2*theta) * p.ModulusRatio()
}

// Stress 在网格上计算三个应力分量
func Stress(p types.Params, g *types.Grid) (sxx, syy, sxy *mat.Dense) {
	sxx = maths.Apply2(g.R, g.Theta, func(r, t float64) float64 { return StressXX(p, r, t) })
	syy = maths.Apply2(g.R, g.Theta, func(r, t float64) float64 { return StressYY(p, r, t) })
	sxy = maths.Apply2(g.R, g.Theta, func(r, t float64) float64 { return StressXY(p, r, t) })
	return sxx, syy, sxy
}

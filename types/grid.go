package types

import "gonum.org/v1/gonum/mat"

// Grid 极坐标采样网格。
// 行 i 对应角向采样 Angle[i]，列 j 对应径向采样 Radius[j]。
type Grid struct {
	Radius []float64 // 径向采样 r_j
	Angle  []float64 // 角向采样 θ_i

	R, Theta *mat.Dense // 极坐标
	X, Y     *mat.Dense // 直角坐标 X = R·cosΘ, Y = R·sinΘ
}

// Dims 网格形状（角向采样数，径向采样数）
func (g *Grid) Dims() (r, c int) { return len(g.Angle), len(g.Radius) }

package grid

import (
	"math"

	"inclusion/maths"
	"inclusion/types"
)

// New 按参数构建极坐标网格：r 由 a 到 b，θ 由 0 到 2π，两端点包含
func New(p types.Params) (*types.Grid, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return Build(p.A, p.B, p.NR, 0, 2*math.Pi, p.NTheta), nil
}

// Build 构建 [r0,r1]×[t0,t1] 上 nr×nt 个采样的网格，不做参数校验
func Build(r0, r1 float64, nr int, t0, t1 float64, nt int) *types.Grid {
	radius := maths.LinSpace(r0, r1, nr)
	angle := maths.LinSpace(t0, t1, nt)
	return fromAxes(radius, angle)
}

func fromAxes(radius, angle []float64) *types.Grid {
	R, Theta := maths.MeshGrid(radius, angle)
	X := maths.Apply2(R, Theta, func(r, t float64) float64 { return r * math.Cos(t) })
	Y := maths.Apply2(R, Theta, func(r, t float64) float64 { return r * math.Sin(t) })
	return &types.Grid{
		Radius: radius,
		Angle:  angle,
		R:      R,
		Theta:  Theta,
		X:      X,
		Y:      Y,
	}
}

// Nearest 返回与直角坐标 (x, y) 最近的采样索引。
// 点落在径向区间外时 ok 为 false。
func Nearest(g *types.Grid, x, y float64) (i, j int, ok bool) {
	nt, nr := g.Dims()
	r0, r1 := g.Radius[0], g.Radius[nr-1]
	t0, t1 := g.Angle[0], g.Angle[nt-1]
	r := math.Hypot(x, y)
	if r < math.Min(r0, r1)-maths.Epsilon || r > math.Max(r0, r1)+maths.Epsilon {
		return -1, -1, false
	}
	t := math.Atan2(y, x)
	if t < t0 {
		t += 2 * math.Pi
	}
	j = clampIndex(math.Round((r-r0)/(r1-r0)*float64(nr-1)), nr)
	i = clampIndex(math.Round((t-t0)/(t1-t0)*float64(nt-1)), nt)
	return i, j, true
}

func clampIndex(v float64, n int) int {
	switch {
	case v < 0:
		return 0
	case v > float64(n-1):
		return n - 1
	}
	return int(v)
}

// Downsample 以步长 stride 抽取子网格，保留首尾采样
func Downsample(g *types.Grid, stride int) (*types.Grid, []int, []int) {
	nt, nr := g.Dims()
	rows, cols := maths.StrideIndex(nt, stride), maths.StrideIndex(nr, stride)
	sub := &types.Grid{
		Radius: pick(g.Radius, cols),
		Angle:  pick(g.Angle, rows),
		R:      maths.Downsample(g.R, rows, cols),
		Theta:  maths.Downsample(g.Theta, rows, cols),
		X:      maths.Downsample(g.X, rows, cols),
		Y:      maths.Downsample(g.Y, rows, cols),
	}
	return sub, rows, cols
}

func pick(s []float64, idx []int) []float64 {
	out := make([]float64, len(idx))
	for k, i := range idx {
		out[k] = s[i]
	}
	return out
}

// Point 读取网格上 (i, j) 处的采样点与场值
func Point(g *types.Grid, f maths.Field, i, j int) types.Point {
	return types.Point{
		Row:   i,
		Col:   j,
		R:     g.R.At(i, j),
		Theta: g.Theta.At(i, j),
		X:     g.X.At(i, j),
		Y:     g.Y.At(i, j),
		Value: f.At(i, j),
	}
}

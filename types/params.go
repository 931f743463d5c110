package types

import "math"

// Params 板与包含物的材料、几何和载荷参数。
// 一次计算中不可变，按值传递。
type Params struct {
	A     float64 `json:"a"`     // 包含物椭圆半轴 (m)
	B     float64 `json:"b"`     // 板椭圆半轴 (m)
	P1    float64 `json:"p1"`    // x 向外载荷 (MPa)
	P2    float64 `json:"p2"`    // y 向外载荷 (MPa)
	P0    float64 `json:"p0"`    // 包含物内压 (MPa)
	G     float64 `json:"g"`     // 板剪切模量 (MPa)
	G1    float64 `json:"g1"`    // 包含物剪切模量 (MPa)
	E     float64 `json:"e"`     // 板杨氏模量 (MPa)
	Nu    float64 `json:"nu"`    // 板泊松比
	Yield float64 `json:"yield"` // 屈服应力 (MPa)

	NR     int `json:"nr"`     // 径向采样数
	NTheta int `json:"ntheta"` // 角向采样数

	// AllowInverted 确认 b < a 时仍然计算，径向采样由 a 递减到 b
	AllowInverted bool `json:"allow_inverted"`
}

// Default 返回默认参数。
// 注意默认值 b < a，未确认 AllowInverted 时 Validate 会拒绝。
func Default() Params {
	return Params{
		A:      DefaultA,
		B:      DefaultB,
		P1:     DefaultP1,
		P2:     DefaultP2,
		P0:     DefaultP0,
		G:      DefaultG,
		G1:     DefaultG1,
		E:      DefaultE,
		Nu:     DefaultNu,
		Yield:  DefaultYield,
		NR:     DefaultSamples,
		NTheta: DefaultSamples,
	}
}

// Validate 校验参数，返回第一个错误
func (p Params) Validate() error {
	for _, v := range []struct {
		name  string
		value float64
	}{
		{"a", p.A}, {"b", p.B}, {"P1", p.P1}, {"P2", p.P2}, {"P0", p.P0},
		{"G", p.G}, {"G1", p.G1}, {"E", p.E}, {"nu", p.Nu}, {"yield", p.Yield},
	} {
		if math.IsNaN(v.value) || math.IsInf(v.value, 0) {
			return &ParamError{Name: v.name, Value: v.value, Wrapped: ErrNonFinite}
		}
	}
	switch {
	case p.A <= 0:
		return &ParamError{Name: "a", Value: p.A, Wrapped: ErrInvalidGeometry}
	case p.B <= 0 || p.B == p.A:
		return &ParamError{Name: "b", Value: p.B, Wrapped: ErrInvalidGeometry}
	case p.B < p.A && !p.AllowInverted:
		return &ParamError{Name: "b", Value: p.B, Wrapped: ErrInvertedDomain}
	case p.E <= 0:
		return &ParamError{Name: "E", Value: p.E, Wrapped: ErrInvalidMaterial}
	case p.G <= 0:
		return &ParamError{Name: "G", Value: p.G, Wrapped: ErrInvalidMaterial}
	case p.G1 <= 0:
		return &ParamError{Name: "G1", Value: p.G1, Wrapped: ErrInvalidMaterial}
	case p.Nu <= -1 || p.Nu > 0.5:
		return &ParamError{Name: "nu", Value: p.Nu, Wrapped: ErrInvalidMaterial}
	case p.Yield <= 0:
		return &ParamError{Name: "yield", Value: p.Yield, Wrapped: ErrInvalidMaterial}
	case p.NR < 2 || p.NR > MaxSamples:
		return &ParamError{Name: "nr", Value: float64(p.NR), Wrapped: ErrInvalidSamples}
	case p.NTheta < 2 || p.NTheta > MaxSamples:
		return &ParamError{Name: "ntheta", Value: float64(p.NTheta), Wrapped: ErrInvalidSamples}
	}
	for _, v := range []struct {
		name  string
		value float64
	}{{"P1", p.P1}, {"P2", p.P2}, {"P0", p.P0}} {
		if math.Abs(v.value) > MaxLoad {
			return &ParamError{Name: v.name, Value: v.value, Wrapped: ErrInvalidLoad}
		}
	}
	return nil
}

// Inverted 径向区间是否倒置（b < a）
func (p Params) Inverted() bool { return p.B < p.A }

// ModulusRatio 剪切模量比 G/G1
func (p Params) ModulusRatio() float64 { return p.G / p.G1 }

// RadialBounds 返回径向区间的下界与上界
func (p Params) RadialBounds() (lo, hi float64) {
	return math.Min(p.A, p.B), math.Max(p.A, p.B)
}

// LoadScale 外载荷的最大幅值，用于应力集中系数
func (p Params) LoadScale() float64 {
	return math.Max(math.Abs(p.P1), math.Abs(p.P2))
}

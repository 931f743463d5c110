package maths

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// TestLinSpace 测试等间距采样：端点精确包含，间距一致，支持递减
func TestLinSpace(t *testing.T) {
	v := LinSpace(0, 1, 5)
	want := []float64{0, 0.25, 0.5, 0.75, 1}
	for i := range want {
		if math.Abs(v[i]-want[i]) > Epsilon {
			t.Errorf("LinSpace[%d]: 期望 %v, 实际 %v", i, want[i], v[i])
		}
	}

	v = LinSpace(0.02, 0.015, 400)
	if v[0] != 0.02 || v[399] != 0.015 {
		t.Errorf("端点不精确: %v %v", v[0], v[399])
	}
	for i := 1; i < len(v); i++ {
		if !(v[i] < v[i-1]) {
			t.Fatalf("递减采样在 %d 处不单调", i)
		}
	}

	v = LinSpace(0, 2*math.Pi, 400)
	if v[399] != 2*math.Pi {
		t.Errorf("期望末端为 2π, 实际 %v", v[399])
	}

	defer func() {
		if recover() == nil {
			t.Errorf("n < 2 应当 panic")
		}
	}()
	LinSpace(0, 1, 1)
}

// TestMeshGrid 测试网格形状：行随 y 变化，列随 x 变化
func TestMeshGrid(t *testing.T) {
	x := []float64{1, 2, 3}
	y := []float64{10, 20}
	xx, yy := MeshGrid(x, y)
	if r, c := xx.Dims(); r != 2 || c != 3 {
		t.Fatalf("Expected 2x3, got %dx%d", r, c)
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			if xx.At(i, j) != x[j] || yy.At(i, j) != y[i] {
				t.Errorf("(%d,%d): xx=%v yy=%v", i, j, xx.At(i, j), yy.At(i, j))
			}
		}
	}
}

func TestApply(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	b := mat.NewDense(2, 2, []float64{10, 20, 30, 40})
	sq := Apply(a, func(v float64) float64 { return v * v })
	if sq.At(1, 1) != 16 {
		t.Errorf("Apply: 期望 16, 实际 %v", sq.At(1, 1))
	}
	sum := Apply2(a, b, func(x, y float64) float64 { return x + y })
	if sum.At(0, 1) != 22 {
		t.Errorf("Apply2: 期望 22, 实际 %v", sum.At(0, 1))
	}
	prod := Apply3(a, b, a, func(x, y, z float64) float64 { return x * y * z })
	if prod.At(1, 0) != 270 {
		t.Errorf("Apply3: 期望 270, 实际 %v", prod.At(1, 0))
	}
	if got := Values(a); len(got) != 4 || got[2] != 3 {
		t.Errorf("Values 应按行优先: %v", got)
	}

	defer func() {
		if recover() == nil {
			t.Errorf("维度不一致应当 panic")
		}
	}()
	Apply2(a, mat.NewDense(3, 2, nil), func(x, y float64) float64 { return x })
}

// TestArgMax 测试极值定位，NaN 被忽略
func TestArgMax(t *testing.T) {
	a := mat.NewDense(2, 3, []float64{1, math.NaN(), -5, 7, 2, 3})
	i, j, v := ArgMax(a)
	if i != 1 || j != 0 || v != 7 {
		t.Errorf("ArgMax: 期望 (1,0,7), 实际 (%d,%d,%v)", i, j, v)
	}
	i, j, v = ArgMin(a)
	if i != 0 || j != 2 || v != -5 {
		t.Errorf("ArgMin: 期望 (0,2,-5), 实际 (%d,%d,%v)", i, j, v)
	}
	lo, hi := Range(a)
	if lo != -5 || hi != 7 {
		t.Errorf("Range: 期望 [-5,7], 实际 [%v,%v]", lo, hi)
	}

	nan := mat.NewDense(1, 2, []float64{math.NaN(), math.NaN()})
	if i, j, v := ArgMax(nan); i != -1 || j != -1 || !math.IsNaN(v) {
		t.Errorf("全 NaN: 实际 (%d,%d,%v)", i, j, v)
	}
}

// TestMask 测试位图掩码的读写与计数
func TestMask(t *testing.T) {
	a := mat.NewDense(3, 30, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 30; j++ {
			a.Set(i, j, float64(i*30+j))
		}
	}
	m := Compare(a, func(v float64) bool { return v > 49.5 })
	if r, c := m.Dims(); r != 3 || c != 30 {
		t.Fatalf("Expected 3x30, got %dx%d", r, c)
	}
	if m.Count() != 40 {
		t.Errorf("Count: 期望 40, 实际 %d", m.Count())
	}
	if m.Get(1, 19) || !m.Get(1, 20) {
		t.Errorf("阈值附近的掩码不正确")
	}
	if m.At(2, 29) != 1 || m.At(0, 0) != 0 {
		t.Errorf("At 应返回 0/1")
	}

	m.Set(0, 0, true)
	m.Set(2, 29, false)
	if !m.Get(0, 0) || m.Get(2, 29) || m.Count() != 40 {
		t.Errorf("Set 后状态不正确")
	}
	d := m.Dense()
	if d.At(0, 0) != 1 || d.At(1, 0) != 0 {
		t.Errorf("Dense 转换不正确")
	}

	defer func() {
		if recover() == nil {
			t.Errorf("越界应当 panic")
		}
	}()
	m.Get(3, 0)
}

// TestStride 测试抽样保留首尾
func TestStride(t *testing.T) {
	idx := StrideIndex(10, 4)
	want := []int{0, 4, 8, 9}
	if len(idx) != len(want) {
		t.Fatalf("StrideIndex: 期望 %v, 实际 %v", want, idx)
	}
	for k := range want {
		if idx[k] != want[k] {
			t.Errorf("StrideIndex: 期望 %v, 实际 %v", want, idx)
		}
	}
	if idx := StrideIndex(9, 4); idx[len(idx)-1] != 8 || len(idx) != 3 {
		t.Errorf("末端已在步长上时不应重复: %v", idx)
	}
	if idx := StrideIndex(5, 0); len(idx) != 5 {
		t.Errorf("步长小于 1 按 1 处理: %v", idx)
	}

	a := mat.NewDense(3, 4, []float64{
		0, 1, 2, 3,
		4, 5, 6, 7,
		8, 9, 10, 11,
	})
	sub := Downsample(a, []int{0, 2}, []int{1, 3})
	if sub.At(0, 0) != 1 || sub.At(1, 1) != 11 {
		t.Errorf("Downsample 结果不正确: %v", mat.Formatted(sub))
	}
}

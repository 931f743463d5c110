package maths

import "gonum.org/v1/gonum/mat"

// Apply 逐元素计算 fn(a)
func Apply(a Field, fn func(v float64) float64) *mat.Dense {
	r, c := checkDims(a)
	dst := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		row := dst.RawRowView(i)
		for j := range row {
			row[j] = fn(a.At(i, j))
		}
	}
	return dst
}

// Apply2 逐元素计算 fn(a, b)
func Apply2(a, b Field, fn func(x, y float64) float64) *mat.Dense {
	r, c := checkDims(a, b)
	dst := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		row := dst.RawRowView(i)
		for j := range row {
			row[j] = fn(a.At(i, j), b.At(i, j))
		}
	}
	return dst
}

// Apply3 逐元素计算 fn(a, b, d)
func Apply3(a, b, d Field, fn func(x, y, z float64) float64) *mat.Dense {
	r, c := checkDims(a, b, d)
	dst := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		row := dst.RawRowView(i)
		for j := range row {
			row[j] = fn(a.At(i, j), b.At(i, j), d.At(i, j))
		}
	}
	return dst
}

// Values 按行优先顺序复制场数据
func Values(a Field) []float64 {
	r, c := a.Dims()
	out := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out = append(out, a.At(i, j))
		}
	}
	return out
}

// Range 返回场的最小值和最大值，忽略 NaN
func Range(a Field) (lo, hi float64) {
	_, _, lo = ArgMin(a)
	_, _, hi = ArgMax(a)
	return lo, hi
}

package maths

import "gonum.org/v1/gonum/mat"

// StrideIndex 以步长 stride 抽取 [0, n) 的索引，始终保留首尾
func StrideIndex(n, stride int) []int {
	if stride < 1 {
		stride = 1
	}
	idx := make([]int, 0, n/stride+2)
	for i := 0; i < n; i += stride {
		idx = append(idx, i)
	}
	if n > 0 && idx[len(idx)-1] != n-1 {
		idx = append(idx, n-1)
	}
	return idx
}

// Downsample 按行、列索引抽取子场
func Downsample(a Field, rows, cols []int) *mat.Dense {
	dst := mat.NewDense(len(rows), len(cols), nil)
	for i, ri := range rows {
		for j, cj := range cols {
			dst.Set(i, j, a.At(ri, cj))
		}
	}
	return dst
}

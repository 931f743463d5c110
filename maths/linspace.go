package maths

import "gonum.org/v1/gonum/floats"

// LinSpace 返回 [start, end] 上 n 个等间距采样点，两端点精确包含。
// start > end 时采样点递减。
func LinSpace(start, end float64, n int) []float64 {
	if n < 2 {
		panic("linspace: need at least two samples")
	}
	dst := floats.Span(make([]float64, n), start, end)
	// 消除累计舍入误差
	dst[0], dst[n-1] = start, end
	return dst
}

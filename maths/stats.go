package maths

import "math"

// ArgMax 返回最大值及其位置，忽略 NaN。
// 全部为 NaN 时返回 (-1, -1, NaN)。
func ArgMax(a Field) (i, j int, v float64) {
	return argBest(a, func(x, best float64) bool { return x > best })
}

// ArgMin 返回最小值及其位置，忽略 NaN
func ArgMin(a Field) (i, j int, v float64) {
	return argBest(a, func(x, best float64) bool { return x < best })
}

func argBest(a Field, better func(x, best float64) bool) (bi, bj int, best float64) {
	bi, bj, best = -1, -1, math.NaN()
	r, c := a.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			x := a.At(i, j)
			if math.IsNaN(x) {
				continue
			}
			if bi < 0 || better(x, best) {
				bi, bj, best = i, j, x
			}
		}
	}
	return bi, bj, best
}

package maths

import "gonum.org/v1/gonum/mat"

// 浮点比较阈值
const Epsilon = 1e-12

// Field 二维标量场只读接口。
// 行对应角度采样，列对应径向采样。
type Field interface {
	Dims() (r, c int) // 行数与列数
	At(i, j int) float64
}

var (
	_ Field = (*mat.Dense)(nil)
	_ Field = (*Mask)(nil)
)

// checkDims 检查所有场维度一致，返回共同维度
func checkDims(fields ...Field) (r, c int) {
	r, c = fields[0].Dims()
	for _, f := range fields[1:] {
		if fr, fc := f.Dims(); fr != r || fc != c {
			panic("dimension mismatch")
		}
	}
	return r, c
}

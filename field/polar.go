package field

import (
	"math"

	"inclusion/maths"

	"gonum.org/v1/gonum/mat"
)

// PolarStress 将直角坐标应力旋转到角度 θ 的极坐标系
func PolarStress(theta, sxx, syy, sxy float64) (srr, stt, srt float64) {
	s, c := math.Sincos(theta)
	ss, cc, cs := s*s, c*c, c*s
	srr = cc*sxx + ss*syy + 2*cs*sxy
	stt = ss*sxx + cc*syy - 2*cs*sxy
	srt = -cs*sxx + cs*syy + (cc-ss)*sxy
	return srr, stt, srt
}

// Polar 在网格上计算极坐标应力分量
func Polar(theta, sxx, syy, sxy maths.Field) (srr, stt, srt *mat.Dense) {
	r, c := theta.Dims()
	srr = mat.NewDense(r, c, nil)
	stt = mat.NewDense(r, c, nil)
	srt = mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			a, b, d := PolarStress(theta.At(i, j), sxx.At(i, j), syy.At(i, j), sxy.At(i, j))
			srr.Set(i, j, a)
			stt.Set(i, j, b)
			srt.Set(i, j, d)
		}
	}
	return srr, stt, srt
}

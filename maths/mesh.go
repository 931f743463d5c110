package maths

import "gonum.org/v1/gonum/mat"

// MeshGrid 由两个一维坐标构建网格。
// 返回矩阵形状为 len(y)×len(x)：xx 沿列变化，yy 沿行变化。
func MeshGrid(x, y []float64) (xx, yy *mat.Dense) {
	rows, cols := len(y), len(x)
	xx = mat.NewDense(rows, cols, nil)
	yy = mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		xx.SetRow(i, x)
		row := yy.RawRowView(i)
		for j := range row {
			row[j] = y[i]
		}
	}
	return xx, yy
}

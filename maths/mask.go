package maths

import (
	"math/bits"

	"gonum.org/v1/gonum/mat"
)

// Mask 二维布尔掩码，与网格同形。
// 按行优先顺序以位图存储。
type Mask struct {
	rows, cols int
	bits       []uint64
}

// NewMask 创建全 false 掩码
func NewMask(rows, cols int) *Mask {
	n := rows * cols
	return &Mask{rows: rows, cols: cols, bits: make([]uint64, (n+63)/64)}
}

// Compare 对场逐元素求 fn(v)，得到掩码
func Compare(a Field, fn func(v float64) bool) *Mask {
	r, c := a.Dims()
	m := NewMask(r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if fn(a.At(i, j)) {
				m.set(i*c+j, true)
			}
		}
	}
	return m
}

// Dims 返回行列数
func (m *Mask) Dims() (r, c int) { return m.rows, m.cols }

func (m *Mask) index(i, j int) int {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic("mask: index out of range")
	}
	return i*m.cols + j
}

func (m *Mask) set(bit int, flag bool) {
	index, offset := bit/64, uint(bit%64)
	if flag {
		m.bits[index] |= 1 << offset
	} else {
		m.bits[index] &^= 1 << offset
	}
}

// Get 获取指定位置的布尔值
func (m *Mask) Get(i, j int) bool {
	bit := m.index(i, j)
	return m.bits[bit/64]&(1<<uint(bit%64)) != 0
}

// Set 设置指定位置的布尔值
func (m *Mask) Set(i, j int, v bool) { m.set(m.index(i, j), v) }

// At 以 0/1 数值形式读取，用于等值线绘制
func (m *Mask) At(i, j int) float64 {
	if m.Get(i, j) {
		return 1
	}
	return 0
}

// Count 统计 true 的数量
func (m *Mask) Count() (n int) {
	for _, w := range m.bits {
		n += bits.OnesCount64(w)
	}
	return n
}

// Dense 转换为 0/1 稠密矩阵
func (m *Mask) Dense() *mat.Dense {
	return Apply(m, func(v float64) float64 { return v })
}

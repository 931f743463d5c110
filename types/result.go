package types

import (
	"inclusion/maths"

	"gonum.org/v1/gonum/mat"
)

// Fields 网格上的场量，全部与 Grid 同形
type Fields struct {
	Sxx, Syy, Sxy *mat.Dense // 直角坐标应力
	Srr, Stt, Srt *mat.Dense // 极坐标应力
	Exx, Eyy, Exy *mat.Dense // 平面应变分量
	Ezz           *mat.Dense // 平面应力下的面外应变
	Seq           *mat.Dense // von Mises 等效应力
	Plastic       *maths.Mask
}

// Point 场中的一个采样点
type Point struct {
	Row   int     `json:"row"`
	Col   int     `json:"col"`
	R     float64 `json:"r"`
	Theta float64 `json:"theta"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Value float64 `json:"value"`
}

// Boundary 某一角度上的弹塑性界面
type Boundary struct {
	Theta   float64 `json:"theta"`
	Radius  float64 `json:"radius"`  // 该角度上等效应力超过屈服应力的最大半径
	Plastic bool    `json:"plastic"` // 该角度上是否存在塑性点
}

// Summary 计算结果摘要
type Summary struct {
	MaxSeq          Point      `json:"max_seq"`
	MinSeq          Point      `json:"min_seq"`
	MeanSeq         float64    `json:"mean_seq"`
	StdSeq          float64    `json:"std_seq"`
	PlasticCount    int        `json:"plastic_count"`
	PlasticFraction float64    `json:"plastic_fraction"`
	Concentration   float64    `json:"concentration"` // max σe / max(|P1|,|P2|)
	Boundary        []Boundary `json:"boundary"`
}

// Result 一次计算的完整结果
type Result struct {
	Params  Params
	Grid    *Grid
	Fields  *Fields
	Summary Summary
}

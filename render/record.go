package render

import (
	"encoding/json"
	"io"

	"inclusion/maths"
	"inclusion/types"
)

// Record 计算结果记录
type Record struct {
	logger
	Full bool // 是否写出完整场数据
}

// document JSON 文档结构
type document struct {
	Params  types.Params           `json:"params"`
	Summary types.Summary          `json:"summary"`
	Radius  []float64              `json:"radius,omitempty"`
	Angle   []float64              `json:"angle,omitempty"`
	Fields  map[string][][]float64 `json:"fields,omitempty"`
}

// Name 输出名称
func (*Record) Name() string { return "record" }

// Filename 默认文件名
func (*Record) Filename() string { return "fields.json" }

// Render 格式和输出内容
func (list *Record) Render(w io.Writer, res *types.Result) error {
	doc := document{Params: res.Params, Summary: res.Summary}
	if list.Full {
		f := res.Fields
		doc.Radius = res.Grid.Radius
		doc.Angle = res.Grid.Angle
		doc.Fields = map[string][][]float64{
			"sxx":     rowsOf(f.Sxx),
			"syy":     rowsOf(f.Syy),
			"sxy":     rowsOf(f.Sxy),
			"srr":     rowsOf(f.Srr),
			"stt":     rowsOf(f.Stt),
			"srt":     rowsOf(f.Srt),
			"exx":     rowsOf(f.Exx),
			"eyy":     rowsOf(f.Eyy),
			"exy":     rowsOf(f.Exy),
			"ezz":     rowsOf(f.Ezz),
			"seq":     rowsOf(f.Seq),
			"plastic": rowsOf(f.Plastic),
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// rowsOf 按行展开，行对应角度
func rowsOf(a maths.Field) [][]float64 {
	r, c := a.Dims()
	out := make([][]float64, r)
	for i := 0; i < r; i++ {
		out[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			out[i][j] = a.At(i, j)
		}
	}
	return out
}

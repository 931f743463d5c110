package inclusion

import (
	"bufio"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"

	"inclusion/field"
	"inclusion/grid"
	"inclusion/types"
)

// Plate 含椭圆包含物的板
type Plate struct {
	types.Params
}

// NewPlate 以默认参数初始化
func NewPlate() *Plate {
	return &Plate{Params: types.Default()}
}

// Load 加载 dotenv 格式参数文件，文件与环境中缺失的键保留当前值
func (pl *Plate) Load(filenames ...string) error {
	values, err := types.ReadValues(filenames...)
	if err != nil {
		return err
	}
	p, err := values.Params(pl.Params)
	if err != nil {
		return err
	}
	pl.Params = p
	return nil
}

// Export 导出 dotenv 格式参数文件
func (pl *Plate) Export(filename string) error {
	text, err := pl.Params.Export()
	if err != nil {
		return err
	}
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	writer := bufio.NewWriter(file)
	writer.WriteString(text)
	writer.WriteRune('\n')
	return writer.Flush()
}

// Analyze 构建网格并计算全部场量
func (pl *Plate) Analyze() (*types.Result, error) {
	return Analyze(pl.Params)
}

// Analyze 参数校验、网格构建、场量计算与统计
func Analyze(p types.Params) (*types.Result, error) {
	g, err := grid.New(p)
	if err != nil {
		return nil, fmt.Errorf("参数校验失败: %w", err)
	}
	f := field.Evaluate(p, g)
	sum := field.Summarize(p, g, f)
	for _, v := range []float64{sum.MaxSeq.Value, sum.MeanSeq, sum.StdSeq} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("等效应力溢出: %w", types.ErrNonFinite)
		}
	}
	return &types.Result{
		Params:  p,
		Grid:    g,
		Fields:  f,
		Summary: sum,
	}, nil
}

// Render 将结果交给各输出器，写入 dir 目录，返回写出的文件列表
func Render(res *types.Result, dir string, renderers ...types.Renderer) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	files := make([]string, 0, len(renderers))
	for _, r := range renderers {
		name := filepath.Join(dir, r.Filename())
		if err := renderFile(res, name, r); err != nil {
			r.Error(err)
			return files, fmt.Errorf("%s 输出失败: %w", r.Name(), err)
		}
		log.Printf("%s -> %s", r.Name(), name)
		files = append(files, name)
	}
	return files, nil
}

func renderFile(res *types.Result, name string, r types.Renderer) error {
	file, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := r.Render(file, res); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

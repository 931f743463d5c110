package render

import (
	"bytes"
	"fmt"
	"log"
	"net/http"

	"inclusion/types"
)

// Options 输出选项
type Options struct {
	Format string // 图片格式：png、svg、pdf、eps、jpg、tif
	Stride int    // 网页与表格输出的抽样步长
	Full   bool   // JSON 记录是否包含完整场数据
}

// DefaultOptions 默认输出选项
func DefaultOptions() Options {
	return Options{Format: "png", Stride: 4}
}

// Names 支持的输出名称
var Names = []string{"stress", "strain", "charts", "record", "sheet", "report"}

// New 按名称创建输出器
func New(name string, opt Options) (types.Renderer, error) {
	switch name {
	case "stress":
		return NewStressFigure(opt.Format), nil
	case "strain":
		return NewStrainFigure(opt.Format), nil
	case "charts":
		return &Charts{Stride: opt.Stride}, nil
	case "record":
		return &Record{Full: opt.Full}, nil
	case "sheet":
		return &Sheet{Stride: opt.Stride}, nil
	case "report":
		return &Report{}, nil
	}
	return nil, fmt.Errorf("%w: %q", types.ErrUnknownOutput, name)
}

// logger 默认错误处理
type logger struct{}

func (logger) Error(err error) { log.Println(err) }

// Handler 发布到网页，先在内存中渲染，成功后再写出响应头与正文
func Handler(rd types.Renderer, res *types.Result, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		var buf bytes.Buffer
		if err := rd.Render(&buf, res); err != nil {
			rd.Error(err)
			http.Error(w, "render "+rd.Name()+" failed", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", contentType)
		w.Write(buf.Bytes())
	}
}

package types

import "io"

// Renderer 结果输出接口
type Renderer interface {
	Name() string                           // 输出名称
	Filename() string                       // 默认文件名
	Render(w io.Writer, res *Result) error  // 格式化输出
	Error(err error)                        // 错误处理
}

package types

import (
	"errors"
	"fmt"
)

// 参数校验错误
var (
	ErrNonFinite       = errors.New("inclusion: parameter is NaN or Inf")
	ErrMalformed       = errors.New("inclusion: parameter cannot be parsed")
	ErrInvalidGeometry = errors.New("inclusion: invalid geometry (need 0 < a, 0 < b, a != b)")
	ErrInvertedDomain  = errors.New("inclusion: plate semi-axis b is smaller than inclusion semi-axis a")
	ErrInvalidMaterial = errors.New("inclusion: invalid material constant")
	ErrInvalidSamples  = errors.New("inclusion: sample count must be between 2 and 2000")
	ErrInvalidLoad     = errors.New("inclusion: load magnitude exceeds 1e12 MPa")
	ErrUnknownOutput   = errors.New("inclusion: unknown output")
)

// ParamError 带参数名的校验错误
type ParamError struct {
	Name    string  // 参数名
	Value   float64 // 参数值
	Raw     string  // 无法解析时的原始文本
	Wrapped error   // 底层错误
}

func (e *ParamError) Error() string {
	if e.Raw != "" {
		return fmt.Sprintf("%s = %q: %v", e.Name, e.Raw, e.Wrapped)
	}
	return fmt.Sprintf("%s = %g: %v", e.Name, e.Value, e.Wrapped)
}

func (e *ParamError) Unwrap() error { return e.Wrapped }

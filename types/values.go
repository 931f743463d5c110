package types

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Values 键值形式的参数表（dotenv 文件或环境变量）
type Values map[string]string

// ReadValues 读取 dotenv 文件，未给出文件时返回空表
func ReadValues(filenames ...string) (Values, error) {
	if len(filenames) == 0 {
		return Values{}, nil
	}
	m, err := godotenv.Read(filenames...)
	if err != nil {
		return nil, fmt.Errorf("读取参数文件失败: %w", err)
	}
	return Values(m), nil
}

// ParseValues 解析 dotenv 格式文本
func ParseValues(src string) (Values, error) {
	m, err := godotenv.Unmarshal(src)
	if err != nil {
		return nil, fmt.Errorf("解析参数失败: %w", err)
	}
	return Values(m), nil
}

// lookup 先查表，再查进程环境
func (value Values) lookup(key string) string {
	if v, ok := value[key]; ok {
		return strings.TrimSpace(v)
	}
	return strings.TrimSpace(os.Getenv(key))
}

// Float64 解析浮点数，缺失时返回默认值
func (value Values) Float64(key string, defaultValue float64) (float64, error) {
	s := value.lookup(key)
	if s == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return defaultValue, &ParamError{Name: key, Value: defaultValue, Raw: s, Wrapped: ErrMalformed}
	}
	return v, nil
}

// Int 解析整数，缺失时返回默认值
func (value Values) Int(key string, defaultValue int) (int, error) {
	s := value.lookup(key)
	if s == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue, &ParamError{Name: key, Value: float64(defaultValue), Raw: s, Wrapped: ErrMalformed}
	}
	return v, nil
}

// Bool 解析布尔值，缺失时返回默认值
func (value Values) Bool(key string, defaultValue bool) (bool, error) {
	s := value.lookup(key)
	if s == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return defaultValue, &ParamError{Name: key, Raw: s, Wrapped: ErrMalformed}
	}
	return v, nil
}

// Params 以 base 为默认值读取参数
func (value Values) Params(base Params) (p Params, err error) {
	p = base
	floats := []struct {
		key string
		dst *float64
	}{
		{EnvA, &p.A}, {EnvB, &p.B}, {EnvP1, &p.P1}, {EnvP2, &p.P2}, {EnvP0, &p.P0},
		{EnvG, &p.G}, {EnvG1, &p.G1}, {EnvE, &p.E}, {EnvNu, &p.Nu}, {EnvYield, &p.Yield},
	}
	for _, f := range floats {
		if *f.dst, err = value.Float64(f.key, *f.dst); err != nil {
			return base, err
		}
	}
	if p.NR, err = value.Int(EnvNR, p.NR); err != nil {
		return base, err
	}
	if p.NTheta, err = value.Int(EnvNTheta, p.NTheta); err != nil {
		return base, err
	}
	if p.AllowInverted, err = value.Bool(EnvAllowInverted, p.AllowInverted); err != nil {
		return base, err
	}
	return p, nil
}

// Export 导出为 dotenv 文本
func (p Params) Export() (string, error) {
	return godotenv.Marshal(map[string]string{
		EnvA:             strconv.FormatFloat(p.A, 'g', -1, 64),
		EnvB:             strconv.FormatFloat(p.B, 'g', -1, 64),
		EnvP1:            strconv.FormatFloat(p.P1, 'g', -1, 64),
		EnvP2:            strconv.FormatFloat(p.P2, 'g', -1, 64),
		EnvP0:            strconv.FormatFloat(p.P0, 'g', -1, 64),
		EnvG:             strconv.FormatFloat(p.G, 'g', -1, 64),
		EnvG1:            strconv.FormatFloat(p.G1, 'g', -1, 64),
		EnvE:             strconv.FormatFloat(p.E, 'g', -1, 64),
		EnvNu:            strconv.FormatFloat(p.Nu, 'g', -1, 64),
		EnvYield:         strconv.FormatFloat(p.Yield, 'g', -1, 64),
		EnvNR:            strconv.Itoa(p.NR),
		EnvNTheta:        strconv.Itoa(p.NTheta),
		EnvAllowInverted: strconv.FormatBool(p.AllowInverted),
	})
}

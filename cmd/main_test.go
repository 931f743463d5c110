package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"inclusion/types"
)

// execute 以新的命令树执行，返回标准输出
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// smallEnv 写出小网格参数文件
func smallEnv(t *testing.T, extra string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "plate.env")
	src := "INCLUSION_NR=20\nINCLUSION_NTHETA=24\n" + extra
	if err := os.WriteFile(name, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	return name
}

func TestExpand(t *testing.T) {
	cases := []struct {
		in, want []string
	}{
		{[]string{"plot"}, []string{"stress", "strain"}},
		{[]string{"record", "plot", "sheet"}, []string{"record", "stress", "strain", "sheet"}},
		{[]string{"stress"}, []string{"stress"}},
		{nil, []string{}},
	}
	for _, c := range cases {
		if got := expand(c.in); !reflect.DeepEqual(got, c.want) {
			t.Errorf("expand(%v): 期望 %v, 实际 %v", c.in, c.want, got)
		}
	}
}

func TestRun(t *testing.T) {
	env := smallEnv(t, "")
	out := filepath.Join(t.TempDir(), "out")
	_, err := execute(t, "run", "--env", env, "--allow-inverted",
		"--out", out, "--outputs", "plot,record", "--format", "svg")
	if err != nil {
		t.Fatalf("运行失败: %s", err)
	}
	for _, name := range []string{"sigma_e.svg", "strain.svg", "fields.json"} {
		if info, err := os.Stat(filepath.Join(out, name)); err != nil || info.Size() == 0 {
			t.Errorf("%s: 未写出 %v", name, err)
		}
	}
}

// TestRunInverted 默认参数未确认倒置时不写出任何文件
func TestRunInverted(t *testing.T) {
	env := smallEnv(t, "")
	out := filepath.Join(t.TempDir(), "out")
	_, err := execute(t, "run", "--env", env, "--out", out, "--outputs", "record")
	if !errors.Is(err, types.ErrInvertedDomain) {
		t.Fatalf("期望 ErrInvertedDomain, 实际 %v", err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("失败时不应创建输出目录: %v", err)
	}

	_, err = execute(t, "run", "--env", env, "--allow-inverted", "--out", out, "--outputs", "gif")
	if !errors.Is(err, types.ErrUnknownOutput) {
		t.Errorf("期望 ErrUnknownOutput, 实际 %v", err)
	}
}

// TestAllowInvertedFlag 命令行标志覆盖参数文件，未给出时保留文件中的值
func TestAllowInvertedFlag(t *testing.T) {
	env := smallEnv(t, "INCLUSION_ALLOW_INVERTED=true\n")

	if _, err := execute(t, "check", "--env", env); err != nil {
		t.Errorf("文件已确认倒置: %v", err)
	}
	if _, err := execute(t, "check", "--env", env, "--allow-inverted=false"); !errors.Is(err, types.ErrInvertedDomain) {
		t.Errorf("标志应覆盖文件: 期望 ErrInvertedDomain, 实际 %v", err)
	}

	plain := smallEnv(t, "")
	if _, err := execute(t, "check", "--env", plain, "--allow-inverted"); err != nil {
		t.Errorf("标志确认倒置: %v", err)
	}
}

// TestCheck 先打印参数再校验
func TestCheck(t *testing.T) {
	env := smallEnv(t, "INCLUSION_P0=80\n")

	out, err := execute(t, "check", "--env", env)
	if !errors.Is(err, types.ErrInvertedDomain) {
		t.Fatalf("期望 ErrInvertedDomain, 实际 %v", err)
	}
	for _, key := range []string{types.EnvA, types.EnvB, types.EnvNR, `INCLUSION_P0=80`} {
		if !strings.Contains(out, key) {
			t.Errorf("校验失败前应已打印 %s:\n%s", key, out)
		}
	}
	if strings.Contains(out, "ok") {
		t.Errorf("校验失败不应输出 ok")
	}

	out, err = execute(t, "check", "--env", env, "--allow-inverted")
	if err != nil {
		t.Fatalf("校验失败: %s", err)
	}
	if !strings.HasSuffix(strings.TrimSpace(out), "ok") {
		t.Errorf("应以 ok 结束:\n%s", out)
	}
}

func TestCheckMalformed(t *testing.T) {
	env := smallEnv(t, "INCLUSION_NU=abc\n")
	_, err := execute(t, "check", "--env", env, "--allow-inverted")
	var pe *types.ParamError
	if !errors.As(err, &pe) || pe.Raw != "abc" {
		t.Errorf("期望带原始文本的 ParamError, 实际 %v", err)
	}
}

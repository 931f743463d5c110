package inclusion

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"inclusion/render"
	"inclusion/types"
)

func TestAnalyzeDefault(t *testing.T) {
	pl := NewPlate()
	if _, err := pl.Analyze(); !errors.Is(err, types.ErrInvertedDomain) {
		t.Fatalf("默认参数应被拒绝: %v", err)
	}
	pl.AllowInverted = true
	pl.NR, pl.NTheta = 40, 40
	res, err := pl.Analyze()
	if err != nil {
		t.Fatalf("计算失败: %s", err)
	}
	if r, c := res.Fields.Seq.Dims(); r != 40 || c != 40 {
		t.Errorf("Expected 40x40, got %dx%d", r, c)
	}
	if res.Summary.PlasticCount == 0 {
		t.Errorf("默认载荷下应存在塑性区")
	}
}

// TestAnalyzeOverflow 场量有限但统计量溢出时返回 ErrNonFinite
func TestAnalyzeOverflow(t *testing.T) {
	p := types.Default()
	p.A, p.B = 1e150, 1
	p.AllowInverted = true
	p.NR, p.NTheta = 20, 20
	if _, err := Analyze(p); !errors.Is(err, types.ErrNonFinite) {
		t.Errorf("期望 ErrNonFinite, 实际 %v", err)
	}
}

// TestPlateLoad 参数文件读写
func TestPlateLoad(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "plate.env")
	src := "INCLUSION_B=0.06\nINCLUSION_P0=0\n"
	if err := os.WriteFile(name, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	pl := NewPlate()
	if err := pl.Load(name); err != nil {
		t.Fatalf("加载失败: %s", err)
	}
	if pl.B != 0.06 || pl.P0 != 0 || pl.A != types.DefaultA {
		t.Errorf("参数不正确: %+v", pl.Params)
	}
	if _, err := pl.Analyze(); err != nil {
		t.Errorf("参数应有效: %s", err)
	}

	out := filepath.Join(dir, "export.env")
	if err := pl.Export(out); err != nil {
		t.Fatalf("导出失败: %s", err)
	}
	other := NewPlate()
	if err := other.Load(out); err != nil {
		t.Fatalf("重新加载失败: %s", err)
	}
	if other.Params != pl.Params {
		t.Errorf("导出后读取不一致: %+v", other.Params)
	}
}

func TestRender(t *testing.T) {
	p := types.Default()
	p.B = 0.04
	p.NR, p.NTheta = 30, 50
	res, err := Analyze(p)
	if err != nil {
		t.Fatal(err)
	}
	opt := render.DefaultOptions()
	var renderers []types.Renderer
	for _, name := range render.Names {
		r, err := render.New(name, opt)
		if err != nil {
			t.Fatal(err)
		}
		renderers = append(renderers, r)
	}
	dir := filepath.Join(t.TempDir(), "out")
	files, err := Render(res, dir, renderers...)
	if err != nil {
		t.Fatalf("输出失败: %s", err)
	}
	want := []string{"sigma_e.png", "strain.png", "fields.html", "fields.json", "fields.xlsx", "report.pdf"}
	if len(files) != len(want) {
		t.Fatalf("期望 %d 个文件, 实际 %v", len(want), files)
	}
	for k, name := range want {
		if filepath.Base(files[k]) != name {
			t.Errorf("文件 %d: 期望 %s, 实际 %s", k, name, files[k])
		}
		info, err := os.Stat(files[k])
		if err != nil || info.Size() == 0 {
			t.Errorf("%s 为空或不存在", name)
		}
	}
}

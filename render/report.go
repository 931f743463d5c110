package render

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"time"

	"inclusion/types"

	"github.com/phpdave11/gofpdf"
)

// Report PDF 计算书
type Report struct {
	logger
	Title string // 标题，默认 "Elliptical Inclusion Analysis"
}

// Name 输出名称
func (*Report) Name() string { return "report" }

// Filename 默认文件名
func (*Report) Filename() string { return "report.pdf" }

// Render 写出计算书：参数表、结果摘要与等效应力云图
func (rp *Report) Render(w io.Writer, res *types.Result) error {
	title := rp.Title
	if title == "" {
		title = "Elliptical Inclusion Analysis"
	}
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, false)
	pdf.SetCreator("inclusion", false)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	p, sum := res.Params, res.Summary
	table(pdf, "Parameters", [][2]string{
		{"Inclusion semi-axis a (m)", num(p.A)},
		{"Outer radius b (m)", num(p.B)},
		{"Load P1 (MPa)", num(p.P1)},
		{"Load P2 (MPa)", num(p.P2)},
		{"Internal pressure P0 (MPa)", num(p.P0)},
		{"Shear modulus G (MPa)", num(p.G)},
		{"Inclusion shear modulus G1 (MPa)", num(p.G1)},
		{"Young's modulus E (MPa)", num(p.E)},
		{"Poisson's ratio", num(p.Nu)},
		{"Yield stress (MPa)", num(p.Yield)},
		{"Samples (r x theta)", fmt.Sprintf("%d x %d", p.NR, p.NTheta)},
	})
	table(pdf, "Results", [][2]string{
		{"Max equivalent stress (MPa)", num(sum.MaxSeq.Value)},
		{"  at r (m), theta (deg)", fmt.Sprintf("%.5g, %.2f", sum.MaxSeq.R, sum.MaxSeq.Theta*180/math.Pi)},
		{"Min equivalent stress (MPa)", num(sum.MinSeq.Value)},
		{"Mean equivalent stress (MPa)", num(sum.MeanSeq)},
		{"Std. deviation (MPa)", num(sum.StdSeq)},
		{"Plastic points", fmt.Sprintf("%d (%.2f%%)", sum.PlasticCount, 100*sum.PlasticFraction)},
		{"Stress concentration factor", num(sum.Concentration)},
	})

	var img bytes.Buffer
	fig := NewStressFigure("png")
	fig.Stride = 2
	if err := fig.Render(&img, res); err != nil {
		return err
	}
	opt := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}
	pdf.RegisterImageOptionsReader("sigma_e", opt, &img)
	pdf.Ln(4)
	pdf.ImageOptions("sigma_e", pdf.GetX(), pdf.GetY(), 170, 0, true, opt, 0, "")

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}

// table 两列表格
func table(pdf *gofpdf.Fpdf, caption string, rows [][2]string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, caption)
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetFillColor(235, 235, 235)
	for i, r := range rows {
		fill := i%2 == 0
		pdf.CellFormat(100, 6, r[0], "1", 0, "L", fill, 0, "")
		pdf.CellFormat(70, 6, r[1], "1", 1, "R", fill, 0, "")
	}
	pdf.Ln(4)
}

func num(v float64) string { return fmt.Sprintf("%.6g", v) }

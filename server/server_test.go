package server

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"inclusion/types"

	"golang.org/x/time/rate"
)

func testServer() *Server {
	p := types.Default()
	p.AllowInverted = true
	p.NR, p.NTheta = 30, 45
	s := New(p)
	s.Limiter = NewIPRateLimiter(rate.Inf, 1)
	return s
}

func TestAnalyze(t *testing.T) {
	h := testServer().Router()
	body := `{"b": 0.05, "allow_inverted": false}`
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("期望 200, 实际 %d: %s", rec.Code, rec.Body)
	}
	var resp response
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("解析响应失败: %s", err)
	}
	// 未给出的参数取服务默认值
	if resp.Params.B != 0.05 || resp.Params.A != types.DefaultA || resp.Params.NR != 30 {
		t.Errorf("参数合并不正确: %+v", resp.Params)
	}
	if len(resp.Summary.Boundary) != 45 || resp.Summary.MaxSeq.Value <= 0 {
		t.Errorf("摘要不完整: %+v", resp.Summary.MaxSeq)
	}
}

func TestAnalyzeInvalid(t *testing.T) {
	h := testServer().Router()
	for _, body := range []string{
		`{"allow_inverted": false}`,
		`{"e": -1}`,
		`{"a": `,
		`{"nr": 20000, "ntheta": 20000}`,
		`{"p1": 1e200, "p2": 1e200}`,
		`{"a": 1e150, "b": 1}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: 期望 400, 实际 %d", body, rec.Code)
		}
	}
}

// TestAnalyzeBodyLimit 超长请求体在解码阶段被截断
func TestAnalyzeBodyLimit(t *testing.T) {
	h := testServer().Router()
	body := `{"b": 0.05, "pad": "` + strings.Repeat("x", maxBodyBytes) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("期望 413, 实际 %d", rec.Code)
	}
}

// TestWriteJSON 编码失败时返回 500 而不是空的 200
func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	writeJSON(rec, map[string]float64{"seq": math.Inf(1)})
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("期望 500, 实际 %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct == "application/json" {
		t.Errorf("失败时不应声明 JSON: %s", ct)
	}

	rec = httptest.NewRecorder()
	writeJSON(rec, map[string]float64{"seq": 1})
	if rec.Code != http.StatusOK || rec.Header().Get("Content-Type") != "application/json" {
		t.Errorf("正常编码: %d %s", rec.Code, rec.Header().Get("Content-Type"))
	}
}

func TestDefaults(t *testing.T) {
	s := testServer()
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/defaults", nil))
	var p types.Params
	if err := json.NewDecoder(rec.Body).Decode(&p); err != nil {
		t.Fatalf("解析响应失败: %s", err)
	}
	if p != s.Base {
		t.Errorf("默认参数不一致: %+v", p)
	}
}

func TestChartsAndPlot(t *testing.T) {
	h := testServer().Router()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/charts?yield=300", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "echarts") {
		t.Errorf("/charts: %d", rec.Code)
	}

	for _, path := range []string{"/plot/stress.png", "/plot/strain.png"} {
		rec = httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK || rec.Header().Get("Content-Type") != "image/png" || rec.Body.Len() == 0 {
			t.Errorf("%s: %d %s", path, rec.Code, rec.Header().Get("Content-Type"))
		}
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/plot/other.png", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("未知图: 期望 404, 实际 %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/charts?nu=abc", nil))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("非法查询参数: 期望 400, 实际 %d", rec.Code)
	}
}

func TestLimit(t *testing.T) {
	s := testServer()
	s.Limiter = NewIPRateLimiter(rate.Limit(0.001), 2)
	h := s.Router()
	codes := make([]int, 3)
	for k := range codes {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/defaults", nil))
		codes[k] = rec.Code
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Errorf("限流: %v", codes)
	}
}

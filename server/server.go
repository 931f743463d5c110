package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"inclusion"
	"inclusion/render"
	"inclusion/types"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"
)

// 请求体上限
const maxBodyBytes = 1 << 16

// 查询参数名到参数键的映射
var queryKeys = map[string]string{
	"a":              types.EnvA,
	"b":              types.EnvB,
	"p1":             types.EnvP1,
	"p2":             types.EnvP2,
	"p0":             types.EnvP0,
	"g":              types.EnvG,
	"g1":             types.EnvG1,
	"e":              types.EnvE,
	"nu":             types.EnvNu,
	"yield":          types.EnvYield,
	"nr":             types.EnvNR,
	"ntheta":         types.EnvNTheta,
	"allow_inverted": types.EnvAllowInverted,
}

// Server 分析服务
type Server struct {
	Base    types.Params   // 请求未给出的参数取此值
	Options render.Options // 网页与图片输出选项
	Limiter *IPRateLimiter
}

// New 创建服务，默认每个地址每秒 2 次、突发 5 次
func New(base types.Params) *Server {
	opt := render.DefaultOptions()
	opt.Stride = 2
	return &Server{
		Base:    base,
		Options: opt,
		Limiter: NewIPRateLimiter(rate.Limit(2), 5),
	}
}

// Router 注册路由
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()
	router.Use(s.Limiter.LimitMiddleware)

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/analyze", s.Analyze).Methods("POST")
	api.HandleFunc("/defaults", s.Defaults).Methods("GET")

	router.HandleFunc("/charts", s.Charts).Methods("GET")
	router.HandleFunc("/plot/{figure:stress|strain}.png", s.Plot).Methods("GET")
	return router
}

// response 分析接口返回值
type response struct {
	Params  types.Params  `json:"params"`
	Summary types.Summary `json:"summary"`
}

// Analyze 以 JSON 参数计算并返回摘要
func (s *Server) Analyze(w http.ResponseWriter, r *http.Request) {
	p := s.Base
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "Request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := inclusion.Analyze(p)
	if err != nil {
		http.Error(w, err.Error(), statusOf(err))
		return
	}
	writeJSON(w, response{Params: res.Params, Summary: res.Summary})
}

// Defaults 返回服务的默认参数
func (s *Server) Defaults(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, s.Base)
}

// Charts 网页图表，查询参数可覆盖默认值
func (s *Server) Charts(w http.ResponseWriter, r *http.Request) {
	res, ok := s.analyzeQuery(w, r)
	if !ok {
		return
	}
	c := &render.Charts{Stride: s.Options.Stride}
	c.Handler(res)(w, r)
}

// Plot PNG 云图
func (s *Server) Plot(w http.ResponseWriter, r *http.Request) {
	res, ok := s.analyzeQuery(w, r)
	if !ok {
		return
	}
	fig := render.NewStressFigure("png")
	if mux.Vars(r)["figure"] == "strain" {
		fig = render.NewStrainFigure("png")
	}
	fig.Stride = s.Options.Stride
	render.Handler(fig, res, "image/png")(w, r)
}

// analyzeQuery 解析查询参数并计算，失败时已写出错误响应
func (s *Server) analyzeQuery(w http.ResponseWriter, r *http.Request) (*types.Result, bool) {
	values := types.Values{}
	for name, key := range queryKeys {
		if v := r.URL.Query().Get(name); v != "" {
			values[key] = v
		}
	}
	p, err := values.Params(s.Base)
	if err == nil {
		var res *types.Result
		if res, err = inclusion.Analyze(p); err == nil {
			return res, true
		}
	}
	http.Error(w, err.Error(), statusOf(err))
	return nil, false
}

// statusOf 参数错误与数值溢出返回 400，其余返回 500
func statusOf(err error) int {
	var pe *types.ParamError
	if errors.As(err, &pe) || errors.Is(err, types.ErrNonFinite) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		log.Printf("Response error: %v", err)
		http.Error(w, "Response encoding failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(buf.Bytes())
}

// ListenAndServe 启动服务，ctx 结束后在 5 秒内关闭
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	var wg sync.WaitGroup
	errc := make(chan error, 1)
	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Printf("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errc <- err
		}
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	log.Println("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	wg.Wait()
	log.Println("Server stopped")
	return nil
}

// Package web exposes the dashboard as a JSON API. Handlers only parse
// input, call the use case and serialize the result; all aggregation
// semantics live in the application layer.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"go.uber.org/zap"

	"github.com/dkovtun/arms-dashboard-go/internal/application/usecase"
	"github.com/dkovtun/arms-dashboard-go/internal/domain/entity"
	"github.com/dkovtun/arms-dashboard-go/pkg/version"
)

// viewCacheSize bounds the per-(selector, style, topN) view memo. The
// cache is an optimization only; every entry is recomputable from the
// loaded dataset.
const viewCacheSize = 16

// Server is the API server.
type Server struct {
	dashboard *usecase.DashboardUseCase
	mux       *http.ServeMux
	logger    *zap.Logger
	siteDir   string
	topN      int
	cache     *lru.Cache
}

// NewServer creates the API server. siteDir, when non-empty, is served
// at the root for the static frontend; topN bounds the country ranking.
func NewServer(dashboard *usecase.DashboardUseCase, logger *zap.Logger, siteDir string, topN int) *Server {
	cache, _ := lru.New(viewCacheSize)

	s := &Server{
		dashboard: dashboard,
		mux:       http.NewServeMux(),
		logger:    logger,
		siteDir:   siteDir,
		topN:      topN,
		cache:     cache,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /api/dashboard", s.handleDashboard)
	s.mux.HandleFunc("GET /api/flows", s.handleFlows)
	s.mux.HandleFunc("GET /api/rankings", s.handleRankings)
	s.mux.HandleFunc("GET /api/metrics", s.handleMetrics)
	s.mux.HandleFunc("GET /api/records", s.handleRecords)
	s.mux.HandleFunc("GET /api/health", s.handleHealth)
	s.mux.HandleFunc("GET /api/version", s.handleVersion)

	if s.siteDir != "" {
		s.mux.Handle("GET /", http.FileServer(http.Dir(s.siteDir)))
	}
}

// ServeHTTP dispatches through the mux with request logging.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	s.mux.ServeHTTP(w, r)
	s.logger.Info("request",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.String("query", r.URL.RawQuery),
		zap.Duration("duration", time.Since(start)),
	)
}

// Run serves until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	s.logger.Info("dashboard API listening", zap.String("addr", addr))

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// view returns the memoized dashboard view for the request parameters.
func (s *Server) view(r *http.Request) entity.DashboardView {
	selector := entity.ParseYearRange(r.URL.Query().Get("years"))
	style := usecase.NormalizeMapStyle(r.URL.Query().Get("map_style"))

	topN := s.topN
	if raw := r.URL.Query().Get("top"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			topN = n
		}
	}

	key := fmt.Sprintf("%s|%s|%d", selector, style, topN)
	if cached, ok := s.cache.Get(key); ok {
		return cached.(entity.DashboardView)
	}

	view := s.dashboard.BuildView(selector, style, topN)
	s.cache.Add(key, view)
	return view
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, s.view(r), http.StatusOK)
}

func (s *Server) handleFlows(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, s.view(r).Map, http.StatusOK)
}

func (s *Server) handleRankings(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, s.view(r).Rankings, http.StatusOK)
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, s.view(r).Metrics, http.StatusOK)
}

func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, s.view(r).Records, http.StatusOK)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]any{
		"status":  "ok",
		"records": s.dashboard.RecordCount(),
	}, http.StatusOK)
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{"version": version.FormatVersion()}, http.StatusOK)
}

func (s *Server) writeJSON(w http.ResponseWriter, value any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(value); err != nil {
		s.logger.Error("encoding response", zap.Error(err))
	}
}

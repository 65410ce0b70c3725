// Package server exposes the quote engine over HTTP: a one-shot quote
// endpoint, a WebSocket stream for interactive consoles, health, and
// Prometheus metrics.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"exec-planner/internal/config"
	"exec-planner/internal/domain"
	"exec-planner/internal/observability"
	"exec-planner/internal/simulation"
)

// Server handles quote requests against a fixed market snapshot.
type Server struct {
	assembler *simulation.Assembler
	snapshot  domain.MarketSnapshot
	metrics   *observability.Metrics
	logger    *zap.Logger

	wsConfig WSConfig

	seenHits   atomic.Uint64
	seenMisses atomic.Uint64
}

// New creates a Server.
func New(assembler *simulation.Assembler, snapshot domain.MarketSnapshot, metrics *observability.Metrics, logger *zap.Logger) *Server {
	return &Server{
		assembler: assembler,
		snapshot:  snapshot,
		metrics:   metrics,
		logger:    logger,
		wsConfig:  DefaultWSConfig(),
	}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/quote", s.handleQuote)
	mux.HandleFunc("GET /ws/quotes", s.handleQuoteStream)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("GET /metrics", s.metrics.Handler())
	return mux
}

// HTTPServer builds an http.Server from the config section.
func (s *Server) HTTPServer(cfg config.ServerConfig) *http.Server {
	return &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	var req domain.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.metrics.QuoteErrors.WithLabelValues("bad_request").Inc()
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	result, err := s.simulate(req)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// simulate runs one quote with metrics accounting shared by the HTTP
// and WebSocket paths.
func (s *Server) simulate(req domain.OrderRequest) (*domain.SimulationResult, error) {
	start := time.Now()
	result, err := s.assembler.Simulate(req, s.snapshot)
	if err != nil {
		s.metrics.QuoteErrors.WithLabelValues(errorReason(err)).Inc()
		return nil, err
	}

	s.metrics.QuoteLatency.Observe(time.Since(start).Seconds())
	s.metrics.QuotesComputed.WithLabelValues(string(req.Mode)).Inc()
	s.observeCache()
	return result, nil
}

// observeCache reconciles the counter pair with the assembler's
// cumulative stats by adding the delta since the last observation.
func (s *Server) observeCache() {
	hits, misses := s.assembler.CacheStats()
	prevHits := s.seenHits.Swap(hits)
	prevMisses := s.seenMisses.Swap(misses)
	if hits > prevHits {
		s.metrics.CacheHits.Add(float64(hits - prevHits))
	}
	if misses > prevMisses {
		s.metrics.CacheMisses.Add(float64(misses - prevMisses))
	}
}

func errorReason(err error) string {
	switch {
	case errors.Is(err, simulation.ErrUnknownMode):
		return "unknown_mode"
	case errors.Is(err, simulation.ErrMissingLimitParams),
		errors.Is(err, simulation.ErrMissingAlgoParams):
		return "missing_params"
	default:
		return "invalid_params"
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const defaultReadyTimeout = 500 * time.Millisecond

// ReadinessChecker is a dependency checked by /readyz
type ReadinessChecker interface {
	Ready(ctx context.Context) error
}

// Handler exposes the admin endpoints next to the gRPC server
type Handler struct {
	Checker      ReadinessChecker
	ReadyTimeout time.Duration
	logger       *zap.Logger
}

// NewHandler creates a new admin Handler
func NewHandler(checker ReadinessChecker, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		Checker:      checker,
		ReadyTimeout: defaultReadyTimeout,
		logger:       logger,
	}
}

// NewRouter mounts /healthz, /readyz and /metrics.
// A nil registry leaves /metrics unmounted.
func NewRouter(h *Handler, registry *prometheus.Registry) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.Live)
	r.Get("/readyz", h.Ready)

	if registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	return r
}

// Live reports liveness status
func (h *Handler) Live(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// Ready reports readiness based on a database ping
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.Checker == nil {
		http.Error(w, "dependencies unavailable", http.StatusServiceUnavailable)
		return
	}

	timeout := h.ReadyTimeout
	if timeout <= 0 {
		timeout = defaultReadyTimeout
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	defer cancel()

	dbStatus := "ok"
	code := http.StatusOK
	if err := h.Checker.Ready(ctx); err != nil {
		h.logger.Warn("readiness check failed", zap.Error(err))
		dbStatus = err.Error()
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"db": dbStatus})
}

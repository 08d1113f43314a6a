package middlewares

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dropDatabas3/reviewrelay/internal/metrics"
)

// WithMetrics instrumenta requests con métricas Prometheus (contadores, latencia, inflight).
// El label "path" es el patrón de chi, así no explota la cardinalidad con paths desconocidos.
func WithMetrics(m *metrics.HTTP) Middleware {
	return func(next http.Handler) http.Handler {
		if m == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m.Inflight.Inc()
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			defer func() {
				m.Inflight.Dec()
				method := strings.ToUpper(r.Method)
				path := routePattern(r)
				m.RequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
				m.RequestsTotal.WithLabelValues(method, path, strconv.Itoa(rec.status)).Inc()
			}()

			next.ServeHTTP(rec, r)
		})
	}
}

// routePattern retorna el patrón que matcheó chi, o "unmatched".
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}

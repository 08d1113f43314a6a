// Package router define las rutas HTTP del servicio.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	healthctrl "github.com/dropDatabas3/reviewrelay/internal/http/controllers/health"
	reviewctrl "github.com/dropDatabas3/reviewrelay/internal/http/controllers/review"
	httperrors "github.com/dropDatabas3/reviewrelay/internal/http/errors"
	mw "github.com/dropDatabas3/reviewrelay/internal/http/middlewares"
	"github.com/dropDatabas3/reviewrelay/internal/metrics"
)

// Deps contiene las dependencias para construir el router.
type Deps struct {
	Health *healthctrl.Controllers
	Review *reviewctrl.Controllers

	CORSAllowedOrigins []string
	Logger             *zap.Logger // opcional, nil = logger global

	// Opcionales: sin Gatherer no se expone /metrics
	HTTPMetrics *metrics.HTTP
	Gatherer    prometheus.Gatherer
}

// New crea el router con todas las rutas registradas.
//
//	GET  /             liveness
//	POST /send-review  envío de reseñas
//	GET  /metrics      Prometheus
func New(deps Deps) http.Handler {
	r := chi.NewRouter()

	// El más externo primero: recover -> request id -> cors -> logging -> metrics
	r.Use(
		mw.WithRecover(),
		mw.WithRequestID(),
		mw.WithCORS(deps.CORSAllowedOrigins),
		mw.WithLogging(deps.Logger),
		mw.WithMetrics(deps.HTTPMetrics),
	)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		httperrors.WriteError(w, httperrors.ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		httperrors.WriteError(w, httperrors.ErrMethodNotAllowed)
	})

	registerHealthRoutes(r, deps.Health)
	registerReviewRoutes(r, deps.Review)

	if deps.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	return r
}

func registerHealthRoutes(r chi.Router, c *healthctrl.Controllers) {
	if c == nil {
		return
	}
	r.Get("/", c.Health.Liveness)
	r.Head("/", c.Health.Liveness)
}

func registerReviewRoutes(r chi.Router, c *reviewctrl.Controllers) {
	if c == nil {
		return
	}
	r.Post("/send-review", c.Review.SendReview)
}

// Package server arma el handler HTTP con todas sus dependencias.
package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/dropDatabas3/reviewrelay/internal/config"
	"github.com/dropDatabas3/reviewrelay/internal/email"
	healthctrl "github.com/dropDatabas3/reviewrelay/internal/http/controllers/health"
	reviewctrl "github.com/dropDatabas3/reviewrelay/internal/http/controllers/review"
	"github.com/dropDatabas3/reviewrelay/internal/http/router"
	reviewsvc "github.com/dropDatabas3/reviewrelay/internal/http/services/review"
	"github.com/dropDatabas3/reviewrelay/internal/metrics"
)

// Options permite inyectar dependencias alternativas (tests).
type Options struct {
	// Registry recibe las métricas y se expone en /metrics. nil = registry nuevo.
	Registry *prometheus.Registry

	// Resolver reemplaza al resolver SMTP construido desde cfg.SMTP.
	Resolver email.TransportResolver

	// Logger base para los logs por request. nil = logger global.
	Logger *zap.Logger
}

// BuildHandler construye el handler HTTP con todas las dependencias cableadas.
func BuildHandler(cfg *config.Config, opts Options) (http.Handler, error) {
	if cfg == nil {
		return nil, fmt.Errorf("server: nil config")
	}

	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	// 1. Métricas
	httpMetrics := metrics.NewHTTP()
	if err := httpMetrics.Register(reg); err != nil {
		return nil, fmt.Errorf("register http metrics: %w", err)
	}
	reviewMetrics := metrics.NewReview()
	if err := reviewMetrics.Register(reg); err != nil {
		return nil, fmt.Errorf("register review metrics: %w", err)
	}

	// 2. Transporte SMTP (se resuelve por request)
	resolver := opts.Resolver
	if resolver == nil {
		resolver = email.NewResolver(cfg.SMTP)
	}

	// 3. Services
	reviewServices := reviewsvc.NewServices(reviewsvc.Deps{
		Resolver:   resolver,
		Addressing: cfg.Addressing,
		Metrics:    reviewMetrics,
	})

	// 4. Controllers + router
	return router.New(router.Deps{
		Health:             healthctrl.NewControllers(),
		Review:             reviewctrl.NewControllers(reviewServices),
		CORSAllowedOrigins: cfg.Server.CORSAllowedOrigins,
		Logger:             opts.Logger,
		HTTPMetrics:        httpMetrics,
		Gatherer:           reg,
	}), nil
}

// NewHTTPServer crea el http.Server con timeouts razonables.
// WriteTimeout cubre el envío SMTP, que es síncrono dentro del request.
func NewHTTPServer(cfg *config.Config, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

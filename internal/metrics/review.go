package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Resultados posibles de un POST /send-review.
const (
	OutcomeSent         = "sent"
	OutcomeInvalid      = "invalid"
	OutcomeUnconfigured = "unconfigured"
	OutcomeFailed       = "failed"
)

// Review agrupa las métricas del relay de reseñas.
// Un *Review nil es válido y no registra nada.
type Review struct {
	Submissions  *prometheus.CounterVec
	SendDuration *prometheus.HistogramVec
}

// NewReview crea las métricas sin registrarlas.
func NewReview() *Review {
	return &Review{
		Submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "review_submissions_total",
			Help: "Reseñas recibidas por resultado (sent|invalid|unconfigured|failed)",
		}, []string{"outcome"}),
		SendDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "review_smtp_send_duration_seconds",
			Help:    "Latencia del envío SMTP por tipo de transporte",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
		}, []string{"transport", "result"}),
	}
}

// Register registra las métricas en reg (o en el default si es nil).
// Registrar dos veces la misma métrica no es error.
func (m *Review) Register(reg prometheus.Registerer) error {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	for _, c := range []prometheus.Collector{m.Submissions, m.SendDuration} {
		if err := reg.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if !errors.As(err, &are) {
				return err
			}
		}
	}
	return nil
}

// Observe cuenta un request terminado con el resultado dado.
func (m *Review) Observe(outcome string) {
	if m == nil {
		return
	}
	m.Submissions.WithLabelValues(outcome).Inc()
}

// ObserveSend registra la duración de un envío SMTP.
func (m *Review) ObserveSend(transport string, d time.Duration, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.SendDuration.WithLabelValues(transport, result).Observe(d.Seconds())
}

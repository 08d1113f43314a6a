// Package review contiene el service que valida, compone y envía las reseñas.
package review

import (
	"github.com/dropDatabas3/reviewrelay/internal/email"
	"github.com/dropDatabas3/reviewrelay/internal/metrics"
)

// Deps contiene las dependencias para crear los services review.
type Deps struct {
	Resolver   email.TransportResolver
	Addressing email.Addressing
	Metrics    *metrics.Review // opcional
}

// Services agrupa todos los services del dominio review.
type Services struct {
	Review ReviewService
}

// NewServices crea el agregador de services review.
func NewServices(d Deps) Services {
	return Services{
		Review: NewReviewService(d),
	}
}

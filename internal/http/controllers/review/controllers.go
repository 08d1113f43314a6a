// Package review contiene el controller de POST /send-review.
package review

import svc "github.com/dropDatabas3/reviewrelay/internal/http/services/review"

// Controllers agrupa todos los controllers del dominio review.
type Controllers struct {
	Review *ReviewController
}

// NewControllers crea el agregador de controllers review.
func NewControllers(s svc.Services) *Controllers {
	return &Controllers{
		Review: NewReviewController(s.Review),
	}
}

package review

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/dropDatabas3/reviewrelay/internal/email"
	dto "github.com/dropDatabas3/reviewrelay/internal/http/dto/review"
	httperrors "github.com/dropDatabas3/reviewrelay/internal/http/errors"
	"github.com/dropDatabas3/reviewrelay/internal/http/helpers"
	svc "github.com/dropDatabas3/reviewrelay/internal/http/services/review"
	"github.com/dropDatabas3/reviewrelay/internal/observability/logger"
)

// ReviewController maneja POST /send-review.
type ReviewController struct {
	service svc.ReviewService
}

// NewReviewController crea un nuevo controller de reseñas.
func NewReviewController(service svc.ReviewService) *ReviewController {
	return &ReviewController{service: service}
}

// SendReview maneja POST /send-review
func (c *ReviewController) SendReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("ReviewController.SendReview"))

	var req dto.SendReviewRequest
	raw, err := helpers.ReadJSONBody(w, r, &req)

	logger.Safe(log, func(l *zap.Logger) {
		l.Info("review submission received",
			logger.ClientIP(helpers.ClientIP(r)),
			logger.String("host", r.Host),
			logger.String("origin", r.Header.Get("Origin")),
			logger.UserAgent(r.UserAgent()),
			logger.String("payload", compactPayload(raw)),
		)
	})

	if err != nil {
		switch {
		case errors.Is(err, helpers.ErrBodyTooLarge):
			httperrors.WriteError(w, httperrors.ErrBodyTooLarge)
		default:
			httperrors.WriteError(w, httperrors.ErrInvalidJSON.WithCause(err))
		}
		return
	}

	if _, err := c.service.Submit(ctx, req); err != nil {
		switch {
		case errors.Is(err, svc.ErrMissingFields):
			httperrors.WriteError(w, httperrors.ErrMissingFields)
		case errors.Is(err, email.ErrNotConfigured):
			httperrors.WriteError(w, httperrors.ErrEmailNotConfigured.WithCause(err))
		default:
			httperrors.WriteError(w, httperrors.ErrSendFailed.WithCause(err))
		}
		return
	}

	helpers.WriteJSON(w, http.StatusOK, dto.SendReviewResponse{Success: true})
}

// compactPayload devuelve el body en una línea para los logs.
// Si no es JSON válido se loguea tal cual.
func compactPayload(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}

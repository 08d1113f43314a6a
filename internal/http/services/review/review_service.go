package review

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/dropDatabas3/reviewrelay/internal/email"
	dto "github.com/dropDatabas3/reviewrelay/internal/http/dto/review"
	"github.com/dropDatabas3/reviewrelay/internal/metrics"
	"github.com/dropDatabas3/reviewrelay/internal/observability/logger"
)

// ReviewService define la operación de envío de reseñas.
type ReviewService interface {
	// Submit valida, resuelve el transporte, compone y envía.
	// Errores: ErrMissingFields, email.ErrNotConfigured, ErrSendFailed (todos con errors.Is).
	Submit(ctx context.Context, req dto.SendReviewRequest) (*dto.SendReviewResult, error)
}

// Service errors
var (
	ErrMissingFields = errors.New("review: missing required fields")
	ErrSendFailed    = errors.New("review: send failed")
)

type reviewService struct {
	resolver   email.TransportResolver
	addressing email.Addressing
	metrics    *metrics.Review
	validate   *validator.Validate
}

// NewReviewService crea un nuevo ReviewService.
func NewReviewService(d Deps) ReviewService {
	return &reviewService{
		resolver:   d.Resolver,
		addressing: d.Addressing,
		metrics:    d.Metrics,
		validate:   validator.New(),
	}
}

func (s *reviewService) Submit(ctx context.Context, req dto.SendReviewRequest) (*dto.SendReviewResult, error) {
	log := logger.From(ctx).With(logger.Layer("service"), logger.Op("ReviewService.Submit"))

	if err := s.validate.Struct(req); err != nil {
		s.metrics.Observe(metrics.OutcomeInvalid)
		logger.Safe(log, func(l *zap.Logger) { l.Debug("review rejected", logger.Err(err)) })
		return nil, ErrMissingFields
	}

	tr, err := s.resolver.Resolve()
	if err != nil {
		s.metrics.Observe(metrics.OutcomeUnconfigured)
		logger.Safe(log, func(l *zap.Logger) {
			l.Error("SMTP configuration missing (SMTP_SERVICE/SMTP_USER/SMTP_PASS or SMTP_HOST/SMTP_PORT/SMTP_USER/SMTP_PASS)")
		})
		return nil, fmt.Errorf("resolve transport: %w", err)
	}

	to := s.addressing.Recipient()
	msg := ComposeMessage(req, s.addressing.Sender(tr.Username()), to)

	logger.Safe(log, func(l *zap.Logger) {
		l.Info("sending review email",
			logger.To(to),
			logger.Transport(tr.Kind()),
			logger.Bool("rating_provided", req.Rating.IsSet()),
		)
	})

	start := time.Now()
	id, err := tr.Send(ctx, msg)
	s.metrics.ObserveSend(tr.Kind(), time.Since(start), err)

	if err != nil {
		s.metrics.Observe(metrics.OutcomeFailed)
		diag := email.DiagnoseSMTP(err)
		logger.Safe(log, func(l *zap.Logger) {
			l.Error("review email send failed",
				logger.Err(err),
				logger.String("smtp_diag", diag.Code),
				logger.Bool("temporary", diag.Temporary),
			)
		})
		return nil, fmt.Errorf("%w: %w", ErrSendFailed, err)
	}

	s.metrics.Observe(metrics.OutcomeSent)
	logger.Safe(log, func(l *zap.Logger) { l.Info("review email sent", logger.MessageID(id)) })

	return &dto.SendReviewResult{MessageID: id, To: to, Transport: tr.Kind()}, nil
}

package email

import (
	"context"
	"fmt"
	"time"

	"github.com/dropDatabas3/reviewrelay/internal/observability/logger"
)

// ProbeResult describe un envío de prueba exitoso.
type ProbeResult struct {
	MessageID string
	From      string
	To        string
	Kind      string
}

// ProbeMessage arma el email de prueba de configuración SMTP.
func ProbeMessage(from, to string, now time.Time) Message {
	ts := now.Format("02 Jan 2006, 15:04:05 MST")
	return Message{
		From:    from,
		To:      to,
		Subject: "Review relay SMTP test",
		Text: fmt.Sprintf("SMTP configuration works.\n\nThis is a test email sent by the review relay at %s.\n"+
			"Reviews will be delivered to this relay from now on.\n", ts),
		HTML: fmt.Sprintf("<p><strong>SMTP configuration works.</strong></p>"+
			"<p>This is a test email sent by the review relay at %s.</p>"+
			"<p>Reviews will be delivered to this relay from now on.</p>", ts),
	}
}

// SendProbe resuelve el transporte y envía un email de prueba.
// Si to está vacío usa el destinatario de reseñas configurado.
func SendProbe(ctx context.Context, r TransportResolver, addr Addressing, to string) (*ProbeResult, error) {
	log := logger.From(ctx).With(logger.Op("SendProbe"))

	tr, err := r.Resolve()
	if err != nil {
		log.Error("smtp probe: transport not resolved", logger.Err(err))
		return nil, err
	}
	if to == "" {
		to = addr.Recipient()
	}
	from := addr.Sender(tr.Username())

	id, err := tr.Send(ctx, ProbeMessage(from, to, time.Now()))
	if err != nil {
		diag := DiagnoseSMTP(err)
		log.Error("smtp probe failed",
			logger.Err(err),
			logger.String("diag_code", diag.Code),
			logger.Bool("temporary", diag.Temporary),
		)
		return nil, fmt.Errorf("smtp probe (code: %s): %w", diag.Code, err)
	}

	log.Info("smtp probe sent", logger.To(to), logger.MessageID(id), logger.Transport(tr.Kind()))
	return &ProbeResult{MessageID: id, From: from, To: to, Kind: tr.Kind()}, nil
}

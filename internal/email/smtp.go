package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"strings"
	"time"

	mail "github.com/go-mail/mail"
	"github.com/google/uuid"

	"github.com/dropDatabas3/reviewrelay/internal/observability/logger"
)

// DefaultSendTimeout acota un envío cuando el ctx no trae deadline.
const DefaultSendTimeout = 30 * time.Second

func init() {
	// go-mail lee el saludo del server antes de fijar su propio deadline
	mail.NetDialTimeout = dialWithDeadline
}

// dialWithDeadline conecta y deja fijado un deadline desde el primer byte,
// así un server que acepta la conexión y nunca saluda no bloquea para siempre.
func dialWithDeadline(network, address string, timeout time.Duration) (net.Conn, error) {
	conn, err := net.DialTimeout(network, address, timeout)
	if err != nil {
		return nil, err
	}
	if timeout > 0 {
		if err := conn.SetDeadline(time.Now().Add(timeout)); err != nil {
			_ = conn.Close()
			return nil, err
		}
	}
	return conn, nil
}

// SMTPTransport implementa Transport usando go-mail.
type SMTPTransport struct {
	Service string // nombre de SMTP_SERVICE; vacío si vino por host
	Host    string
	Port    int
	Secure  bool // TLS implícito (SMTPS); si es false go-mail negocia STARTTLS cuando el server lo ofrece
	User    string
	Pass    string
}

// Username implementa Transport.
func (t *SMTPTransport) Username() string { return t.User }

// Kind implementa Transport.
func (t *SMTPTransport) Kind() string {
	if t.Service != "" {
		return KindService
	}
	return KindHost
}

// Send envía el mensaje como multipart/alternative (texto + html).
// Respeta ctx durante todo el envío; sin deadline en ctx usa DefaultSendTimeout.
func (t *SMTPTransport) Send(ctx context.Context, msg Message) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("smtp send: %w", err)
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultSendTimeout)
		defer cancel()
	}

	log := logger.From(ctx).With(
		logger.Component("SMTPTransport"),
		logger.String("host", t.Host),
		logger.Int("port", t.Port),
		logger.Bool("secure", t.Secure),
	)

	id := newMessageID(msg.From)
	m := buildMessage(msg, id)

	log.Debug("dialing smtp relay", logger.To(msg.To), logger.FromAddr(msg.From))

	d := t.dialer()
	d.Timeout = ioTimeout(ctx)

	// DialAndSend no recibe ctx; el deadline de la conexión garantiza que la goroutine termina
	done := make(chan error, 1)
	go func() { done <- d.DialAndSend(m) }()

	select {
	case err := <-done:
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return "", fmt.Errorf("smtp send: %w: %w", ctxErr, err)
			}
			return "", fmt.Errorf("smtp send: %w", err)
		}
		return id, nil
	case <-ctx.Done():
		log.Warn("smtp send abandoned", logger.Err(ctx.Err()))
		return "", fmt.Errorf("smtp send: %w", ctx.Err())
	}
}

// ioTimeout es el tiempo que le queda a ctx, usado como timeout de lectura/escritura.
func ioTimeout(ctx context.Context) time.Duration {
	deadline, ok := ctx.Deadline()
	if !ok {
		return DefaultSendTimeout
	}
	if d := time.Until(deadline); d > 0 {
		return d
	}
	return time.Millisecond
}

func (t *SMTPTransport) dialer() *mail.Dialer {
	d := mail.NewDialer(t.Host, t.Port, t.User, t.Pass)
	d.SSL = t.Secure
	d.TLSConfig = &tls.Config{ServerName: t.Host}
	return d
}

// buildMessage arma el mensaje go-mail. Se prefiere texto + html alternativo.
func buildMessage(msg Message, messageID string) *mail.Message {
	m := mail.NewMessage()
	m.SetHeader("From", msg.From)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetHeader("Message-ID", messageID)

	switch {
	case msg.Text != "" && msg.HTML != "":
		m.SetBody("text/plain", msg.Text)
		m.AddAlternative("text/html", msg.HTML)
	case msg.HTML != "":
		m.SetBody("text/html", msg.HTML)
	default:
		m.SetBody("text/plain", msg.Text)
	}
	return m
}

// newMessageID genera "<uuid@dominio-del-remitente>".
func newMessageID(from string) string {
	domain := "reviewrelay.local"
	if at := strings.LastIndex(from, "@"); at >= 0 && at < len(from)-1 {
		domain = strings.Trim(from[at+1:], "<> ")
	}
	return fmt.Sprintf("<%s@%s>", uuid.NewString(), domain)
}

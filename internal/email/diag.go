package email

import (
	"errors"
	"net"
	"strings"
)

// SMTPDiag clasifica un error de envío para los logs. Nunca se expone al cliente.
type SMTPDiag struct {
	Code      string // auth|tls|dial|timeout|rate_limited|invalid_recipient|invalid_address|rejected|network|canceled|unknown
	Temporary bool   // si un reintento manual tendría sentido
}

// DiagnoseSMTP analiza un error SMTP (por tipo y por texto).
func DiagnoseSMTP(err error) SMTPDiag {
	if err == nil {
		return SMTPDiag{Code: "unknown"}
	}
	s := strings.ToLower(err.Error())

	if strings.Contains(s, "context canceled") || strings.Contains(s, "context deadline exceeded") {
		return SMTPDiag{Code: "canceled", Temporary: true}
	}

	var ne net.Error
	isNet := errors.As(err, &ne)
	if (isNet && ne.Timeout()) || strings.Contains(s, "timeout") {
		return SMTPDiag{Code: "timeout", Temporary: true}
	}

	switch {
	// dial/conn/dns
	case strings.Contains(s, "connection refused"),
		strings.Contains(s, "connectex:"), // windows
		strings.Contains(s, "no such host"),
		strings.Contains(s, "dial tcp"):
		return SMTPDiag{Code: "dial", Temporary: true}

	// tls/handshake/cert
	case strings.Contains(s, "x509:"),
		strings.Contains(s, "tls") && (strings.Contains(s, "handshake") || strings.Contains(s, "certificate")):
		return SMTPDiag{Code: "tls"}

	// credenciales
	case strings.Contains(s, "5.7.8"), hasReplyCode(s, "535"),
		strings.Contains(s, "username and password not accepted"),
		strings.Contains(s, "authentication failed"),
		strings.Contains(s, "auth") && strings.Contains(s, "failed"):
		return SMTPDiag{Code: "auth"}

	// throttling 4.x.x
	case strings.Contains(s, "4.7.0"),
		strings.Contains(s, "rate limit"),
		strings.Contains(s, "try again later"),
		strings.Contains(s, "temporarily unavailable"),
		hasReplyCode(s, "451", "421"):
		return SMTPDiag{Code: "rate_limited", Temporary: true}

	case strings.Contains(s, "5.1.1"), strings.Contains(s, "user unknown"),
		strings.Contains(s, "mailbox not found"):
		return SMTPDiag{Code: "invalid_recipient"}

	// go-mail rechaza From/To mal formados antes de hablar con el server
	case strings.Contains(s, "invalid address"):
		return SMTPDiag{Code: "invalid_address"}

	// políticas/DMARC/SPF
	case strings.Contains(s, "5.7.1"),
		strings.Contains(s, "message rejected"),
		strings.Contains(s, "policy"),
		strings.Contains(s, "dmarc"), strings.Contains(s, "spf"):
		return SMTPDiag{Code: "rejected"}
	}

	if isNet {
		return SMTPDiag{Code: "network", Temporary: true}
	}
	return SMTPDiag{Code: "unknown"}
}

// hasReplyCode indica si s trae alguno de los códigos de respuesta SMTP como palabra
// suelta ("421 ..." o "421-..."), no como dígitos dentro de una dirección o un host.
func hasReplyCode(s string, codes ...string) bool {
	for _, f := range strings.Fields(s) {
		f = strings.TrimSuffix(strings.TrimRight(f, ":"), "-")
		for _, c := range codes {
			if f == c {
				return true
			}
		}
	}
	return false
}

package email

import (
	"errors"
)

// ErrNotConfigured indica que ninguna forma de configuración SMTP está completa.
var ErrNotConfigured = errors.New("email: smtp transport not configured")

const (
	// KindService: transporte armado desde SMTP_SERVICE.
	KindService = "service"
	// KindHost: transporte armado desde SMTP_HOST/SMTP_PORT.
	KindHost = "host"

	// Puertos usados cuando el servicio es desconocido o SMTP_PORT no es numérico.
	defaultPort       = 587
	defaultSecurePort = 465
	defaultHost       = "localhost"
)

// Resolver implementa TransportResolver sobre Settings.
// No tiene estado mutable: se puede llamar en cada request.
type Resolver struct {
	settings Settings
}

// NewResolver crea un Resolver para la configuración dada.
func NewResolver(s Settings) *Resolver {
	return &Resolver{settings: s}
}

// Resolve aplica el orden de resolución (gana la primera que matchea):
//  1. service + user + pass → transporte del servicio conocido.
//  2. host + port + user + pass → transporte explícito.
//  3. ErrNotConfigured.
func (r *Resolver) Resolve() (Transport, error) {
	s := r.settings

	if s.Service != "" && s.User != "" && s.Pass != "" {
		ep, ok := LookupService(s.Service)
		if !ok {
			// Servicio desconocido: igual se arma el transporte y el envío falla después.
			ep = Endpoint{Name: s.Service, Host: defaultHost, Port: defaultPort}
		}
		return &SMTPTransport{
			Service: s.Service,
			Host:    ep.Host,
			Port:    ep.Port,
			Secure:  ep.Secure,
			User:    s.User,
			Pass:    s.Pass,
		}, nil
	}

	if s.Host != "" && s.Port != "" && s.User != "" && s.Pass != "" {
		secure := s.Secure == "true"
		port, ok := parseLeadingInt(s.Port)
		if !ok || port <= 0 {
			port = defaultPort
			if secure {
				port = defaultSecurePort
			}
		}
		return &SMTPTransport{
			Host:   s.Host,
			Port:   port,
			Secure: secure,
			User:   s.User,
			Pass:   s.Pass,
		}, nil
	}

	return nil, ErrNotConfigured
}

// parseLeadingInt lee el entero decimal al inicio de s (tras espacios y signo opcional),
// ignorando lo que venga después: "587abc" → 587.
func parseLeadingInt(s string) (int, bool) {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
		i++
	}
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	start := i
	n := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		if n > 1<<20 {
			return 0, false
		}
		n = n*10 + int(s[i]-'0')
		i++
	}
	if i == start {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}

package email

// Settings es la configuración SMTP tal como llega del entorno.
// Los valores se guardan crudos; el Resolver decide qué forma está completa.
type Settings struct {
	Service string `env:"SMTP_SERVICE"` // ej: "gmail"
	Host    string `env:"SMTP_HOST"`
	Port    string `env:"SMTP_PORT"`
	Secure  string `env:"SMTP_SECURE"` // solo "true" exacto activa TLS implícito
	User    string `env:"SMTP_USER"`
	Pass    string `env:"SMTP_PASS"`
}

// Addressing define remitente y destinatario de los emails.
// From y To son overrides; DefaultFrom y DefaultTo son los fallbacks configurables.
type Addressing struct {
	From        string `env:"EMAIL_FROM"`
	DefaultFrom string `env:"EMAIL_DEFAULT_FROM" envDefault:"no-reply@example.com"`
	To          string `env:"REVIEW_DEST_EMAIL"`
	DefaultTo   string `env:"REVIEW_DEFAULT_DEST_EMAIL" envDefault:"reviews@example.com"`
}

// Sender elige el remitente: EMAIL_FROM, luego el usuario del transporte, luego el default.
func (a Addressing) Sender(transportUser string) string {
	switch {
	case a.From != "":
		return a.From
	case transportUser != "":
		return transportUser
	default:
		return a.DefaultFrom
	}
}

// Recipient elige el destinatario: REVIEW_DEST_EMAIL o el default.
func (a Addressing) Recipient() string {
	if a.To != "" {
		return a.To
	}
	return a.DefaultTo
}

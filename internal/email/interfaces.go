package email

import "context"

// Message es el email saliente ya compuesto.
type Message struct {
	From    string
	To      string
	Subject string
	Text    string
	HTML    string
}

// Transport envía mensajes por algún mecanismo de entrega.
// Implementado por SMTPTransport.
type Transport interface {
	// Send entrega el mensaje y retorna el Message-ID asignado.
	// Es el único punto bloqueante de un request.
	Send(ctx context.Context, msg Message) (messageID string, err error)

	// Username es el usuario SMTP con el que se autentica el transporte.
	// Se usa como remitente cuando no hay EMAIL_FROM.
	Username() string

	// Kind indica cómo se resolvió: "service" o "host".
	Kind() string
}

// TransportResolver selecciona (o rechaza) un Transport a partir de la configuración.
type TransportResolver interface {
	// Resolve retorna ErrNotConfigured si ninguna forma de configuración está completa.
	Resolve() (Transport, error)
}

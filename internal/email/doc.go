// Package email entrega mensajes a través de un relay SMTP externo.
//
// Arquitectura:
//
//	┌──────────────────────────────┐
//	│   review service (HTTP)      │
//	└──────────────┬───────────────┘
//	               │ Resolve()
//	               ▼
//	┌──────────────────────────────┐
//	│   Resolver                   │  Settings (SMTP_*) → Transport | ErrNotConfigured
//	│   1. service + user + pass   │  (tabla wellknown.yaml)
//	│   2. host + port + user+pass │
//	└──────────────┬───────────────┘
//	               │ Send(ctx, Message)
//	               ▼
//	┌──────────────────────────────┐
//	│   SMTPTransport (go-mail)    │
//	└──────────────────────────────┘
//
// El Resolver no cachea ni valida credenciales: los errores aparecen recién al enviar.
package email

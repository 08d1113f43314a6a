// Package util contiene helpers chicos sin dependencias del dominio.
package util

import "strings"

// MaskEmail oculta la parte local y el primer label del dominio.
// "alice@gmail.com" → "a…@g….com". Se usa para loguear usuarios SMTP.
func MaskEmail(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	at := strings.IndexByte(s, '@')
	if at <= 0 {
		return maskToken(s)
	}

	local, domain := s[:at], s[at+1:]
	if len(local) > 1 {
		local = local[:1] + "…"
	}
	labels := strings.Split(domain, ".")
	if len(labels[0]) > 1 {
		labels[0] = labels[0][:1] + "…"
	}
	return local + "@" + strings.Join(labels, ".")
}

// MaskSecret indica solo si el secreto está presente ("set" / "unset").
func MaskSecret(s string) string {
	if s == "" {
		return "unset"
	}
	return "set"
}

func maskToken(s string) string {
	switch {
	case s == "":
		return ""
	case len(s) <= 3:
		return "***"
	default:
		return s[:1] + "…" + s[len(s)-1:]
	}
}

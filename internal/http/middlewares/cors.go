package middlewares

import (
	"net/http"
	"strings"
)

// WithCORS maneja CORS para los orígenes permitidos.
// "*" permite cualquier origen (sin credenciales).
func WithCORS(allowed []string) Middleware {
	trim := func(s string) string { return strings.TrimRight(strings.TrimSpace(s), "/") }

	wildcard := false
	alist := make([]string, 0, len(allowed))
	for _, v := range allowed {
		v = trim(v)
		if v == "*" {
			wildcard = true
			continue
		}
		if v != "" {
			alist = append(alist, v)
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := trim(r.Header.Get("Origin"))
			h := w.Header()

			allowedOrigin := ""
			switch {
			case wildcard:
				allowedOrigin = "*"
			case origin != "":
				for _, a := range alist {
					if strings.EqualFold(origin, a) {
						allowedOrigin = origin
						break
					}
				}
				// Vary para caches/proxies cuando el header depende del Origin
				h.Add("Vary", "Origin")
			}

			if allowedOrigin != "" {
				h.Set("Access-Control-Allow-Origin", allowedOrigin)
				if allowedOrigin != "*" {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
				h.Set("Access-Control-Expose-Headers", "X-Request-ID")
			}

			// Preflight
			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				if allowedOrigin != "" {
					h.Set("Access-Control-Allow-Methods", "GET,HEAD,PUT,PATCH,POST,DELETE")
					if reqHeaders := r.Header.Get("Access-Control-Request-Headers"); reqHeaders != "" {
						h.Set("Access-Control-Allow-Headers", reqHeaders)
						h.Add("Vary", "Access-Control-Request-Headers")
					}
					h.Set("Access-Control-Max-Age", "600")
				}
				h.Set("Content-Length", "0")
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

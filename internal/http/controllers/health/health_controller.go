// Package health contiene el controller para health checks.
package health

import (
	"net/http"
)

// LivenessBody es el texto que devuelve GET /.
const LivenessBody = "Review email endpoint running"

// HealthController maneja las rutas de health check.
type HealthController struct{}

// NewHealthController crea un nuevo controller de health check.
func NewHealthController() *HealthController {
	return &HealthController{}
}

// Liveness maneja GET /
func (c *HealthController) Liveness(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write([]byte(LivenessBody))
}

package errors

import (
	"encoding/json"
	"net/http"
)

// errorResponse es el body de error: {"success":false,"error":"..."}.
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// WriteError escribe una respuesta HTTP basada en el error proporcionado.
// El detalle interno (Err) nunca se serializa.
func WriteError(w http.ResponseWriter, err error) {
	appErr := FromError(err)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(appErr.HTTPStatus)

	_ = json.NewEncoder(w).Encode(errorResponse{
		Success: false,
		Error:   appErr.Message,
	})
}

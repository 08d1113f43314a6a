package helpers

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"
)

// MaxBodyBytes es el límite del body JSON (100 KiB).
const MaxBodyBytes = 100 << 10

// Errores de ReadJSONBody.
var (
	ErrBodyTooLarge = errors.New("request body too large")
	ErrInvalidJSON  = errors.New("invalid json body")
)

// ReadJSONBody lee el body (hasta MaxBodyBytes) y, si es JSON, lo decodifica en v.
// Tolerante: un Content-Type que no sea JSON o un body vacío dejan v en cero sin error.
// Retorna los bytes leídos para logging de diagnóstico.
func ReadJSONBody(w http.ResponseWriter, r *http.Request, v any) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	defer r.Body.Close()

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			return nil, ErrBodyTooLarge
		}
		return nil, ErrInvalidJSON
	}

	if !isJSON(r.Header.Get("Content-Type")) || len(strings.TrimSpace(string(raw))) == 0 {
		return raw, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return raw, ErrInvalidJSON
	}
	return raw, nil
}

// isJSON acepta application/json y variantes +json.
func isJSON(ct string) bool {
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return false
	}
	return mt == "application/json" || strings.HasSuffix(mt, "+json")
}

// WriteJSON escribe una respuesta JSON estándar.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

package errors

import (
	"fmt"
	"net/http"
)

// AppError es el error estándar de la capa HTTP.
// Message es lo único que ve el cliente; Err queda para los logs.
type AppError struct {
	Code       string `json:"-"`
	Message    string `json:"error"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"`
}

// Error implementa la interfaz error
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap permite acceder al error original
func (e *AppError) Unwrap() error {
	return e.Err
}

// New crea un nuevo AppError
func New(status int, code, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: status,
	}
}

// FromError convierte un error cualquiera en AppError.
// Si no es un AppError, devuelve un error interno genérico conservando la causa.
func FromError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return ErrInternalServerError.WithCause(err)
}

// WithCause agrega el error original (causa).
// Devuelve una COPIA para no mutar las variables globales base.
func (e *AppError) WithCause(err error) *AppError {
	newErr := *e
	newErr.Err = err
	return &newErr
}

// =================================================================================
// LISTA DE ERRORES PREDEFINIDOS
// =================================================================================

// 4xx - Errores de cliente / validación
var (
	ErrMissingFields = &AppError{
		Code:       "MISSING_FIELDS",
		Message:    "Missing required fields",
		HTTPStatus: http.StatusBadRequest,
	}

	ErrInvalidJSON = &AppError{
		Code:       "INVALID_JSON",
		Message:    "Invalid request body",
		HTTPStatus: http.StatusBadRequest,
	}

	ErrBodyTooLarge = &AppError{
		Code:       "BODY_TOO_LARGE",
		Message:    "Request body too large",
		HTTPStatus: http.StatusRequestEntityTooLarge,
	}

	ErrNotFound = &AppError{
		Code:       "NOT_FOUND",
		Message:    "Not found",
		HTTPStatus: http.StatusNotFound,
	}

	ErrMethodNotAllowed = &AppError{
		Code:       "METHOD_NOT_ALLOWED",
		Message:    "Method not allowed",
		HTTPStatus: http.StatusMethodNotAllowed,
	}
)

// 5xx - Errores del servidor
var (
	ErrEmailNotConfigured = &AppError{
		Code:       "EMAIL_NOT_CONFIGURED",
		Message:    "Server email not configured",
		HTTPStatus: http.StatusInternalServerError,
	}

	ErrSendFailed = &AppError{
		Code:       "SEND_FAILED",
		Message:    "Failed to send email",
		HTTPStatus: http.StatusInternalServerError,
	}

	ErrInternalServerError = &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    "Internal server error",
		HTTPStatus: http.StatusInternalServerError,
	}
)

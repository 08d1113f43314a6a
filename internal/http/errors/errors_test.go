package errors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError_AppError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, ErrMissingFields)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":false,"error":"Missing required fields"}`, rec.Body.String())
}

func TestWriteError_HidesCause(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, ErrSendFailed.WithCause(errors.New("535 5.7.8 bad credentials")))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Failed to send email"}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "535")
}

func TestWriteError_GenericError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Internal server error"}`, rec.Body.String())
}

func TestWithCause_DoesNotMutateBase(t *testing.T) {
	cause := errors.New("cause")
	e := ErrSendFailed.WithCause(cause)

	require.ErrorIs(t, e, cause)
	assert.Nil(t, ErrSendFailed.Err)
	assert.Contains(t, e.Error(), "SEND_FAILED")
	assert.Equal(t, "[NOT_FOUND] Not found", ErrNotFound.Error())
}

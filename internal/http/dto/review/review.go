// Package review contiene los DTOs de POST /send-review.
package review

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
)

// SendReviewRequest es el body de POST /send-review.
type SendReviewRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Rating  Rating `json:"rating"`
	Message string `json:"message" validate:"required"`
}

// SendReviewResponse es la respuesta de POST /send-review.
// Error solo se completa cuando Success es false.
type SendReviewResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// SendReviewResult es el resultado interno del ReviewService.
type SendReviewResult struct {
	MessageID string
	To        string
	Transport string
}

// RatingNotProvided es lo que se muestra cuando no hay rating.
const RatingNotProvided = "N/A"

// ErrInvalidRating: rating con un tipo JSON que no sea string, número, bool o null.
var ErrInvalidRating = errors.New("rating must be a string, number or boolean")

// Rating es el rating opcional de una reseña. Acepta string, número, bool o null.
// Los valores "vacíos" (ausente, null, "", 0, false) se muestran como N/A.
type Rating struct {
	value string
	set   bool
}

// NewRating crea un Rating desde texto; "" equivale a sin rating.
func NewRating(s string) Rating {
	return Rating{value: s, set: s != ""}
}

// IsSet indica si el rating tiene un valor mostrable.
func (r Rating) IsSet() bool { return r.set }

// String retorna el valor a mostrar, o N/A.
func (r Rating) String() string {
	if !r.set {
		return RatingNotProvided
	}
	return r.value
}

// UnmarshalJSON implementa json.Unmarshaler.
func (r *Rating) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		*r = Rating{}
		return nil
	}

	switch b[0] {
	case 'n': // null
		*r = Rating{}
		return nil
	case 't':
		*r = Rating{value: "true", set: true}
		return nil
	case 'f':
		*r = Rating{}
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*r = NewRating(s)
		return nil
	case '{', '[':
		return ErrInvalidRating
	}

	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return ErrInvalidRating
	}
	if f == 0 {
		*r = Rating{}
		return nil
	}
	*r = Rating{value: strconv.FormatFloat(f, 'f', -1, 64), set: true}
	return nil
}

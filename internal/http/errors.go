package httpx

import (
	"errors"
	"net/http"

	apperrors "github.com/fixly/fixly-api/internal/errors"
	"github.com/fixly/fixly-api/internal/service"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error string `json:"error"`
}

// statusForError maps the error taxonomy to HTTP status codes. This is the
// only place such a mapping exists; handlers never pick status codes for
// service errors themselves.
func statusForError(err error) int {
	if errors.Is(err, service.ErrUnauthenticated) {
		return http.StatusUnauthorized
	}
	switch apperrors.GetCode(err) {
	case apperrors.ErrCodeValidation, apperrors.ErrCodeForeignKey:
		return http.StatusBadRequest
	case apperrors.ErrCodeForbidden:
		return http.StatusForbidden
	case apperrors.ErrCodeNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeConflict:
		return http.StatusConflict
	case apperrors.ErrCodeCanceled:
		// Client went away; 499 is the de facto status for that.
		return 499
	default:
		return http.StatusInternalServerError
	}
}

// WriteServiceError renders a service-layer error as a JSON response. The
// message is surfaced verbatim for client-caused failures; internal and
// storage faults get a generic message so wire, SQL, and driver details
// never reach the client.
func WriteServiceError(w http.ResponseWriter, err error) {
	status := statusForError(err)

	msg := err.Error()
	switch status {
	case http.StatusInternalServerError:
		msg = "internal server error"
	case http.StatusUnauthorized:
		msg = "invalid or expired credential"
	}
	if apperrors.IsUnavailable(err) {
		msg = "service temporarily unavailable"
	}

	WriteJSON(w, status, errorBody{Error: msg})
}

// writeBadRequest renders a 400 with the given message. Used for request
// shape problems (bad path or query parameters) detected at the boundary.
func writeBadRequest(w http.ResponseWriter, msg string) {
	WriteJSON(w, http.StatusBadRequest, errorBody{Error: msg})
}

package httpx

import (
	"net/http"

	"github.com/fixly/fixly-api/internal/service"
)

// AuthHandlers provides HTTP handlers for identity operations.
type AuthHandlers struct {
	Svc *service.AuthService
}

// Logout handles POST /api/logout: the presented token is revoked until its
// natural expiry, so it can no longer authenticate requests.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := TokenFromContext(r.Context())
	if !ok {
		WriteJSON(w, http.StatusUnauthorized, errorBody{Error: "authentication required"})
		return
	}

	if err := h.Svc.Logout(r.Context(), token); err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

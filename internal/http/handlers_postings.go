// Package httpx provides the JSON HTTP boundary for the marketplace API.
package httpx

import (
	"net/http"
	"strconv"

	"github.com/fixly/fixly-api/internal/domain/model"
	"github.com/fixly/fixly-api/internal/service"
)

// PostingHandlers provides HTTP handlers for job posting operations.
type PostingHandlers struct {
	Svc *service.PostingService
}

// CreatePosting handles POST /api/job-postings.
func (h *PostingHandlers) CreatePosting(w http.ResponseWriter, r *http.Request) {
	var req model.CreatePostingRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if req.ClientID == 0 {
		if p, ok := PrincipalFromContext(r.Context()); ok {
			req.ClientID = p.UserID
		}
	}

	id, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, map[string]any{
		"message": "Job posted successfully!",
		"job_id":  id,
	})
}

// ListPostings handles GET /api/job-postings.
func (h *PostingHandlers) ListPostings(w http.ResponseWriter, r *http.Request) {
	postings, err := h.Svc.List(r.Context())
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, emptyIfNil(postings))
}

// ListClientPostings handles GET /api/job-postings/{userId}.
func (h *PostingHandlers) ListClientPostings(w http.ResponseWriter, r *http.Request) {
	clientID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}

	postings, err := h.Svc.ListForClient(r.Context(), clientID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, emptyIfNil(postings))
}

// ListActivePostings handles GET /api/job-postings/{userId}/active: the
// client's in_progress jobs with the accepted fixer's display identity.
func (h *PostingHandlers) ListActivePostings(w http.ResponseWriter, r *http.Request) {
	clientID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}

	postings, err := h.Svc.ListActiveForClient(r.Context(), clientID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, emptyIfNil(postings))
}

// UpdatePosting handles PUT /api/job-postings/{id}: a full overwrite of the
// mutable field set.
func (h *PostingHandlers) UpdatePosting(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req model.UpdatePostingRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	if err := h.Svc.Update(r.Context(), id, &req); err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"message": "Job updated successfully"})
}

// PatchPosting handles PATCH /api/job-postings/{id}: only the fields present
// in the body are applied.
func (h *PostingHandlers) PatchPosting(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req model.PatchPostingRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if !req.HasUpdates() {
		writeBadRequest(w, "no fields to update")
		return
	}

	if err := h.Svc.Patch(r.Context(), id, &req); err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"message": "Job updated successfully"})
}

// editPostingRequest is the legacy body shape where the posting id rides in
// the payload instead of the path.
type editPostingRequest struct {
	JobID int64 `json:"job_id"`
	model.UpdatePostingRequest
}

// EditPosting handles POST /api/edit-postings, the legacy alias of
// UpdatePosting kept for older clients.
func (h *PostingHandlers) EditPosting(w http.ResponseWriter, r *http.Request) {
	var req editPostingRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if req.JobID <= 0 {
		writeBadRequest(w, "job_id is required")
		return
	}

	if err := h.Svc.Update(r.Context(), req.JobID, &req.UpdatePostingRequest); err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"message": "Job updated successfully"})
}

// DeletePosting handles DELETE /api/job-postings/{id}. The service enforces
// that only the owning client or an admin may delete.
func (h *PostingHandlers) DeletePosting(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		WriteJSON(w, http.StatusUnauthorized, errorBody{Error: "authentication required"})
		return
	}

	if err := h.Svc.Delete(r.Context(), id, principal); err != nil {
		WriteServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// pathID parses a positive int64 path value. Returns false when the value is
// missing or malformed; the 400 response has already been written.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := r.PathValue(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		writeBadRequest(w, "invalid "+name)
		return 0, false
	}
	return id, true
}

// emptyIfNil keeps empty collections rendering as [] rather than null.
func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

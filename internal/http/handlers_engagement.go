package httpx

import (
	"net/http"

	"github.com/fixly/fixly-api/internal/domain/model"
	"github.com/fixly/fixly-api/internal/service"
)

// EngagementHandlers provides HTTP handlers for job completion and fixer
// reviews.
type EngagementHandlers struct {
	Svc *service.EngagementService
}

// completeJobRequest identifies the accepted bid and its posting.
type completeJobRequest struct {
	BidID int64 `json:"bidId"`
	JobID int64 `json:"jobId"`
}

// CompleteJob handles POST /api/complete-job: the posting moves to completed
// and the (job, fixer) pair is archived. Completing an already-completed job
// returns the existing archival record.
func (h *EngagementHandlers) CompleteJob(w http.ResponseWriter, r *http.Request) {
	var req completeJobRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if req.BidID <= 0 || req.JobID <= 0 {
		writeBadRequest(w, "bidId and jobId are required")
		return
	}

	record, err := h.Svc.Complete(r.Context(), req.BidID, req.JobID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"message":       "Job marked as completed",
		"completed_job": record,
	})
}

// RateFixer handles POST /api/job/{id}/rate. Only the client who owns the
// completed job may rate; a repeat rating of the same fixer overwrites the
// prior one.
func (h *EngagementHandlers) RateFixer(w http.ResponseWriter, r *http.Request) {
	jobID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req model.RateFixerRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		WriteJSON(w, http.StatusUnauthorized, errorBody{Error: "authentication required"})
		return
	}

	review, err := h.Svc.RateFixer(r.Context(), jobID, principal, &req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"message": "Rating submitted successfully",
		"review":  review,
	})
}

// ListFixerReviews handles GET /api/fixers/{id}/reviews.
func (h *EngagementHandlers) ListFixerReviews(w http.ResponseWriter, r *http.Request) {
	fixerID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	reviews, err := h.Svc.ReviewsForFixer(r.Context(), fixerID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, emptyIfNil(reviews))
}

package httpx

import (
	"net/http"
	"strconv"

	"github.com/fixly/fixly-api/internal/domain/model"
	"github.com/fixly/fixly-api/internal/service"
)

// BidHandlers provides HTTP handlers for bid operations.
type BidHandlers struct {
	Svc *service.BidService
}

// SubmitBid handles POST /api/job-bids.
func (h *BidHandlers) SubmitBid(w http.ResponseWriter, r *http.Request) {
	var req model.SubmitBidRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if req.FixerID == 0 {
		if p, ok := PrincipalFromContext(r.Context()); ok {
			req.FixerID = p.UserID
		}
	}

	id, err := h.Svc.Submit(r.Context(), &req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, map[string]any{
		"message": "Bid submitted successfully!",
		"bid_id":  id,
	})
}

// ListFixerBids handles GET /api/job-bids?fixer_id=: the fixer's bids joined
// with their parent posting fields.
func (h *BidHandlers) ListFixerBids(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("fixer_id")
	fixerID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || fixerID <= 0 {
		writeBadRequest(w, "invalid fixer_id")
		return
	}

	bids, err := h.Svc.ListForFixer(r.Context(), fixerID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, emptyIfNil(bids))
}

// ListPostingBids handles GET /api/job/{id}/bids: a posting's bids with
// bidder display identity, for the client choosing a winner.
func (h *BidHandlers) ListPostingBids(w http.ResponseWriter, r *http.Request) {
	jobID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	bids, err := h.Svc.ListForPosting(r.Context(), jobID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, emptyIfNil(bids))
}

// UpdateBid handles PUT /api/job-bids/{id}. Only pending bids can change;
// the service enforces that the caller is the bid's fixer or an admin.
func (h *BidHandlers) UpdateBid(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	h.updateBid(w, r, id)
}

// editBidRequest is the legacy body shape where the bid id rides in the
// payload instead of the path.
type editBidRequest struct {
	BidID int64 `json:"bid_id"`
	model.UpdateBidRequest
}

// EditBid handles POST /api/edit-bid, the legacy alias of UpdateBid kept for
// older clients.
func (h *BidHandlers) EditBid(w http.ResponseWriter, r *http.Request) {
	var req editBidRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if req.BidID <= 0 {
		writeBadRequest(w, "bid_id is required")
		return
	}

	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		WriteJSON(w, http.StatusUnauthorized, errorBody{Error: "authentication required"})
		return
	}

	if err := h.Svc.Update(r.Context(), req.BidID, principal, &req.UpdateBidRequest); err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"message": "Bid updated successfully"})
}

func (h *BidHandlers) updateBid(w http.ResponseWriter, r *http.Request, id int64) {
	var req model.UpdateBidRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		WriteJSON(w, http.StatusUnauthorized, errorBody{Error: "authentication required"})
		return
	}

	if err := h.Svc.Update(r.Context(), id, principal, &req); err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"message": "Bid updated successfully"})
}

// DeleteBid handles DELETE /api/job-bids/{id} and its legacy alias
// DELETE /api/delete-bid/{id}.
func (h *BidHandlers) DeleteBid(w http.ResponseWriter, r *http.Request) {
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

// acceptBidRequest identifies the winning bid and its posting.
type acceptBidRequest struct {
	BidID int64 `json:"bidId"`
	JobID int64 `json:"jobId"`
}

// AcceptBid handles POST /api/accept-bids: the posting owner picks the
// winner, sibling bids are discarded, and the job moves to in_progress.
func (h *BidHandlers) AcceptBid(w http.ResponseWriter, r *http.Request) {
	var req acceptBidRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if req.BidID <= 0 || req.JobID <= 0 {
		writeBadRequest(w, "bidId and jobId are required")
		return
	}

	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		WriteJSON(w, http.StatusUnauthorized, errorBody{Error: "authentication required"})
		return
	}

	if err := h.Svc.Accept(r.Context(), req.BidID, req.JobID, principal); err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"message": "Bid accepted and job moved to in progress"})
}

package service

import (
	"context"
	"log/slog"

	"github.com/fixly/fixly-api/internal/core"
	"github.com/fixly/fixly-api/internal/domain/auth"
	"github.com/fixly/fixly-api/internal/domain/model"
	apperrors "github.com/fixly/fixly-api/internal/errors"
)

// BidServiceOptions groups dependencies for BidService.
type BidServiceOptions struct {
	Bids     core.BidRepository
	Postings core.PostingRepository
	Logger   *slog.Logger
}

// BidService owns the bid state machine: submission with duplicate
// prevention, mutation while pending, and the exclusive-winner acceptance.
type BidService struct {
	bids     core.BidRepository
	postings core.PostingRepository
	logger   *slog.Logger
}

// NewBidService constructs a new BidService.
func NewBidService(opts BidServiceOptions) *BidService {
	if opts.Bids == nil {
		panic("BidRepository is required")
	}
	if opts.Postings == nil {
		panic("PostingRepository is required")
	}
	return &BidService{bids: opts.Bids, postings: opts.Postings, logger: opts.Logger}
}

// Submit validates and inserts a pending bid, returning its id. A second
// bid from the same fixer on the same job reports Conflict.
func (s *BidService) Submit(ctx context.Context, req *model.SubmitBidRequest) (int64, error) {
	if req == nil {
		return 0, apperrors.Validation("submit bid request is required")
	}
	if err := req.Validate(); err != nil {
		return 0, err
	}

	id, err := s.bids.Create(ctx, req)
	if err != nil {
		return 0, err
	}
	if s.logger != nil {
		s.logger.InfoContext(ctx, "bid submitted",
			"bid_id", id, "job_id", req.JobPostingID, "fixer_id", req.FixerID)
	}
	return id, nil
}

// ListForPosting returns a posting's bids with bidder display identity.
func (s *BidService) ListForPosting(ctx context.Context, jobPostingID int64) ([]*model.BidWithBidder, error) {
	return s.bids.ListForPosting(ctx, jobPostingID)
}

// ListForFixer returns the fixer's bids with their parent posting fields.
func (s *BidService) ListForFixer(ctx context.Context, fixerID int64) ([]*model.FixerBid, error) {
	return s.bids.ListForFixer(ctx, fixerID)
}

// Update re-writes amount and description of a pending bid. Only the bid's
// own fixer or an admin may update it.
func (s *BidService) Update(ctx context.Context, id int64, principal auth.Principal, req *model.UpdateBidRequest) error {
	if req == nil {
		return apperrors.Validation("update bid request is required")
	}
	if err := req.Validate(); err != nil {
		return err
	}
	if err := s.authorizeBidOwner(ctx, id, principal); err != nil {
		return err
	}
	return s.bids.Update(ctx, id, req)
}

// Accept finalizes one bid and discards its siblings, moving the posting to
// in_progress, all in one transaction. Only the posting's owning client or
// an admin may accept.
func (s *BidService) Accept(ctx context.Context, bidID, jobPostingID int64, principal auth.Principal) error {
	posting, err := s.postings.GetByID(ctx, jobPostingID)
	if err != nil {
		return err
	}
	if posting.ClientID != principal.UserID && !principal.IsAdmin() {
		return apperrors.Forbidden("you are not authorized to accept bids on this posting")
	}

	if err := s.bids.Accept(ctx, bidID, jobPostingID); err != nil {
		return err
	}
	if s.logger != nil {
		s.logger.InfoContext(ctx, "bid accepted",
			"bid_id", bidID, "job_id", jobPostingID, "user_id", principal.UserID)
	}
	return nil
}

// Delete removes a single bid. Only the bid's own fixer or an admin may
// delete it.
func (s *BidService) Delete(ctx context.Context, id int64, principal auth.Principal) error {
	if err := s.authorizeBidOwner(ctx, id, principal); err != nil {
		return err
	}

	removed, err := s.bids.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return apperrors.NotFound("job bid not found")
	}
	return nil
}

func (s *BidService) authorizeBidOwner(ctx context.Context, bidID int64, principal auth.Principal) error {
	bid, err := s.bids.GetByID(ctx, bidID)
	if err != nil {
		return err
	}
	if bid.FixerID != principal.UserID && !principal.IsAdmin() {
		return apperrors.Forbidden("you are not authorized to modify this bid")
	}
	return nil
}

// Package core declares the repository ports consumed by the service layer.
// Services depend on these interfaces, never on internal/data directly.
package core

import (
	"context"
	"time"

	"github.com/fixly/fixly-api/internal/domain/model"
)

// PostingRepository is the persistence port for job postings.
type PostingRepository interface {
	// Create inserts a posting with status open and returns the new id.
	Create(ctx context.Context, req *model.CreatePostingRequest) (int64, error)
	// GetByID returns a posting or a NotFound error.
	GetByID(ctx context.Context, id int64) (*model.JobPosting, error)
	// List returns all postings ordered by created_at descending.
	List(ctx context.Context) ([]*model.JobPosting, error)
	// ListForClient returns the client's postings ordered by created_at descending.
	ListForClient(ctx context.Context, clientID int64) ([]*model.JobPosting, error)
	// ListActiveForClient returns the client's in_progress postings joined
	// with the accepted bid's fixer identity when present.
	ListActiveForClient(ctx context.Context, clientID int64) ([]*model.ActivePosting, error)
	// Update overwrites the mutable field set; zero rows affected → NotFound.
	Update(ctx context.Context, id int64, req *model.UpdatePostingRequest) error
	// Patch applies only the present fields; zero rows affected → NotFound.
	Patch(ctx context.Context, id int64, req *model.PatchPostingRequest) error
	// Delete removes the posting and its bids in one transaction.
	// The boolean reports whether a posting row was removed.
	Delete(ctx context.Context, id int64) (bool, error)
}

// BidRepository is the persistence port for job bids.
type BidRepository interface {
	// Create inserts a pending bid and returns the new id. A duplicate
	// (job_posting_id, fixer_id) pair surfaces as a Conflict error from the
	// storage-level uniqueness constraint.
	Create(ctx context.Context, req *model.SubmitBidRequest) (int64, error)
	// GetByID returns a bid or a NotFound error.
	GetByID(ctx context.Context, id int64) (*model.JobBid, error)
	// ListForPosting returns a posting's bids joined with bidder identity,
	// ordered by created_at descending.
	ListForPosting(ctx context.Context, jobPostingID int64) ([]*model.BidWithBidder, error)
	// ListForFixer returns the fixer's bids joined with parent posting
	// fields, ordered by created_at descending.
	ListForFixer(ctx context.Context, fixerID int64) ([]*model.FixerBid, error)
	// Update re-writes amount and description of a still-pending bid; an
	// unknown id or a non-pending bid → NotFound.
	Update(ctx context.Context, id int64, req *model.UpdateBidRequest) error
	// Accept atomically marks the bid accepted, removes sibling bids, and
	// moves the posting to in_progress. A bid id that does not match the
	// posting (or is no longer pending) → NotFound with no partial effect.
	Accept(ctx context.Context, bidID, jobPostingID int64) error
	// Delete removes a single bid; the boolean reports whether a row was removed.
	Delete(ctx context.Context, id int64) (bool, error)
}

// EngagementRepository is the persistence port for completion archival and
// fixer reviews.
type EngagementRepository interface {
	// Complete atomically marks the posting completed and records the
	// (job, fixer) pair in completed_jobs. Re-completing the same job does
	// not duplicate the archival row.
	Complete(ctx context.Context, bidID, jobPostingID int64) (*model.CompletedJob, error)
	// ClientOwnsCompletedJob reports whether a completed posting exists with
	// the given id and owning client.
	ClientOwnsCompletedJob(ctx context.Context, jobPostingID, clientID int64) (bool, error)
	// UpsertReview inserts or overwrites the (client, fixer) review.
	UpsertReview(ctx context.Context, clientID int64, req *model.RateFixerRequest) (*model.Review, error)
	// ListReviewsForFixer returns a fixer's reviews, newest first.
	ListReviewsForFixer(ctx context.Context, fixerID int64) ([]*model.Review, error)
}

// TokenRevoker is the shared, expiring revocation list for logout tokens.
type TokenRevoker interface {
	// Revoke marks the credential revoked until its natural expiry.
	Revoke(ctx context.Context, key string, ttl time.Duration) error
	// IsRevoked reports whether the credential has been revoked.
	IsRevoked(ctx context.Context, key string) (bool, error)
}

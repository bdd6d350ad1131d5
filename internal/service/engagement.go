package service

import (
	"context"
	"log/slog"

	"github.com/fixly/fixly-api/internal/core"
	"github.com/fixly/fixly-api/internal/domain/auth"
	"github.com/fixly/fixly-api/internal/domain/model"
	apperrors "github.com/fixly/fixly-api/internal/errors"
)

// EngagementServiceOptions groups dependencies for EngagementService.
type EngagementServiceOptions struct {
	Repo   core.EngagementRepository
	Logger *slog.Logger
}

// EngagementService owns the transition from in-progress to completed and
// the one-review-per-(client,fixer) rating flow.
type EngagementService struct {
	repo   core.EngagementRepository
	logger *slog.Logger
}

// NewEngagementService constructs a new EngagementService.
func NewEngagementService(opts EngagementServiceOptions) *EngagementService {
	if opts.Repo == nil {
		panic("EngagementRepository is required")
	}
	return &EngagementService{repo: opts.Repo, logger: opts.Logger}
}

// Complete marks the job completed and archives the (job, fixer) pair.
// Completing an already-completed job is idempotent.
func (s *EngagementService) Complete(ctx context.Context, bidID, jobPostingID int64) (*model.CompletedJob, error) {
	record, err := s.repo.Complete(ctx, bidID, jobPostingID)
	if err != nil {
		return nil, err
	}
	if s.logger != nil {
		s.logger.InfoContext(ctx, "job completed",
			"job_id", jobPostingID, "bid_id", bidID, "fixer_id", record.FixerID)
	}
	return record, nil
}

// RateFixer upserts the principal's review of a fixer. The principal must
// own a completed posting with the given id; that is the whole
// authorization check. Reviews are pair-keyed, so rating the same fixer
// again (even through a different job) overwrites the prior rating.
func (s *EngagementService) RateFixer(ctx context.Context, jobPostingID int64, principal auth.Principal, req *model.RateFixerRequest) (*model.Review, error) {
	if req == nil {
		return nil, apperrors.Validation("rate fixer request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	owns, err := s.repo.ClientOwnsCompletedJob(ctx, jobPostingID, principal.UserID)
	if err != nil {
		return nil, err
	}
	if !owns {
		return nil, apperrors.Forbidden("you are not allowed to rate this job")
	}

	review, err := s.repo.UpsertReview(ctx, principal.UserID, req)
	if err != nil {
		return nil, err
	}
	if s.logger != nil {
		s.logger.InfoContext(ctx, "fixer rated",
			"job_id", jobPostingID, "client_id", principal.UserID,
			"fixer_id", req.FixerID, "rating", req.Rating)
	}
	return review, nil
}

// ReviewsForFixer returns a fixer's reviews, newest first.
func (s *EngagementService) ReviewsForFixer(ctx context.Context, fixerID int64) ([]*model.Review, error) {
	return s.repo.ListReviewsForFixer(ctx, fixerID)
}

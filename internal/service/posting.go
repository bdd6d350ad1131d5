// Package service contains the business logic for the marketplace core.
// Services depend on the repository ports in internal/core and are consumed
// by the HTTP layer.
package service

import (
	"context"
	"log/slog"

	"github.com/fixly/fixly-api/internal/core"
	"github.com/fixly/fixly-api/internal/domain/auth"
	"github.com/fixly/fixly-api/internal/domain/model"
	apperrors "github.com/fixly/fixly-api/internal/errors"
)

// PostingServiceOptions groups dependencies for PostingService.
type PostingServiceOptions struct {
	Repo   core.PostingRepository
	Logger *slog.Logger
}

// PostingService owns the job-posting lifecycle: creation, listing,
// mutation, and owner-scoped deletion with bid cascade.
type PostingService struct {
	repo   core.PostingRepository
	logger *slog.Logger
}

// NewPostingService constructs a new PostingService.
func NewPostingService(opts PostingServiceOptions) *PostingService {
	if opts.Repo == nil {
		panic("PostingRepository is required")
	}
	return &PostingService{repo: opts.Repo, logger: opts.Logger}
}

// Create validates and inserts a new posting, returning its id.
func (s *PostingService) Create(ctx context.Context, req *model.CreatePostingRequest) (int64, error) {
	if req == nil {
		return 0, apperrors.Validation("create posting request is required")
	}
	if err := req.Validate(); err != nil {
		return 0, err
	}

	id, err := s.repo.Create(ctx, req)
	if err != nil {
		return 0, err
	}
	if s.logger != nil {
		s.logger.InfoContext(ctx, "job posting created", "job_id", id, "client_id", req.ClientID)
	}
	return id, nil
}

// List returns all postings, newest first. An empty result is a valid
// empty collection, never an error.
func (s *PostingService) List(ctx context.Context) ([]*model.JobPosting, error) {
	return s.repo.List(ctx)
}

// ListForClient returns the client's postings, newest first.
func (s *PostingService) ListForClient(ctx context.Context, clientID int64) ([]*model.JobPosting, error) {
	return s.repo.ListForClient(ctx, clientID)
}

// ListActiveForClient returns the client's in_progress postings with the
// accepted fixer's display identity.
func (s *PostingService) ListActiveForClient(ctx context.Context, clientID int64) ([]*model.ActivePosting, error) {
	return s.repo.ListActiveForClient(ctx, clientID)
}

// Update overwrites the full mutable field set of a posting.
func (s *PostingService) Update(ctx context.Context, id int64, req *model.UpdatePostingRequest) error {
	if req == nil {
		return apperrors.Validation("update posting request is required")
	}
	if err := req.Validate(); err != nil {
		return err
	}
	return s.repo.Update(ctx, id, req)
}

// Patch applies only the present fields of req.
func (s *PostingService) Patch(ctx context.Context, id int64, req *model.PatchPostingRequest) error {
	if req == nil {
		return apperrors.Validation("patch posting request is required")
	}
	if err := req.Validate(); err != nil {
		return err
	}
	return s.repo.Patch(ctx, id, req)
}

// Delete removes a posting and its bids. Only the owning client or an admin
// may delete; anyone else gets Forbidden without touching the rows.
func (s *PostingService) Delete(ctx context.Context, id int64, principal auth.Principal) error {
	posting, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if posting.ClientID != principal.UserID && !principal.IsAdmin() {
		return apperrors.Forbidden("you are not authorized to delete this posting")
	}

	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return apperrors.NotFound("job posting not found")
	}
	if s.logger != nil {
		s.logger.InfoContext(ctx, "job posting deleted", "job_id", id, "user_id", principal.UserID)
	}
	return nil
}

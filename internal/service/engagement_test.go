package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fixly/fixly-api/internal/domain/auth"
	"github.com/fixly/fixly-api/internal/domain/model"
	apperrors "github.com/fixly/fixly-api/internal/errors"
	"github.com/fixly/fixly-api/internal/mocks"
)

func newTestEngagementService(t *testing.T) (*EngagementService, *mocks.MockEngagementRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockEngagementRepository(ctrl)
	return NewEngagementService(EngagementServiceOptions{Repo: repo}), repo
}

func TestEngagementService_Complete_Success(t *testing.T) {
	svc, repo := newTestEngagementService(t)
	expected := &model.CompletedJob{ID: 1, JobPostingID: 3, FixerID: 2}

	repo.EXPECT().Complete(gomock.Any(), int64(10), int64(3)).Return(expected, nil)

	record, err := svc.Complete(context.Background(), 10, 3)
	require.NoError(t, err)
	assert.Equal(t, expected, record)
}

func TestEngagementService_Complete_MismatchedBid(t *testing.T) {
	svc, repo := newTestEngagementService(t)

	repo.EXPECT().Complete(gomock.Any(), int64(10), int64(3)).
		Return(nil, apperrors.NotFound("bid not found for this job"))

	_, err := svc.Complete(context.Background(), 10, 3)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestEngagementService_RateFixer_Success(t *testing.T) {
	svc, repo := newTestEngagementService(t)
	principal := auth.Principal{UserID: 7, Role: auth.RoleClient}
	req := &model.RateFixerRequest{FixerID: 2, Rating: 5}
	expected := &model.Review{ID: 1, ClientID: 7, FixerID: 2, Rating: 5}

	repo.EXPECT().ClientOwnsCompletedJob(gomock.Any(), int64(3), int64(7)).Return(true, nil)
	repo.EXPECT().UpsertReview(gomock.Any(), int64(7), req).Return(expected, nil)

	review, err := svc.RateFixer(context.Background(), 3, principal, req)
	require.NoError(t, err)
	assert.Equal(t, expected, review)
}

func TestEngagementService_RateFixer_NotOwnerForbidden(t *testing.T) {
	svc, repo := newTestEngagementService(t)
	principal := auth.Principal{UserID: 99, Role: auth.RoleClient}

	repo.EXPECT().ClientOwnsCompletedJob(gomock.Any(), int64(3), int64(99)).Return(false, nil)

	_, err := svc.RateFixer(context.Background(), 3, principal, &model.RateFixerRequest{FixerID: 2, Rating: 4})
	require.Error(t, err)
	assert.True(t, apperrors.IsForbidden(err))
}

func TestEngagementService_RateFixer_RatingOutOfRange(t *testing.T) {
	svc, _ := newTestEngagementService(t)
	principal := auth.Principal{UserID: 7, Role: auth.RoleClient}

	for _, rating := range []int16{0, 6, -1} {
		_, err := svc.RateFixer(context.Background(), 3, principal, &model.RateFixerRequest{FixerID: 2, Rating: rating})
		require.Error(t, err, "rating %d", rating)
		assert.True(t, apperrors.IsValidation(err))
	}
}

func TestEngagementService_RateFixer_NilRequest(t *testing.T) {
	svc, _ := newTestEngagementService(t)
	principal := auth.Principal{UserID: 7, Role: auth.RoleClient}

	_, err := svc.RateFixer(context.Background(), 3, principal, nil)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestEngagementService_ReviewsForFixer(t *testing.T) {
	svc, repo := newTestEngagementService(t)
	expected := []*model.Review{{ID: 2, ClientID: 7, FixerID: 2, Rating: 3}}

	repo.EXPECT().ListReviewsForFixer(gomock.Any(), int64(2)).Return(expected, nil)

	reviews, err := svc.ReviewsForFixer(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, expected, reviews)
}

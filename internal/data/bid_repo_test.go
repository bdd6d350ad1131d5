package data

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fixly/fixly-api/internal/domain/model"
	apperrors "github.com/fixly/fixly-api/internal/errors"
	"github.com/fixly/fixly-api/internal/testutil"
)

func seedBid(t *testing.T, repo *BidRepo, jobID, fixerID int64, amount float64) int64 {
	t.Helper()
	id, err := repo.Create(context.Background(), &model.SubmitBidRequest{
		JobPostingID: jobID, FixerID: fixerID, BidAmount: amount,
	})
	require.NoError(t, err)
	return id
}

func TestBidRepo_DuplicateBidConflict(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		postings := NewPostingRepo(db)
		bids := NewBidRepo(db)
		maria := testutil.SeedUser(t, db, "maria", "client")
		bob := testutil.SeedUser(t, db, "bob", "fixer")
		jobID := seedPosting(t, postings, maria, "Job")

		seedBid(t, bids, jobID, bob, 100)

		_, err := bids.Create(context.Background(), &model.SubmitBidRequest{
			JobPostingID: jobID, FixerID: bob, BidAmount: 90,
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsConflict(err))
		assert.Contains(t, err.Error(), "already exists")
	})
}

func TestBidRepo_ListForPosting_IncludesBidderIdentity(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		postings := NewPostingRepo(db)
		bids := NewBidRepo(db)
		maria := testutil.SeedUser(t, db, "maria", "client")
		bob := testutil.SeedUser(t, db, "bob", "fixer")
		alice := testutil.SeedUser(t, db, "alice", "fixer")
		jobID := seedPosting(t, postings, maria, "Job")

		seedBid(t, bids, jobID, bob, 100)
		seedBid(t, bids, jobID, alice, 95)

		result, err := bids.ListForPosting(context.Background(), jobID)
		require.NoError(t, err)
		require.Len(t, result, 2)

		names := []string{result[0].FixerName, result[1].FixerName}
		assert.ElementsMatch(t, []string{"bob", "alice"}, names)
	})
}

func TestBidRepo_ListForFixer_IncludesAccepted(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		postings := NewPostingRepo(db)
		bids := NewBidRepo(db)
		maria := testutil.SeedUser(t, db, "maria", "client")
		bob := testutil.SeedUser(t, db, "bob", "fixer")

		jobA := seedPosting(t, postings, maria, "Job A")
		jobB := seedPosting(t, postings, maria, "Job B")
		bidA := seedBid(t, bids, jobA, bob, 100)
		seedBid(t, bids, jobB, bob, 150)

		require.NoError(t, bids.Accept(context.Background(), bidA, jobA))

		result, err := bids.ListForFixer(context.Background(), bob)
		require.NoError(t, err)
		require.Len(t, result, 2)

		statuses := []model.BidStatus{result[0].Status, result[1].Status}
		assert.ElementsMatch(t, []model.BidStatus{model.BidStatusAccepted, model.BidStatusPending}, statuses)
	})
}

func TestBidRepo_Update_PendingOnly(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		postings := NewPostingRepo(db)
		bids := NewBidRepo(db)
		maria := testutil.SeedUser(t, db, "maria", "client")
		bob := testutil.SeedUser(t, db, "bob", "fixer")
		jobID := seedPosting(t, postings, maria, "Job")
		bidID := seedBid(t, bids, jobID, bob, 100)

		require.NoError(t, bids.Update(context.Background(), bidID, &model.UpdateBidRequest{BidAmount: 120}))

		bid, err := bids.GetByID(context.Background(), bidID)
		require.NoError(t, err)
		assert.InEpsilon(t, 120.0, bid.BidAmount, 0.001)

		// Once accepted, the bid is no longer mutable.
		require.NoError(t, bids.Accept(context.Background(), bidID, jobID))
		err = bids.Update(context.Background(), bidID, &model.UpdateBidRequest{BidAmount: 130})
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestBidRepo_Accept_ExclusiveWinner(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		postings := NewPostingRepo(db)
		bids := NewBidRepo(db)
		maria := testutil.SeedUser(t, db, "maria", "client")
		bob := testutil.SeedUser(t, db, "bob", "fixer")
		alice := testutil.SeedUser(t, db, "alice", "fixer")
		jobID := seedPosting(t, postings, maria, "Job")

		winner := seedBid(t, bids, jobID, bob, 100)
		loser := seedBid(t, bids, jobID, alice, 95)

		require.NoError(t, bids.Accept(context.Background(), winner, jobID))

		// Winner is accepted, sibling is gone, posting is in progress.
		bid, err := bids.GetByID(context.Background(), winner)
		require.NoError(t, err)
		assert.Equal(t, model.BidStatusAccepted, bid.Status)

		_, err = bids.GetByID(context.Background(), loser)
		assert.True(t, apperrors.IsNotFound(err))

		posting, err := postings.GetByID(context.Background(), jobID)
		require.NoError(t, err)
		assert.Equal(t, model.PostingStatusInProgress, posting.Status)
	})
}

func TestBidRepo_Accept_MismatchedJobLeavesNoPartialEffect(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		postings := NewPostingRepo(db)
		bids := NewBidRepo(db)
		maria := testutil.SeedUser(t, db, "maria", "client")
		bob := testutil.SeedUser(t, db, "bob", "fixer")

		jobA := seedPosting(t, postings, maria, "Job A")
		jobB := seedPosting(t, postings, maria, "Job B")
		bidA := seedBid(t, bids, jobA, bob, 100)

		err := bids.Accept(context.Background(), bidA, jobB)
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))

		// Nothing moved: bid still pending, both postings still open.
		bid, err := bids.GetByID(context.Background(), bidA)
		require.NoError(t, err)
		assert.Equal(t, model.BidStatusPending, bid.Status)

		for _, jobID := range []int64{jobA, jobB} {
			posting, perr := postings.GetByID(context.Background(), jobID)
			require.NoError(t, perr)
			assert.Equal(t, model.PostingStatusOpen, posting.Status)
		}
	})
}

func TestBidRepo_Accept_AlreadyAccepted(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		postings := NewPostingRepo(db)
		bids := NewBidRepo(db)
		maria := testutil.SeedUser(t, db, "maria", "client")
		bob := testutil.SeedUser(t, db, "bob", "fixer")
		jobID := seedPosting(t, postings, maria, "Job")
		bidID := seedBid(t, bids, jobID, bob, 100)

		require.NoError(t, bids.Accept(context.Background(), bidID, jobID))

		err := bids.Accept(context.Background(), bidID, jobID)
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestBidRepo_Delete(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		postings := NewPostingRepo(db)
		bids := NewBidRepo(db)
		maria := testutil.SeedUser(t, db, "maria", "client")
		bob := testutil.SeedUser(t, db, "bob", "fixer")
		jobID := seedPosting(t, postings, maria, "Job")
		bidID := seedBid(t, bids, jobID, bob, 100)

		removed, err := bids.Delete(context.Background(), bidID)
		require.NoError(t, err)
		assert.True(t, removed)

		removed, err = bids.Delete(context.Background(), bidID)
		require.NoError(t, err)
		assert.False(t, removed)
	})
}

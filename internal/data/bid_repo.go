package data

import (
	"context"
	"database/sql"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/fixly/fixly-api/internal/data/pgxutil"
	"github.com/fixly/fixly-api/internal/domain/model"
	apperrors "github.com/fixly/fixly-api/internal/errors"
)

// BidRepo provides database operations for job bids.
type BidRepo struct {
	DB      *sql.DB
	timeout time.Duration
	clock   TimeProvider
}

// NewBidRepo creates a BidRepo with default options.
func NewBidRepo(db *sql.DB) *BidRepo {
	return NewBidRepoWithOptions(db, RepoOptions{})
}

// NewBidRepoWithOptions creates a BidRepo with explicit options.
func NewBidRepoWithOptions(db *sql.DB, opts RepoOptions) *BidRepo {
	return &BidRepo{DB: db, timeout: opts.queryTimeout(), clock: opts.timeProvider()}
}

const bidColumns = `
	id, job_posting_id, fixer_id, bid_amount, description, status, created_at`

func (r *BidRepo) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

// Create inserts a pending bid and returns its id. The storage-level
// uniqueness constraint on (job_posting_id, fixer_id) serializes concurrent
// submissions; a duplicate surfaces as a Conflict error.
func (r *BidRepo) Create(ctx context.Context, req *model.SubmitBidRequest) (int64, error) {
	if req == nil {
		return 0, apperrors.Validation("submit bid request is required")
	}
	if err := req.Validate(); err != nil {
		return 0, err
	}

	ctx, cancel := r.opContext(ctx)
	defer cancel()

	var id int64
	err := pgxutil.WithConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, `
			INSERT INTO job_bids (job_posting_id, fixer_id, bid_amount, description, status, created_at)
			VALUES ($1, $2, $3, $4, 'pending', $5)
			RETURNING id`,
			req.JobPostingID,
			req.FixerID,
			req.BidAmount,
			req.Description,
			r.clock.Now().UTC(),
		).Scan(&id)
	})
	if err != nil {
		return 0, apperrors.MapDBError(err)
	}
	return id, nil
}

// GetByID retrieves a bid by id.
func (r *BidRepo) GetByID(ctx context.Context, id int64) (*model.JobBid, error) {
	ctx, cancel := r.opContext(ctx)
	defer cancel()

	var bid model.JobBid
	err := pgxutil.WithConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			`SELECT `+bidColumns+` FROM job_bids WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		bid, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.JobBid])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &bid, nil
}

// ListForPosting retrieves a posting's bids joined with bidder identity,
// newest first.
func (r *BidRepo) ListForPosting(ctx context.Context, jobPostingID int64) ([]*model.BidWithBidder, error) {
	ctx, cancel := r.opContext(ctx)
	defer cancel()

	var rowsOut []model.BidWithBidder
	err := pgxutil.WithConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT jb.id, jb.job_posting_id, jb.fixer_id, jb.bid_amount, jb.description,
			       jb.status, jb.created_at,
			       u.username AS fixer_name, u.profile_picture
			FROM job_bids jb
			JOIN users u ON u.id = jb.fixer_id
			WHERE jb.job_posting_id = $1
			ORDER BY jb.created_at DESC`, jobPostingID)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.BidWithBidder])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}

	res := make([]*model.BidWithBidder, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// ListForFixer retrieves the fixer's bids joined with the parent posting's
// public fields, newest first. Accepted bids are included; a bid stays
// visible to its fixer until the job concludes.
func (r *BidRepo) ListForFixer(ctx context.Context, fixerID int64) ([]*model.FixerBid, error) {
	ctx, cancel := r.opContext(ctx)
	defer cancel()

	var rowsOut []model.FixerBid
	err := pgxutil.WithConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT jb.id AS bid_id, jb.job_posting_id, jb.bid_amount, jb.status, jb.created_at,
			       jp.title, jp.description, jp.location, jp.urgency, jp.min_budget, jp.max_budget
			FROM job_bids jb
			JOIN job_postings jp ON jp.id = jb.job_posting_id
			WHERE jb.fixer_id = $1
			ORDER BY jb.created_at DESC`, fixerID)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.FixerBid])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}

	res := make([]*model.FixerBid, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Update re-writes amount and description of a still-pending bid. Accepted
// bids are immutable, so an accepted or unknown id affects zero rows and
// reports NotFound.
func (r *BidRepo) Update(ctx context.Context, id int64, req *model.UpdateBidRequest) error {
	if req == nil {
		return apperrors.Validation("update bid request is required")
	}
	if err := req.Validate(); err != nil {
		return err
	}

	ctx, cancel := r.opContext(ctx)
	defer cancel()

	err := pgxutil.WithConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `
			UPDATE job_bids
			SET bid_amount = $1, description = $2
			WHERE id = $3 AND status = 'pending'`,
			req.BidAmount, req.Description, id)
		if err != nil {
			return err
		}
		if ct.RowsAffected() == 0 {
			return apperrors.NotFound("job bid not found")
		}
		return nil
	})
	return apperrors.MapDBError(err)
}

// Accept performs the exclusive-winner transition as one atomic unit:
// the target bid becomes accepted, every sibling bid is removed, and the
// parent posting moves to in_progress. If the bid does not match the posting
// or is no longer pending, nothing changes and NotFound is reported.
func (r *BidRepo) Accept(ctx context.Context, bidID, jobPostingID int64) error {
	ctx, cancel := r.opContext(ctx)
	defer cancel()

	err := pgxutil.WithReadCommittedTx(ctx, r.DB, func(tx pgx.Tx) error {
		ct, err := tx.Exec(ctx, `
			UPDATE job_bids
			SET status = 'accepted'
			WHERE id = $1 AND job_posting_id = $2 AND status = 'pending'`,
			bidID, jobPostingID)
		if err != nil {
			return err
		}
		if ct.RowsAffected() == 0 {
			return apperrors.NotFound("bid not found for this job")
		}

		if _, err = tx.Exec(ctx, `
			DELETE FROM job_bids
			WHERE job_posting_id = $1 AND id <> $2`,
			jobPostingID, bidID); err != nil {
			return err
		}

		ct, err = tx.Exec(ctx, `
			UPDATE job_postings
			SET status = 'in_progress'
			WHERE id = $1`, jobPostingID)
		if err != nil {
			return err
		}
		if ct.RowsAffected() == 0 {
			return apperrors.NotFound("job posting not found")
		}
		return nil
	})
	return apperrors.MapDBError(err)
}

// Delete removes a single bid. The boolean reports whether a row was removed.
func (r *BidRepo) Delete(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := r.opContext(ctx)
	defer cancel()

	var removed bool
	err := pgxutil.WithConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM job_bids WHERE id = $1`, id)
		if err != nil {
			return err
		}
		removed = ct.RowsAffected() > 0
		return nil
	})
	if err != nil {
		return false, apperrors.MapDBError(err)
	}
	return removed, nil
}

package data

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/fixly/fixly-api/internal/data/pgxutil"
	"github.com/fixly/fixly-api/internal/domain/model"
	apperrors "github.com/fixly/fixly-api/internal/errors"
)

// EngagementRepo provides database operations for job completion archival
// and fixer reviews.
type EngagementRepo struct {
	DB      *sql.DB
	timeout time.Duration
	clock   TimeProvider
}

// NewEngagementRepo creates an EngagementRepo with default options.
func NewEngagementRepo(db *sql.DB) *EngagementRepo {
	return NewEngagementRepoWithOptions(db, RepoOptions{})
}

// NewEngagementRepoWithOptions creates an EngagementRepo with explicit options.
func NewEngagementRepoWithOptions(db *sql.DB, opts RepoOptions) *EngagementRepo {
	return &EngagementRepo{DB: db, timeout: opts.queryTimeout(), clock: opts.timeProvider()}
}

func (r *EngagementRepo) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

// Complete marks the posting completed and archives the (job, fixer) pair in
// one transaction; a partial state (posting completed without an archival
// row, or vice versa) cannot persist. The unique key on
// completed_jobs.job_posting_id makes re-completion idempotent at the
// archival level.
func (r *EngagementRepo) Complete(ctx context.Context, bidID, jobPostingID int64) (*model.CompletedJob, error) {
	ctx, cancel := r.opContext(ctx)
	defer cancel()

	var out model.CompletedJob
	err := pgxutil.WithReadCommittedTx(ctx, r.DB, func(tx pgx.Tx) error {
		var fixerID int64
		err := tx.QueryRow(ctx, `
			SELECT fixer_id FROM job_bids
			WHERE id = $1 AND job_posting_id = $2`,
			bidID, jobPostingID).Scan(&fixerID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.NotFound("bid not found for this job")
			}
			return err
		}

		ct, err := tx.Exec(ctx, `
			UPDATE job_postings
			SET status = 'completed'
			WHERE id = $1`, jobPostingID)
		if err != nil {
			return err
		}
		if ct.RowsAffected() == 0 {
			return apperrors.NotFound("job posting not found")
		}

		if _, err = tx.Exec(ctx, `
			INSERT INTO completed_jobs (job_posting_id, fixer_id, completed_at)
			VALUES ($1, $2, $3)
			ON CONFLICT (job_posting_id) DO NOTHING`,
			jobPostingID, fixerID, r.clock.Now().UTC()); err != nil {
			return err
		}

		rows, err := tx.Query(ctx, `
			SELECT id, job_posting_id, fixer_id, completed_at
			FROM completed_jobs
			WHERE job_posting_id = $1`, jobPostingID)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.CompletedJob])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// ClientOwnsCompletedJob reports whether a completed posting with the given
// id belongs to the client. This is the authorization gate for rating.
func (r *EngagementRepo) ClientOwnsCompletedJob(ctx context.Context, jobPostingID, clientID int64) (bool, error) {
	ctx, cancel := r.opContext(ctx)
	defer cancel()

	var owns bool
	err := pgxutil.WithConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, `
			SELECT EXISTS(
				SELECT 1 FROM job_postings
				WHERE id = $1 AND client_id = $2 AND status = 'completed'
			)`, jobPostingID, clientID).Scan(&owns)
	})
	if err != nil {
		return false, apperrors.MapDBError(err)
	}
	return owns, nil
}

// UpsertReview inserts or overwrites the review keyed by (client, fixer).
// The timestamp moves forward on overwrite so the latest rating wins.
func (r *EngagementRepo) UpsertReview(ctx context.Context, clientID int64, req *model.RateFixerRequest) (*model.Review, error) {
	if req == nil {
		return nil, apperrors.Validation("rate fixer request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := r.opContext(ctx)
	defer cancel()

	var out model.Review
	err := pgxutil.WithConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO reviews (client_id, fixer_id, rating, comment, created_at)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (client_id, fixer_id) DO UPDATE
			SET rating = EXCLUDED.rating,
			    comment = EXCLUDED.comment,
			    created_at = EXCLUDED.created_at
			RETURNING id, client_id, fixer_id, rating, comment, created_at`,
			clientID, req.FixerID, req.Rating, req.Comment, r.clock.Now().UTC())
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Review])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// ListReviewsForFixer returns a fixer's reviews, newest first.
func (r *EngagementRepo) ListReviewsForFixer(ctx context.Context, fixerID int64) ([]*model.Review, error) {
	ctx, cancel := r.opContext(ctx)
	defer cancel()

	var rowsOut []model.Review
	err := pgxutil.WithConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT id, client_id, fixer_id, rating, comment, created_at
			FROM reviews
			WHERE fixer_id = $1
			ORDER BY created_at DESC`, fixerID)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Review])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}

	res := make([]*model.Review, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

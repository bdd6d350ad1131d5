package data

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/fixly/fixly-api/internal/data/pgxutil"
	"github.com/fixly/fixly-api/internal/domain/model"
	apperrors "github.com/fixly/fixly-api/internal/errors"
)

// defaultQueryTimeout bounds every storage call so a wedged connection
// surfaces as a retryable unavailable error instead of hanging the request.
const defaultQueryTimeout = 5 * time.Second

// RepoOptions holds shared configuration for the data repositories.
type RepoOptions struct {
	QueryTimeout time.Duration
	TimeProvider TimeProvider
}

func (o RepoOptions) queryTimeout() time.Duration {
	if o.QueryTimeout > 0 {
		return o.QueryTimeout
	}
	return defaultQueryTimeout
}

func (o RepoOptions) timeProvider() TimeProvider {
	if o.TimeProvider != nil {
		return o.TimeProvider
	}
	return RealTimeProvider{}
}

// PostingRepo provides database operations for job postings.
type PostingRepo struct {
	DB      *sql.DB
	timeout time.Duration
	clock   TimeProvider
}

// NewPostingRepo creates a PostingRepo with default options.
func NewPostingRepo(db *sql.DB) *PostingRepo {
	return NewPostingRepoWithOptions(db, RepoOptions{})
}

// NewPostingRepoWithOptions creates a PostingRepo with explicit options.
func NewPostingRepoWithOptions(db *sql.DB, opts RepoOptions) *PostingRepo {
	return &PostingRepo{DB: db, timeout: opts.queryTimeout(), clock: opts.timeProvider()}
}

const postingColumns = `
	id, client_id, title, description, location, urgency, date,
	min_budget, max_budget, notify, images, status, created_at`

// postingRow mirrors a job_postings row; images stay raw so malformed stored
// values can be normalized instead of failing the scan.
type postingRow struct {
	ID          int64               `db:"id"`
	ClientID    int64               `db:"client_id"`
	Title       string              `db:"title"`
	Description string              `db:"description"`
	Location    string              `db:"location"`
	Urgency     string              `db:"urgency"`
	Date        time.Time           `db:"date"`
	MinBudget   *float64            `db:"min_budget"`
	MaxBudget   *float64            `db:"max_budget"`
	Notify      bool                `db:"notify"`
	Images      []byte              `db:"images"`
	Status      model.PostingStatus `db:"status"`
	CreatedAt   time.Time           `db:"created_at"`
}

func (row postingRow) toModel() *model.JobPosting {
	return &model.JobPosting{
		ID:          row.ID,
		ClientID:    row.ClientID,
		Title:       row.Title,
		Description: row.Description,
		Location:    row.Location,
		Urgency:     row.Urgency,
		Date:        row.Date,
		MinBudget:   row.MinBudget,
		MaxBudget:   row.MaxBudget,
		Notify:      row.Notify,
		Images:      model.DecodeImageList(row.Images),
		Status:      row.Status,
		CreatedAt:   row.CreatedAt,
	}
}

// activePostingRow additionally carries the accepted bid's fixer identity.
type activePostingRow struct {
	postingRow
	AcceptedBidID  *int64  `db:"accepted_bid_id"`
	FixerID        *int64  `db:"accepted_fixer_id"`
	FixerName      *string `db:"fixer_name"`
	ProfilePicture *string `db:"profile_picture"`
}

func (row activePostingRow) toModel() *model.ActivePosting {
	return &model.ActivePosting{
		JobPosting:     *row.postingRow.toModel(),
		AcceptedBidID:  row.AcceptedBidID,
		FixerID:        row.FixerID,
		FixerName:      row.FixerName,
		ProfilePicture: row.ProfilePicture,
	}
}

func (r *PostingRepo) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

// Create inserts a new posting with status open and returns its id.
func (r *PostingRepo) Create(ctx context.Context, req *model.CreatePostingRequest) (int64, error) {
	if req == nil {
		return 0, apperrors.Validation("create posting request is required")
	}
	if err := req.Validate(); err != nil {
		return 0, err
	}

	ctx, cancel := r.opContext(ctx)
	defer cancel()

	var id int64
	err := pgxutil.WithConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, `
			INSERT INTO job_postings (
				client_id, title, description, location, urgency, date,
				min_budget, max_budget, notify, images, status, created_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 'open', $11)
			RETURNING id`,
			req.ClientID,
			req.Title,
			req.Description,
			req.Location,
			req.Urgency,
			req.ServiceDate(),
			req.MinBudget,
			req.MaxBudget,
			req.Notify,
			model.EncodeImageList(req.Images),
			r.clock.Now().UTC(),
		).Scan(&id)
	})
	if err != nil {
		return 0, apperrors.MapDBError(err)
	}
	return id, nil
}

// GetByID retrieves a posting by id.
func (r *PostingRepo) GetByID(ctx context.Context, id int64) (*model.JobPosting, error) {
	ctx, cancel := r.opContext(ctx)
	defer cancel()

	var row postingRow
	err := pgxutil.WithConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			`SELECT `+postingColumns+` FROM job_postings WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		row, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[postingRow])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return row.toModel(), nil
}

// List retrieves all postings, newest first.
func (r *PostingRepo) List(ctx context.Context) ([]*model.JobPosting, error) {
	return r.listByQuery(ctx,
		`SELECT `+postingColumns+` FROM job_postings ORDER BY created_at DESC`)
}

// ListForClient retrieves a client's postings, newest first.
func (r *PostingRepo) ListForClient(ctx context.Context, clientID int64) ([]*model.JobPosting, error) {
	return r.listByQuery(ctx,
		`SELECT `+postingColumns+` FROM job_postings WHERE client_id = $1 ORDER BY created_at DESC`,
		clientID)
}

func (r *PostingRepo) listByQuery(ctx context.Context, query string, args ...any) ([]*model.JobPosting, error) {
	ctx, cancel := r.opContext(ctx)
	defer cancel()

	var rowsOut []postingRow
	err := pgxutil.WithConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[postingRow])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}

	res := make([]*model.JobPosting, len(rowsOut))
	for i := range rowsOut {
		res[i] = rowsOut[i].toModel()
	}
	return res, nil
}

// ListActiveForClient retrieves the client's in_progress postings joined with
// the accepted bid's fixer identity when present.
func (r *PostingRepo) ListActiveForClient(ctx context.Context, clientID int64) ([]*model.ActivePosting, error) {
	ctx, cancel := r.opContext(ctx)
	defer cancel()

	var rowsOut []activePostingRow
	err := pgxutil.WithConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT
				jp.id, jp.client_id, jp.title, jp.description, jp.location, jp.urgency,
				jp.date, jp.min_budget, jp.max_budget, jp.notify, jp.images, jp.status,
				jp.created_at,
				jb.id AS accepted_bid_id,
				jb.fixer_id AS accepted_fixer_id,
				u.username AS fixer_name,
				u.profile_picture
			FROM job_postings jp
			LEFT JOIN job_bids jb
				ON jb.job_posting_id = jp.id AND jb.status = 'accepted'
			LEFT JOIN users u
				ON u.id = jb.fixer_id
			WHERE jp.client_id = $1 AND jp.status = 'in_progress'
			ORDER BY jp.created_at DESC`, clientID)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[activePostingRow])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}

	res := make([]*model.ActivePosting, len(rowsOut))
	for i := range rowsOut {
		res[i] = rowsOut[i].toModel()
	}
	return res, nil
}

// Update overwrites the full mutable field set of a posting.
func (r *PostingRepo) Update(ctx context.Context, id int64, req *model.UpdatePostingRequest) error {
	if req == nil {
		return apperrors.Validation("update posting request is required")
	}
	if err := req.Validate(); err != nil {
		return err
	}

	ctx, cancel := r.opContext(ctx)
	defer cancel()

	err := pgxutil.WithConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `
			UPDATE job_postings
			SET title = $1, description = $2, location = $3, urgency = $4,
			    date = $5, min_budget = $6, max_budget = $7, notify = $8, images = $9
			WHERE id = $10`,
			req.Title,
			req.Description,
			req.Location,
			req.Urgency,
			req.ServiceDate(),
			req.MinBudget,
			req.MaxBudget,
			req.Notify,
			model.EncodeImageList(req.Images),
			id,
		)
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

// Patch applies only the present fields of req.
func (r *PostingRepo) Patch(ctx context.Context, id int64, req *model.PatchPostingRequest) error {
	if req == nil {
		return apperrors.Validation("patch posting request is required")
	}
	if err := req.Validate(); err != nil {
		return err
	}

	setClause, args := buildPostingPatch(req)
	args = append(args, id)
	query := fmt.Sprintf("UPDATE job_postings SET %s WHERE id = $%d", setClause, len(args))

	ctx, cancel := r.opContext(ctx)
	defer cancel()

	err := pgxutil.WithConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, query, args...)
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

// buildPostingPatch builds the SET clause and args from the present fields.
// Validate has already established that at least one field is set.
func buildPostingPatch(req *model.PatchPostingRequest) (string, []any) {
	setParts := make([]string, 0, 9)
	args := make([]any, 0, 9)
	add := func(column string, value any) {
		args = append(args, value)
		setParts = append(setParts, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.Title != nil {
		add("title", strings.TrimSpace(*req.Title))
	}
	if req.Description != nil {
		add("description", strings.TrimSpace(*req.Description))
	}
	if req.Location != nil {
		add("location", strings.TrimSpace(*req.Location))
	}
	if req.Urgency != nil {
		add("urgency", strings.TrimSpace(*req.Urgency))
	}
	if req.Date != nil {
		t, _ := model.ParseServiceDate(*req.Date)
		add("date", t)
	}
	if req.MinBudget != nil {
		add("min_budget", *req.MinBudget)
	}
	if req.MaxBudget != nil {
		add("max_budget", *req.MaxBudget)
	}
	if req.Notify != nil {
		add("notify", *req.Notify)
	}
	if req.Images != nil {
		add("images", model.EncodeImageList(*req.Images))
	}
	return strings.Join(setParts, ", "), args
}

// Delete removes a posting and its bids in one transaction so no orphan bids
// survive a partial failure.
func (r *PostingRepo) Delete(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := r.opContext(ctx)
	defer cancel()

	var removed bool
	err := pgxutil.WithReadCommittedTx(ctx, r.DB, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`DELETE FROM job_bids WHERE job_posting_id = $1`, id); err != nil {
			return err
		}
		ct, err := tx.Exec(ctx, `DELETE FROM job_postings WHERE id = $1`, id)
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

package model

import (
	"time"

	apperrors "github.com/fixly/fixly-api/internal/errors"
)

// BidStatus is the state of a bid. A bid is pending until it is either
// accepted (terminal for the winner) or removed when a sibling is accepted.
type BidStatus string

const (
	BidStatusPending  BidStatus = "pending"
	BidStatusAccepted BidStatus = "accepted"
)

// JobBid is a fixer's offer to perform a job posting's work.
type JobBid struct {
	ID           int64     `json:"id"                    db:"id"`
	JobPostingID int64     `json:"job_posting_id"        db:"job_posting_id"`
	FixerID      int64     `json:"fixer_id"              db:"fixer_id"`
	BidAmount    float64   `json:"bid_amount"            db:"bid_amount"`
	Description  *string   `json:"description,omitempty" db:"description"`
	Status       BidStatus `json:"status"                db:"status"`
	CreatedAt    time.Time `json:"created_at"            db:"created_at"`
}

// BidWithBidder is a bid joined with the bidder's display identity.
type BidWithBidder struct {
	JobBid
	FixerName      string  `json:"fixer_name"                db:"fixer_name"`
	ProfilePicture *string `json:"profile_picture,omitempty" db:"profile_picture"`
}

// FixerBid is a fixer's bid joined with the parent posting's public fields.
type FixerBid struct {
	BidID        int64     `json:"bid_id"               db:"bid_id"`
	JobPostingID int64     `json:"job_posting_id"       db:"job_posting_id"`
	BidAmount    float64   `json:"bid_amount"           db:"bid_amount"`
	Status       BidStatus `json:"status"               db:"status"`
	CreatedAt    time.Time `json:"created_at"           db:"created_at"`
	Title        string    `json:"title"                db:"title"`
	Description  string    `json:"description"          db:"description"`
	Location     string    `json:"location"             db:"location"`
	Urgency      string    `json:"urgency"              db:"urgency"`
	MinBudget    *float64  `json:"min_budget,omitempty" db:"min_budget"`
	MaxBudget    *float64  `json:"max_budget,omitempty" db:"max_budget"`
}

// SubmitBidRequest carries parameters to submit a bid on a posting.
type SubmitBidRequest struct {
	JobPostingID int64   `json:"job_posting_id"`
	FixerID      int64   `json:"fixer_id"`
	BidAmount    float64 `json:"bid_amount"`
	Description  *string `json:"description,omitempty"`
}

// Validate checks required identifiers and the amount.
func (r *SubmitBidRequest) Validate() error {
	if r.JobPostingID <= 0 {
		return apperrors.ValidationField("job_posting_id", "job_posting_id is required")
	}
	if r.FixerID <= 0 {
		return apperrors.ValidationField("fixer_id", "fixer_id is required")
	}
	return validateBidAmount(r.BidAmount)
}

// UpdateBidRequest carries parameters to update a pending bid.
type UpdateBidRequest struct {
	BidAmount   float64 `json:"bid_amount"`
	Description *string `json:"description,omitempty"`
}

// Validate re-checks the amount.
func (r *UpdateBidRequest) Validate() error {
	return validateBidAmount(r.BidAmount)
}

func validateBidAmount(amount float64) error {
	if amount <= 0 {
		return apperrors.ValidationField("bid_amount", "bid amount must be a positive number")
	}
	return nil
}

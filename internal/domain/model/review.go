package model

import (
	"time"

	apperrors "github.com/fixly/fixly-api/internal/errors"
)

const (
	minRating = 1
	maxRating = 5
)

// Review is a client's rating of a fixer. Reviews are keyed by the
// (client_id, fixer_id) pair, not by job: a repeat engagement with the same
// fixer overwrites the prior rating.
type Review struct {
	ID        int64     `json:"id"                db:"id"`
	ClientID  int64     `json:"client_id"         db:"client_id"`
	FixerID   int64     `json:"fixer_id"          db:"fixer_id"`
	Rating    int16     `json:"rating"            db:"rating"`
	Comment   *string   `json:"comment,omitempty" db:"comment"`
	CreatedAt time.Time `json:"created_at"        db:"created_at"`
}

// RateFixerRequest carries parameters to rate a fixer through a completed job.
type RateFixerRequest struct {
	FixerID int64   `json:"fixer_id"`
	Rating  int16   `json:"rating"`
	Comment *string `json:"comment,omitempty"`
}

// Validate checks the fixer id and the rating scale.
func (r *RateFixerRequest) Validate() error {
	if r.FixerID <= 0 {
		return apperrors.ValidationField("fixer_id", "fixer_id is required")
	}
	if r.Rating < minRating || r.Rating > maxRating {
		return apperrors.ValidationField("rating", "rating must be between 1 and 5")
	}
	return nil
}

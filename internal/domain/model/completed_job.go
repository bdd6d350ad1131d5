package model

import "time"

// CompletedJob is the append-only archival record of a concluded
// (job, fixer) engagement. It is distinct from the posting's own status
// field and is never updated or deleted by normal flow.
type CompletedJob struct {
	ID           int64     `json:"id"             db:"id"`
	JobPostingID int64     `json:"job_posting_id" db:"job_posting_id"`
	FixerID      int64     `json:"fixer_id"       db:"fixer_id"`
	CompletedAt  time.Time `json:"completed_at"   db:"completed_at"`
}

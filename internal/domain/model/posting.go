//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"encoding/json"
	"strings"
	"time"

	apperrors "github.com/fixly/fixly-api/internal/errors"
)

const maxTitleLen = 255

// PostingStatus is the lifecycle state of a job posting.
type PostingStatus string

const (
	PostingStatusOpen       PostingStatus = "open"
	PostingStatusInProgress PostingStatus = "in_progress"
	PostingStatusCompleted  PostingStatus = "completed"
)

// Valid reports whether the posting status is supported.
func (s PostingStatus) Valid() bool {
	switch s {
	case PostingStatusOpen, PostingStatusInProgress, PostingStatusCompleted:
		return true
	default:
		return false
	}
}

// JobPosting is a client's request for work.
type JobPosting struct {
	ID          int64         `json:"id"                   db:"id"`
	ClientID    int64         `json:"client_id"            db:"client_id"`
	Title       string        `json:"title"                db:"title"`
	Description string        `json:"description"          db:"description"`
	Location    string        `json:"location"             db:"location"`
	Urgency     string        `json:"urgency"              db:"urgency"`
	Date        time.Time     `json:"date"                 db:"date"`
	MinBudget   *float64      `json:"min_budget,omitempty" db:"min_budget"`
	MaxBudget   *float64      `json:"max_budget,omitempty" db:"max_budget"`
	Notify      bool          `json:"notify"               db:"notify"`
	Images      []string      `json:"images"`
	Status      PostingStatus `json:"status"               db:"status"`
	CreatedAt   time.Time     `json:"created_at"           db:"created_at"`
}

// ActivePosting is an in-progress posting joined with the accepted bid's
// fixer display identity, when present.
type ActivePosting struct {
	JobPosting
	AcceptedBidID  *int64  `json:"accepted_bid_id,omitempty"`
	FixerID        *int64  `json:"fixer_id,omitempty"`
	FixerName      *string `json:"fixer_name,omitempty"`
	ProfilePicture *string `json:"profile_picture,omitempty"`
}

// CreatePostingRequest carries parameters to create a JobPosting.
// Date accepts RFC 3339 or a bare calendar date.
type CreatePostingRequest struct {
	ClientID    int64    `json:"client_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Urgency     string   `json:"urgency"`
	Date        string   `json:"date"`
	MinBudget   *float64 `json:"min_budget,omitempty"`
	MaxBudget   *float64 `json:"max_budget,omitempty"`
	Notify      bool     `json:"notify"`
	Images      []string `json:"images,omitempty"`
}

// Validate checks required fields, date parsability, and budget bounds.
// Free-text fields are trimmed in place.
func (r *CreatePostingRequest) Validate() error {
	if r.ClientID <= 0 {
		return apperrors.ValidationField("client_id", "client_id is required")
	}
	if err := validatePostingFields(&r.Title, &r.Description, &r.Location, &r.Urgency, r.Date); err != nil {
		return err
	}
	return validateBudget(r.MinBudget, r.MaxBudget)
}

// ServiceDate returns the parsed service date. Validate must succeed first.
func (r *CreatePostingRequest) ServiceDate() time.Time {
	t, _ := ParseServiceDate(r.Date)
	return t
}

// UpdatePostingRequest carries the full mutable field set for an overwrite
// update, mirroring CreatePostingRequest minus ownership.
type UpdatePostingRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Urgency     string   `json:"urgency"`
	Date        string   `json:"date"`
	MinBudget   *float64 `json:"min_budget,omitempty"`
	MaxBudget   *float64 `json:"max_budget,omitempty"`
	Notify      bool     `json:"notify"`
	Images      []string `json:"images,omitempty"`
}

// Validate applies the same rules as CreatePostingRequest.Validate.
func (r *UpdatePostingRequest) Validate() error {
	if err := validatePostingFields(&r.Title, &r.Description, &r.Location, &r.Urgency, r.Date); err != nil {
		return err
	}
	return validateBudget(r.MinBudget, r.MaxBudget)
}

// ServiceDate returns the parsed service date. Validate must succeed first.
func (r *UpdatePostingRequest) ServiceDate() time.Time {
	t, _ := ParseServiceDate(r.Date)
	return t
}

// PatchPostingRequest applies only the present, non-nil fields.
type PatchPostingRequest struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Location    *string   `json:"location,omitempty"`
	Urgency     *string   `json:"urgency,omitempty"`
	Date        *string   `json:"date,omitempty"`
	MinBudget   *float64  `json:"min_budget,omitempty"`
	MaxBudget   *float64  `json:"max_budget,omitempty"`
	Notify      *bool     `json:"notify,omitempty"`
	Images      *[]string `json:"images,omitempty"`
}

// HasUpdates reports whether any field is set.
func (r *PatchPostingRequest) HasUpdates() bool {
	return r.Title != nil || r.Description != nil || r.Location != nil ||
		r.Urgency != nil || r.Date != nil || r.MinBudget != nil ||
		r.MaxBudget != nil || r.Notify != nil || r.Images != nil
}

// Validate ensures at least one field is set and set fields are sane.
// Budget bounds are only checked when both bounds arrive in the same patch;
// cross-checking against stored values is left to the DB check constraint.
func (r *PatchPostingRequest) Validate() error {
	if !r.HasUpdates() {
		return apperrors.Validation("at least one field must be updated")
	}
	for field, v := range map[string]*string{
		"title":       r.Title,
		"description": r.Description,
		"location":    r.Location,
		"urgency":     r.Urgency,
	} {
		if v != nil && strings.TrimSpace(*v) == "" {
			return apperrors.ValidationField(field, field+" cannot be empty")
		}
	}
	if r.Date != nil {
		if _, err := ParseServiceDate(*r.Date); err != nil {
			return apperrors.ValidationField("date", "invalid date format")
		}
	}
	if r.MinBudget != nil && r.MaxBudget != nil {
		return validateBudget(r.MinBudget, r.MaxBudget)
	}
	return nil
}

// ParseServiceDate parses a service date in RFC 3339 or YYYY-MM-DD form.
func ParseServiceDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

// EncodeImageList serializes the image URI list for storage. A nil slice is
// stored as an empty array so reads never see SQL NULL.
func EncodeImageList(images []string) []byte {
	if images == nil {
		images = []string{}
	}
	// Marshaling a string slice cannot fail.
	b, _ := json.Marshal(images)
	return b
}

// DecodeImageList deserializes a stored image list, normalizing absent or
// malformed values to an empty slice so callers always see an array.
func DecodeImageList(raw []byte) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var images []string
	if err := json.Unmarshal(raw, &images); err != nil || images == nil {
		return []string{}
	}
	return images
}

func validatePostingFields(title, description, location, urgency *string, date string) error {
	*title = strings.TrimSpace(*title)
	*description = strings.TrimSpace(*description)
	*location = strings.TrimSpace(*location)
	*urgency = strings.TrimSpace(*urgency)

	for field, v := range map[string]string{
		"title":       *title,
		"description": *description,
		"location":    *location,
		"urgency":     *urgency,
	} {
		if v == "" {
			return apperrors.ValidationField(field, field+" is required")
		}
	}
	if len(*title) > maxTitleLen {
		return apperrors.ValidationField("title", "title cannot exceed 255 characters")
	}
	if _, err := ParseServiceDate(date); err != nil {
		return apperrors.ValidationField("date", "invalid date format")
	}
	return nil
}

func validateBudget(minBudget, maxBudget *float64) error {
	if minBudget != nil && *minBudget < 0 {
		return apperrors.ValidationField("min_budget", "min_budget cannot be negative")
	}
	if maxBudget != nil && *maxBudget < 0 {
		return apperrors.ValidationField("max_budget", "max_budget cannot be negative")
	}
	if minBudget != nil && maxBudget != nil && *minBudget > *maxBudget {
		return apperrors.ValidationField("min_budget", "minimum budget cannot be greater than maximum budget")
	}
	return nil
}

package errors

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// reKeyField extracts the field name from a unique violation detail:
// "Key (field)=(value) already exists.".
var reKeyField = regexp.MustCompile(`Key \(([^)]+)\)=`)

// MapDBError maps database errors to AppError instances:
//   - context.DeadlineExceeded → Unavailable (storage timeout, retryable)
//   - context.Canceled → Canceled
//   - pgx.ErrNoRows → NotFound
//   - unique violations → Conflict
//   - foreign key violations → ForeignKey
//   - check / not-null violations → Validation
//
// Unrecognized errors are wrapped as Internal so nothing leaks raw driver
// detail to the caller.
func MapDBError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &AppError{
			Code:    ErrCodeUnavailable,
			Message: "storage timed out, please retry",
			Cause:   err,
		}
	}
	if errors.Is(err, context.Canceled) {
		return &AppError{
			Code:    ErrCodeCanceled,
			Message: "request was canceled",
			Cause:   err,
		}
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return &AppError{
			Code:    ErrCodeNotFound,
			Message: "resource not found",
			Cause:   err,
		}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return mapPgError(pgErr)
	}

	// AppErrors produced further down the stack pass through untouched.
	var appErr *AppError
	if errors.As(err, &appErr) {
		return err
	}

	return &AppError{
		Code:    ErrCodeInternal,
		Message: "a storage error occurred",
		Cause:   err,
	}
}

func mapPgError(pgErr *pgconn.PgError) error {
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return mapUniqueViolation(pgErr)
	case pgerrcode.ForeignKeyViolation:
		return &AppError{
			Code:    ErrCodeForeignKey,
			Message: "operation references a row that does not exist or is still in use",
			Cause:   pgErr,
		}
	case pgerrcode.CheckViolation:
		return &AppError{
			Code:    ErrCodeValidation,
			Message: checkViolationMessage(pgErr.ConstraintName),
			Cause:   pgErr,
		}
	case pgerrcode.NotNullViolation:
		return &AppError{
			Code:    ErrCodeValidation,
			Message: "required field is missing",
			Field:   pgErr.ColumnName,
			Cause:   pgErr,
		}
	default:
		return &AppError{
			Code:    ErrCodeInternal,
			Message: "a storage error occurred",
			Cause:   pgErr,
		}
	}
}

func mapUniqueViolation(pgErr *pgconn.PgError) error {
	// The duplicate-bid constraint is the one uniqueness rule callers hit in
	// normal operation; give it a message the client can show as-is.
	if strings.Contains(pgErr.ConstraintName, "job_bids") {
		return &AppError{
			Code:    ErrCodeConflict,
			Message: "a bid for this job already exists",
			Cause:   pgErr,
		}
	}

	field := pgErr.ColumnName
	if field == "" && pgErr.Detail != "" {
		if m := reKeyField.FindStringSubmatch(pgErr.Detail); len(m) == 2 {
			field = m[1]
		}
	}
	return &AppError{
		Code:    ErrCodeConflict,
		Message: "this value already exists",
		Field:   field,
		Cause:   pgErr,
	}
}

func checkViolationMessage(constraintName string) string {
	name := strings.ToLower(constraintName)
	switch {
	case strings.Contains(name, "budget"):
		return "minimum budget cannot be greater than maximum budget"
	case strings.Contains(name, "bid_amount"):
		return "bid amount must be a positive number"
	case strings.Contains(name, "rating"):
		return "rating is out of range"
	default:
		return "invalid input"
	}
}

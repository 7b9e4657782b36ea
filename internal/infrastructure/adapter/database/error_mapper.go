package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/vending-machine/internal/domain/error"
	"gorm.io/gorm"
)

// ErrorType represents the type of database error that occurred
type ErrorType string

const (
	DuplicateKeyError ErrorType = "duplicate_key"
	TransientError    ErrorType = "transient"
	LockError         ErrorType = "lock"
	ConnectionError   ErrorType = "connection"
	ConstraintError   ErrorType = "constraint"
)

// ErrorMapper classifies database errors and maps them to domain errors
type ErrorMapper struct{}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{}
}

// Classify returns the type of error, or "" when it is not recognised
func (m *ErrorMapper) Classify(err error) ErrorType {
	switch {
	case err == nil:
		return ""
	case m.IsDuplicateKeyError(err):
		return DuplicateKeyError
	case m.IsLockError(err):
		return LockError
	case m.IsTransientError(err):
		return TransientError
	case m.IsConnectionError(err):
		return ConnectionError
	case m.IsConstraintError(err):
		return ConstraintError
	}
	return ""
}

// MapError maps a database error to a domain error.
// Every failure of the journal store surfaces as ErrJournalUnavailable
// so callers can treat the journal as an optional side channel.
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s: no rows", errs.ErrJournalUnavailable, operation)
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %s: %s", errs.ErrJournalUnavailable, operation, err.Error())
	}

	kind := m.Classify(err)
	if kind == "" {
		kind = "unknown"
	}
	return fmt.Errorf("%w: %s failed (%s): %s", errs.ErrJournalUnavailable, operation, kind, err.Error())
}

func contains(err error, needles ...string) bool {
	msg := strings.ToLower(err.Error())
	for _, needle := range needles {
		if strings.Contains(msg, needle) {
			return true
		}
	}
	return false
}

// IsDuplicateKeyError checks if the error is a duplicate key error
func (m *ErrorMapper) IsDuplicateKeyError(err error) bool {
	return err != nil && contains(err, "duplicate key", "unique constraint", "duplicate entry")
}

// IsTransientError checks if an error is transient and can be retried
func (m *ErrorMapper) IsTransientError(err error) bool {
	return err != nil && contains(err,
		"connection reset",
		"connection refused",
		"timeout",
		"too many connections",
		"server closed",
		"broken pipe",
		"eof",
	)
}

// IsLockError checks if the error is due to locking
func (m *ErrorMapper) IsLockError(err error) bool {
	return err != nil && contains(err,
		"deadlock",
		"lock wait timeout",
		"lock timeout",
		"could not serialize access",
		"serialization failure",
	)
}

// IsConnectionError checks if the error is related to database connectivity
func (m *ErrorMapper) IsConnectionError(err error) bool {
	return err != nil && (contains(err, "connection", "dial", "network") || m.IsTransientError(err))
}

// IsConstraintError checks if the error is related to constraint violations
func (m *ErrorMapper) IsConstraintError(err error) bool {
	return err != nil && (contains(err, "constraint", "violates", "foreign key", "not null") || m.IsDuplicateKeyError(err))
}

// IsRetryable reports whether repeating the statement may succeed
func (m *ErrorMapper) IsRetryable(err error) bool {
	return m.IsTransientError(err) || m.IsLockError(err)
}

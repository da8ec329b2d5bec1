package service

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// StoreError reports a failure raised by the persistence layer. Message carries
// the store's own description and is safe to return to API clients.
type StoreError struct {
	// Message is the store's description of the failure
	Message string
	// Constraint is true when the store rejected the data because it violates
	// an integrity constraint (SQLSTATE class 23)
	Constraint bool
	// Err is the underlying error
	Err error
}

func (e *StoreError) Error() string {
	return e.Message
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError wraps err as a StoreError. Postgres errors keep their message
// and SQLSTATE; anything else is kept verbatim.
func NewStoreError(err error) *StoreError {
	if err == nil {
		return nil
	}

	var storeErr *StoreError
	if errors.As(err, &storeErr) {
		return storeErr
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return &StoreError{
			Message:    pgErr.Error(),
			Constraint: IsIntegrityViolation(pgErr.Code),
			Err:        err,
		}
	}

	return &StoreError{Message: err.Error(), Err: err}
}

// IsIntegrityViolation reports whether the SQLSTATE code belongs to the
// integrity constraint violation class.
func IsIntegrityViolation(code string) bool {
	return len(code) == 5 && code[:2] == "23"
}

// IsConstraintViolation reports whether err is a StoreError caused by an
// integrity constraint violation.
func IsConstraintViolation(err error) bool {
	var storeErr *StoreError
	return errors.As(err, &storeErr) && storeErr.Constraint
}

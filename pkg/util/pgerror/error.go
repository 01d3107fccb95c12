// Package pgerror carries a PostgreSQL SQLSTATE alongside a Go error,
// implementing the error taxonomy from spec.md §7.
package pgerror

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
)

type errWithCode struct {
	cause error
	code  string
}

var _ error = (*errWithCode)(nil)

func (erc *errWithCode) Error() string { return erc.cause.Error() }
func (erc *errWithCode) Unwrap() error  { return erc.cause }

// ErrWithCode decorates the error with a postgres error code that can be
// fetched by GetPGCode() below.
func ErrWithCode(err error, code string) error {
	if err == nil {
		return nil
	}
	return &errWithCode{cause: err, code: code}
}

// New creates an error with a code.
func New(code, msg string) error {
	return ErrWithCode(errors.New(msg), code)
}

// GetPGCode retrieves the PostgreSQL SQLSTATE for an error if present.
func GetPGCode(err error) string {
	var erc *errWithCode
	if errors.As(err, &erc) {
		return erc.code
	}
	return ""
}

// FromStorageErr maps an error returned by the embedded storage engine
// (go-sqlite3) to the closest SQLSTATE, per spec.md §7's propagation
// policy. Unrecognized errors fall back to InternalError. Grounded on the
// teacher's pkg/store/localx.go, which already maps UNIQUE constraint
// failures on INSERT to pgerrcode.UniqueViolation; generalized here to the
// rest of the storage-engine error surface.
func FromStorageErr(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return ErrWithCode(err, pgerrcode.UniqueViolation)
	case strings.Contains(msg, "NOT NULL constraint failed"):
		return ErrWithCode(err, pgerrcode.NotNullViolation)
	case strings.Contains(msg, "CHECK constraint failed"):
		return ErrWithCode(err, pgerrcode.CheckViolation)
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return ErrWithCode(err, pgerrcode.ForeignKeyViolation)
	case strings.Contains(msg, "no such table"), strings.Contains(msg, "no such column"):
		return ErrWithCode(err, pgerrcode.UndefinedTable)
	case strings.Contains(msg, "syntax error"):
		return ErrWithCode(err, pgerrcode.SyntaxError)
	default:
		return ErrWithCode(err, pgerrcode.InternalError)
	}
}

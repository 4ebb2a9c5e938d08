// Package store implements the persistence and business-rule core of the
// property portal: contact/unit/lease records, the cross-entity invariant
// checks gating unit and lease writes, and the reporting aggregates.
package store

import "database/sql"

// Store wraps the database and exposes all record operations. HTTP
// handlers stay thin and delegate here.
type Store struct {
	db *sql.DB
}

// New returns a Store over an open database.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Kind classifies a rule violation so callers can map it to a status code.
type Kind int

const (
	KindValidation Kind = iota
	KindNotFound
	KindRoleViolation
	KindOwnershipMismatch
	KindAlreadyOccupied
)

// Error is a recoverable rule violation. Field names the offending input
// key when one can be singled out.
type Error struct {
	Kind    Kind
	Field   string
	Message string
}

func (e *Error) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Message
	}
	return e.Message
}

func validationErr(field, msg string) *Error {
	return &Error{Kind: KindValidation, Field: field, Message: msg}
}

func notFound(field, msg string) *Error {
	return &Error{Kind: KindNotFound, Field: field, Message: msg}
}

func roleViolation(field, msg string) *Error {
	return &Error{Kind: KindRoleViolation, Field: field, Message: msg}
}

func ownershipMismatch(field, msg string) *Error {
	return &Error{Kind: KindOwnershipMismatch, Field: field, Message: msg}
}

func alreadyOccupied(field, msg string) *Error {
	return &Error{Kind: KindAlreadyOccupied, Field: field, Message: msg}
}

// queryer is satisfied by *sql.DB and *sql.Tx so invariant checks can run
// inside or outside a transaction.
type queryer interface {
	QueryRow(query string, args ...any) *sql.Row
}

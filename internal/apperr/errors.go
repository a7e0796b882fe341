// Package apperr defines the typed business errors surfaced to API clients.
// Every error here reflects a caller input problem or a rule violation, never
// a transient infrastructure fault; none of them are retried.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an application error for HTTP status mapping.
type Kind int

const (
	// KindNotFound covers missing entities and unauthorized access that is
	// deliberately hidden as "not found".
	KindNotFound Kind = iota + 1
	// KindNotAvailable means the item cannot be booked or commented on.
	KindNotAvailable
	// KindInvalidInterval means the booking start/end pair is malformed.
	KindInvalidInterval
	// KindStatusConflict means a decide call hit an already-decided booking.
	KindStatusConflict
	// KindUnknownState means an unrecognized listing state token.
	KindUnknownState
	// KindPagination means bad from/size query values.
	KindPagination
	// KindConflict means a uniqueness violation, e.g. a duplicate email.
	KindConflict
	// KindForbidden means the actor exists but may not perform the operation.
	KindForbidden
)

// Error is a client-visible application error.
type Error struct {
	kind Kind
	msg  string
}

func (e *Error) Error() string { return e.msg }

// Kind returns the error classification.
func (e *Error) Kind() Kind { return e.kind }

// KindOf extracts the Kind from err, or 0 if err is not an application error.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.kind
	}
	return 0
}

// IsNotFound reports whether err is a not-found application error.
func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

func newf(kind Kind, format string, args ...any) *Error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, args...)}
}

// NotFound builds a not-found error.
func NotFound(format string, args ...any) *Error {
	return newf(KindNotFound, format, args...)
}

// NotAvailable builds a not-available error.
func NotAvailable(format string, args ...any) *Error {
	return newf(KindNotAvailable, format, args...)
}

// InvalidInterval builds a bad start/end error.
func InvalidInterval(format string, args ...any) *Error {
	return newf(KindInvalidInterval, format, args...)
}

// StatusConflict builds a terminal-status error.
func StatusConflict(format string, args ...any) *Error {
	return newf(KindStatusConflict, format, args...)
}

// UnknownState builds a bad listing-state token error.
func UnknownState(format string, args ...any) *Error {
	return newf(KindUnknownState, format, args...)
}

// Pagination builds a bad from/size error.
func Pagination(format string, args ...any) *Error {
	return newf(KindPagination, format, args...)
}

// Conflict builds a uniqueness-violation error.
func Conflict(format string, args ...any) *Error {
	return newf(KindConflict, format, args...)
}

// Forbidden builds a forbidden-operation error.
func Forbidden(format string, args ...any) *Error {
	return newf(KindForbidden, format, args...)
}

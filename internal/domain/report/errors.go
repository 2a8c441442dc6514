package report

import (
	"errors"
	"fmt"
)

// ErrorKind classifies report failures
type ErrorKind int

const (
	KindInvalidFilter ErrorKind = iota + 1
	KindConnectionFailure
	KindQueryFailure
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidFilter:
		return "invalid_filter"
	case KindConnectionFailure:
		return "connection_failure"
	case KindQueryFailure:
		return "query_failure"
	default:
		return "unknown"
	}
}

// Error is a classified report failure
type Error struct {
	Kind    ErrorKind
	Field   string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// InvalidFilter reports a rejected filter value
func InvalidFilter(field, format string, args ...any) *Error {
	return &Error{
		Kind:    KindInvalidFilter,
		Field:   field,
		Message: fmt.Sprintf("invalid %s: %s", field, fmt.Sprintf(format, args...)),
	}
}

// ConnectionFailure wraps an unreachable data store error
func ConnectionFailure(err error) *Error {
	return &Error{Kind: KindConnectionFailure, Message: "data store unavailable", Err: err}
}

// QueryFailure wraps a failed aggregate query
func QueryFailure(err error) *Error {
	return &Error{Kind: KindQueryFailure, Message: "aggregate query failed", Err: err}
}

// KindOf returns the kind of a report error, or 0 if err is not one
func KindOf(err error) ErrorKind {
	var rerr *Error
	if errors.As(err, &rerr) {
		return rerr.Kind
	}
	return 0
}

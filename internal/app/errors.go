package app

import (
	"errors"
	"fmt"
)

// Kind tells which failure category an Error belongs to.
// The set is closed: transports switch over all of its values.
type Kind int

// Error kinds.
const (
	KindUnknown Kind = iota
	KindIdentifierFormat
	KindNotFound
	KindForbidden
	KindMovedPermanently
	KindUpstreamUnavailable
	KindScoreComputation
	KindCacheUnavailable
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindIdentifierFormat:
		return "identifier_format"
	case KindNotFound:
		return "not_found"
	case KindForbidden:
		return "forbidden"
	case KindMovedPermanently:
		return "moved_permanently"
	case KindUpstreamUnavailable:
		return "upstream_unavailable"
	case KindScoreComputation:
		return "score_computation"
	case KindCacheUnavailable:
		return "cache_unavailable"
	default:
		return "unknown"
	}
}

// Error is returned by app components for every expected failure.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error implements error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind Kind, cause error, format string, args ...interface{}) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Err:     cause,
	}
}

// IdentifierFormatError is returned when repository identifier or organization name is malformed.
func IdentifierFormatError(format string, args ...interface{}) *Error {
	return newError(KindIdentifierFormat, nil, format, args...)
}

// NotFoundError is returned when upstream doesn't know the requested resource.
func NotFoundError(format string, args ...interface{}) *Error {
	return newError(KindNotFound, nil, format, args...)
}

// ForbiddenError is returned when upstream refuses the request (403).
func ForbiddenError(format string, args ...interface{}) *Error {
	return newError(KindForbidden, nil, format, args...)
}

// MovedPermanentlyError is returned when upstream answers with 301.
func MovedPermanentlyError(format string, args ...interface{}) *Error {
	return newError(KindMovedPermanently, nil, format, args...)
}

// UpstreamUnavailableError is returned on transport failures, unexpected statuses and malformed payloads.
func UpstreamUnavailableError(cause error, format string, args ...interface{}) *Error {
	return newError(KindUpstreamUnavailable, cause, format, args...)
}

// ScoreComputationError is returned when metrics can't be scored.
func ScoreComputationError(cause error, format string, args ...interface{}) *Error {
	return newError(KindScoreComputation, cause, format, args...)
}

// CacheUnavailableError is returned when cache backend can't be reached or returns garbage.
func CacheUnavailableError(cause error, format string, args ...interface{}) *Error {
	return newError(KindCacheUnavailable, cause, format, args...)
}

// KindOf returns kind of the first *Error found in err's chain.
// Returns KindUnknown for nil and foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsNotFoundError checks if given error is caused by missing upstream resource.
func IsNotFoundError(err error) bool {
	return KindOf(err) == KindNotFound
}

// IsIdentifierFormatError checks if given error is caused by invalid identifier.
func IsIdentifierFormatError(err error) bool {
	return KindOf(err) == KindIdentifierFormat
}

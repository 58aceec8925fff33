package model

import "errors"

var (
	// ErrSourceUnavailable is a non-2xx or transport failure from an upstream provider
	ErrSourceUnavailable = errors.New("source unavailable")
	// ErrMalformedResponse means an expected upstream field was absent
	ErrMalformedResponse = errors.New("malformed response")
	ErrLocationNotFound  = errors.New("location not found")
	ErrDateOutOfRange    = errors.New("date out of range")
	ErrNoForecastForDate = errors.New("no forecast for date")
	ErrUnknownSource     = errors.New("unknown source")
	ErrInvalidRequest    = errors.New("invalid request")
)

// Error carries a user-facing message for one of the sentinel kinds above.
// errors.Is matches both the kind and the wrapped cause.
type Error struct {
	Kind    error
	Message string
	Err     error
}

func NewError(kind error, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// UserMessage returns the message to show for err.
func UserMessage(err error) string {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Message
	}
	return err.Error()
}

// IsUpstream reports whether err came from a weather provider
func IsUpstream(err error) bool {
	return errors.Is(err, ErrSourceUnavailable) || errors.Is(err, ErrMalformedResponse)
}

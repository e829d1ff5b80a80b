package inklore

import (
	"errors"
	"fmt"
)

var (
	ErrNotAuthenticated  = errors.New("not authenticated")
	ErrLoginFailed       = errors.New("login failed: no session cookie in response")
	ErrInvalidSession    = errors.New("invalid session token")
	ErrTextURLNotFetched = errors.New("text_url field was not fetched")
	ErrVoteStateUnknown  = errors.New("voted field was not fetched")
	ErrStoryNotFetched   = errors.New("part snapshot has no story reference")
	ErrMissingID         = errors.New("resource id not present in snapshot")
)

// StatusError reports a non-success HTTP status from the remote API.
type StatusError struct {
	Method string
	URL    string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.URL, e.Status)
}

// DecodeError reports a response body that does not match the expected shape.
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// UnknownFieldError reports a field name missing from a resource's field registry.
type UnknownFieldError struct {
	Resource string
	Field    string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown %s field %q", e.Resource, e.Field)
}

package domain

import (
	"errors"
	"fmt"
)

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

type ConflictError struct {
	Resource string
	Msg      string
	Err      error
}

func (e ConflictError) Error() string {
	switch {
	case e.Msg != "" && e.Resource != "":
		return fmt.Sprintf("%s conflict: %s", e.Resource, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Resource != "":
		return fmt.Sprintf("%s conflict", e.Resource)
	default:
		return "conflict"
	}
}

func (e ConflictError) Unwrap() error { return e.Err }

// UnauthenticatedError means the operation requires a logged-in identity.
type UnauthenticatedError struct {
	Msg string
}

func (e UnauthenticatedError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "authentication required"
}

// InvalidCredentialsError is returned by login when the username is unknown.
// Kept separate from NotFoundError so the transport can answer 401 instead of 404.
type InvalidCredentialsError struct{}

func (e InvalidCredentialsError) Error() string { return "invalid username" }

// SeatsUnavailableError carries current availability so callers can refresh
// their stale read.
type SeatsUnavailableError struct {
	TravelID  string
	Requested int
	Available int
}

func (e SeatsUnavailableError) Error() string {
	return fmt.Sprintf("not enough seats available on %s: requested %d, available %d",
		e.TravelID, e.Requested, e.Available)
}

// AlreadyCancelledError marks an attempt to cancel a booking in its terminal state.
type AlreadyCancelledError struct {
	BookingID string
}

func (e AlreadyCancelledError) Error() string {
	return fmt.Sprintf("booking %s already cancelled", e.BookingID)
}

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target ConflictError
	return errors.As(err, &target)
}

func IsUnauthenticated(err error) bool {
	var target UnauthenticatedError
	return errors.As(err, &target)
}

func IsInvalidCredentials(err error) bool {
	var target InvalidCredentialsError
	return errors.As(err, &target)
}

func IsSeatsUnavailable(err error) bool {
	var target SeatsUnavailableError
	return errors.As(err, &target)
}

func IsAlreadyCancelled(err error) bool {
	var target AlreadyCancelledError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}

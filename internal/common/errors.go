// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Fetch errors.
	ErrFetch     = errors.New("fetch failed")
	ErrEndOfData = errors.New("no more pages to fetch")

	// Precondition errors.
	ErrEmptyEmployeeID = errors.New("employee id cannot be empty")

	// Configuration errors.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// FetchError reports a transport or backend failure while fetching records.
// It matches ErrFetch with errors.Is.
type FetchError struct {
	Err error
	Op  string
}

func (e *FetchError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, ErrFetch.Error())
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, ErrFetch.Error(), e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is makes every FetchError match ErrFetch.
func (e *FetchError) Is(target error) bool {
	return target == ErrFetch
}

// NewFetchError wraps err as a FetchError for the named operation.
// Errors that already are FetchErrors are returned unchanged.
func NewFetchError(op string, err error) error {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return err
	}
	return &FetchError{Op: op, Err: err}
}

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// UserMessage returns the message to show for err. UserErrors yield their
// friendly message; everything else falls back to err.Error().
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var userErr *UserError
	if errors.As(err, &userErr) {
		return userErr.UserMessage
	}
	if errors.Is(err, ErrEndOfData) {
		return "All transactions are already shown"
	}
	if errors.Is(err, ErrFetch) {
		return "Could not load data, please try again"
	}
	return err.Error()
}

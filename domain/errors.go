package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyTitle indicates the user submitted a post without a title.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrEmptyContents indicates the user submitted an empty post or comment body.
	ErrEmptyContents = errors.New("contents cannot be empty")

	// ErrInvalidPage indicates a page number that is not an integer.
	ErrInvalidPage = errors.New("page must be a number")

	// ErrPageOutOfRange indicates a page number outside [1, totalPages].
	ErrPageOutOfRange = errors.New("page is out of range")

	// ErrNotFound indicates the backend has no such resource.
	ErrNotFound = errors.New("not found")
)

// NetworkMessage is shown when a request never completed.
const NetworkMessage = "Could not reach the board. Check your connection."

// NetworkError is a request that never produced a response.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// Message is the user-facing text.
func (e *NetworkError) Message() string { return NetworkMessage }

// HTTPError is a non-2xx backend response. Body holds the raw response text.
type HTTPError struct {
	Op      string
	Status  int
	Body    string
	Default string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s: status %d: %s", e.Op, e.Status, e.Message())
}

// Message returns the backend text verbatim, or the caller's default when it is empty.
func (e *HTTPError) Message() string {
	if strings.TrimSpace(e.Body) != "" {
		return e.Body
	}
	return e.Default
}

// Is lets errors.Is(err, ErrNotFound) match 404 responses.
func (e *HTTPError) Is(target error) bool {
	return target == ErrNotFound && e.Status == 404
}

// ValidationError is a client-side check that failed before any request was sent.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Message is the user-facing text.
func (e *ValidationError) Message() string {
	if e.Err == nil {
		return "invalid " + e.Field
	}
	msg := e.Err.Error()
	return strings.ToUpper(msg[:1]) + msg[1:]
}

// UserMessage picks the message to show for any error returned by the services.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var (
		netErr  *NetworkError
		httpErr *HTTPError
		valErr  *ValidationError
	)
	switch {
	case errors.As(err, &valErr):
		return valErr.Message()
	case errors.As(err, &httpErr):
		return httpErr.Message()
	case errors.As(err, &netErr):
		return netErr.Message()
	}
	return err.Error()
}

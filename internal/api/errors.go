package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// GenericFailure is shown for any failure the server did not explain.
const GenericFailure = "An unexpected error occurred."

var ErrInvalidMethod = errors.New("invalid HTTP method")

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrBrandNotFound    = errors.New("brand not found")
	ErrOrderNotFound    = errors.New("order not found")
)

// Error is a non-2xx response. Message is the server-supplied message
// when the body carried one, empty for an unstructured failure.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

func decodeError(status int, body []byte) error {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	apiErr := &Error{StatusCode: status}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			apiErr.Message = payload.Message
		} else if payload.Error != "" {
			apiErr.Message = payload.Error
		}
	}
	return apiErr
}

// Reason converts any failure into user-facing notification text: the
// structured server message when one exists, a generic line otherwise.
func Reason(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return GenericFailure
}

func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

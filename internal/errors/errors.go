package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrAuthRequired is returned when an operation needs an authenticated caller.
	ErrAuthRequired = errors.New("authentication required")
	// ErrForbiddenOwnership is returned when the caller does not own the resource.
	ErrForbiddenOwnership = errors.New("caller is not the owner")
	// ErrForbiddenForeignAnswer is returned when a question delete is blocked by
	// an answer written by another user.
	ErrForbiddenForeignAnswer = errors.New("question has answers by other users")
	// ErrQuestionNotFound is returned when a question is missing or deleted.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrAnswerNotFound is returned when an answer is missing or deleted.
	ErrAnswerNotFound = errors.New("answer not found")
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Missing credentials map to
// 403 rather than 401: the API never challenges for credentials on resource
// endpoints, it just refuses.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrAuthRequired):
		return NewHTTPError(http.StatusForbidden, err.Error(), "AUTH_REQUIRED")
	case errors.Is(err, ErrForbiddenOwnership):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN_OWNERSHIP")
	case errors.Is(err, ErrForbiddenForeignAnswer):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN_FOREIGN_ANSWER")
	case errors.Is(err, ErrQuestionNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "QUESTION_NOT_FOUND")
	case errors.Is(err, ErrAnswerNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "ANSWER_NOT_FOUND")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}

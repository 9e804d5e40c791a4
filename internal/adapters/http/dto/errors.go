// Package dto provides Data Transfer Objects for HTTP request/response handling.
package dto

// ErrorResponse is the standard error envelope for all error responses.
// Detail is either a human-readable message string or, for validation
// failures, an object mapping field names to messages.
type ErrorResponse struct {
	Detail any `json:"detail"`
}

// Common error details.
const (
	// DetailMethodNotAllowed is returned for method/path collisions.
	DetailMethodNotAllowed = "Method Not Allowed"

	// DetailNotFound is returned for unknown paths.
	DetailNotFound = "Not Found"

	// DetailInternal is the generic message for unexpected failures.
	// Internals are never leaked to the caller.
	DetailInternal = "Internal Server Error"
)

// NewErrorResponse creates an error response with a message detail.
func NewErrorResponse(detail string) *ErrorResponse {
	return &ErrorResponse{Detail: detail}
}

// NewFieldErrorResponse creates an error response whose detail maps field
// names to validation messages.
func NewFieldErrorResponse(fields map[string]string) *ErrorResponse {
	return &ErrorResponse{Detail: fields}
}

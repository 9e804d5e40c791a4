package dto

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qnaboard/qna-service/internal/domain"
	"github.com/qnaboard/qna-service/internal/platform/logging"
)

// MapDomainError maps a domain error to an HTTP status code and error
// response. Unknown errors map to 500 with a generic message.
func MapDomainError(err error) (int, *ErrorResponse) {
	if err == nil {
		return http.StatusOK, nil
	}

	switch {
	case domain.IsNotFound(err):
		return http.StatusNotFound, NewErrorResponse(err.Error())

	case domain.IsValidation(err):
		// Field-level context becomes a structured detail payload.
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) && validationErr.Field != "" {
			return http.StatusUnprocessableEntity, NewFieldErrorResponse(map[string]string{
				validationErr.Field: validationErr.Message,
			})
		}

		return http.StatusUnprocessableEntity, NewErrorResponse(err.Error())

	case domain.IsUnavailable(err):
		return http.StatusServiceUnavailable, NewErrorResponse("Service Unavailable")

	default:
		// Integrity violations and unknown errors get a generic message
		// to avoid leaking internals. The cause is logged, not returned.
		return http.StatusInternalServerError, NewErrorResponse(DetailInternal)
	}
}

// HandleError writes an error response mapped from a domain error.
// Server-side failures are logged with the request-scoped logger.
func HandleError(c *gin.Context, err error) {
	status, resp := MapDomainError(err)

	if status >= http.StatusInternalServerError {
		logger := logging.FromContext(c.Request.Context())
		logger.Error("request failed",
			"status", status,
			"error", err.Error(),
		)
	}

	c.JSON(status, resp)
}

// HandleBindingError writes a 422 response for request payload errors.
// Validator failures produce a per-field detail map; malformed JSON or
// type mismatches produce a message detail.
func HandleBindingError(c *gin.Context, err error) {
	if IsValidationError(err) {
		c.JSON(http.StatusUnprocessableEntity, NewFieldErrorResponse(ValidationErrors(err)))
		return
	}

	c.JSON(http.StatusUnprocessableEntity, NewErrorResponse("Invalid request body"))
}

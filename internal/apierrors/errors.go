package apierrors

import (
	"net/http"
	"strconv"

	"rewards-server/internal/observability"

	"github.com/gin-gonic/gin"
)

var logger = observability.NewLogger()

// ErrorResponse is the JSON body of every non-2xx API response
type ErrorResponse struct {
	Error  string       `json:"error"`
	Code   string       `json:"code,omitempty"`
	Fields []FieldError `json:"fields,omitempty"`
}

// FieldError describes one rejected request field
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

func respond(c *gin.Context, statusCode int, body ErrorResponse) {
	ctx := observability.WithFields(c.Request.Context(),
		observability.Field{Key: "status_code", Value: statusCode},
		observability.Field{Key: "error_code", Value: body.Code},
		observability.Field{Key: "error_message", Value: body.Error},
	)
	logger.Info(ctx, "API error response")

	c.AbortWithStatusJSON(statusCode, body)
}

// NotFound sends a 404 response
func NotFound(c *gin.Context, message string) {
	respond(c, http.StatusNotFound, ErrorResponse{Error: message, Code: "NOT_FOUND"})
}

// BadRequest sends a 400 response
func BadRequest(c *gin.Context, code, message string) {
	respond(c, http.StatusBadRequest, ErrorResponse{Error: message, Code: code})
}

// Unauthorized sends a 401 response
func Unauthorized(c *gin.Context, message string) {
	respond(c, http.StatusUnauthorized, ErrorResponse{Error: message, Code: "UNAUTHORIZED"})
}

// Forbidden sends a 403 response
func Forbidden(c *gin.Context, code, message string) {
	respond(c, http.StatusForbidden, ErrorResponse{Error: message, Code: code})
}

// Conflict sends a 409 response, used for campaign lifecycle violations
func Conflict(c *gin.Context, code, message string) {
	respond(c, http.StatusConflict, ErrorResponse{Error: message, Code: code})
}

// TooManyRequests sends a 429 response telling the merchant when to retry
func TooManyRequests(c *gin.Context, retryAfterSeconds int) {
	c.Header("Retry-After", strconv.Itoa(retryAfterSeconds))
	respond(c, http.StatusTooManyRequests, ErrorResponse{Error: "Rate limit exceeded", Code: "RATE_LIMIT_EXCEEDED"})
}

// ServiceUnavailable sends a 503 response and logs the underlying cause
func ServiceUnavailable(c *gin.Context, code, message string, internalErr error) {
	logger.Error(c.Request.Context(), "service unavailable", internalErr)
	respond(c, http.StatusServiceUnavailable, ErrorResponse{Error: message, Code: code})
}

// InternalError sends a sanitized 500 response; the cause is only logged
func InternalError(c *gin.Context, internalErr error) {
	logger.Error(c.Request.Context(), "internal error", internalErr)
	respond(c, http.StatusInternalServerError, ErrorResponse{
		Error: "An internal error occurred. Please try again later.",
		Code:  "INTERNAL_ERROR",
	})
}

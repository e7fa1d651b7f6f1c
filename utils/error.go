package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorKind enumerates the failure categories the API reports.
type ErrorKind string

const (
	ErrBadRequest   ErrorKind = "bad_request"
	ErrUnauthorized ErrorKind = "unauthorized"
	ErrForbidden    ErrorKind = "forbidden"
	ErrNotFound     ErrorKind = "not_found"
	ErrConflict     ErrorKind = "conflict"
	ErrUpstream     ErrorKind = "upstream"
	ErrInternal     ErrorKind = "internal"
)

// APIError is the single error type handlers surface to clients.
type APIError struct {
	Kind    ErrorKind
	Message string
}

func (e *APIError) Error() string {
	return string(e.Kind) + ": " + e.Message
}

// NewError builds an APIError of the given kind.
func NewError(kind ErrorKind, message string) *APIError {
	return &APIError{Kind: kind, Message: message}
}

// ErrorResponse defines the structure of error responses.
type ErrorResponse struct {
	Error   ErrorKind `json:"error"`
	Message string    `json:"message"`
}

func statusFor(kind ErrorKind) int {
	switch kind {
	case ErrBadRequest:
		return http.StatusBadRequest
	case ErrUnauthorized:
		return http.StatusUnauthorized
	case ErrForbidden:
		return http.StatusForbidden
	case ErrNotFound:
		return http.StatusNotFound
	case ErrConflict:
		return http.StatusConflict
	case ErrUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// JSONError sends a standardized JSON error response.
func JSONError(c *gin.Context, kind ErrorKind, message string) {
	logger := GetLogger()
	logger.Warn(message, zap.String("kind", string(kind)))
	c.JSON(statusFor(kind), ErrorResponse{Error: kind, Message: message})
}

// AbortWithError terminates the request with the envelope matching err.
// Unrecognized errors become internal failures.
func AbortWithError(c *gin.Context, err error) {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		apiErr = &APIError{Kind: ErrInternal, Message: err.Error()}
	}
	logger := GetLogger()
	logger.Warn(apiErr.Message, zap.String("kind", string(apiErr.Kind)))
	c.AbortWithStatusJSON(statusFor(apiErr.Kind), ErrorResponse{Error: apiErr.Kind, Message: apiErr.Message})
}

// ErrorHandler is a middleware to catch panics and return structured errors.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger := GetLogger()
				logger.Error("Unhandled panic", zap.Any("error", err))

				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Error:   ErrInternal,
					Message: "An unexpected error occurred. Please try again later.",
				})
			}
		}()
		c.Next()
	}
}

package web

import (
	"errors"
	"net/http"

	"github.com/jkhomeclaw/tripview/internal/model"

	"github.com/gin-gonic/gin"
)

// ErrInvalidDay is returned for a day parameter that is not a positive integer.
var ErrInvalidDay = errors.New("invalid day number")

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// mapErrorToHTTPStatus maps service errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrDayNotFound):
		return http.StatusNotFound

	case errors.Is(err, ErrInvalidDay),
		errors.Is(err, model.ErrUnknownCategory):
		return http.StatusBadRequest

	case errors.Is(err, ErrNotLoaded):
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}

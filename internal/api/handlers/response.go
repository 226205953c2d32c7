package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/luo-one/organizer/internal/services"
)

// Error codes carried in the JSON error envelope
const (
	CodeValidation = "VALIDATION_ERROR"
	CodeForeignKey = "FOREIGN_KEY_VIOLATION"
	CodeNotFound   = "NOT_FOUND"
	CodeConflict   = "CONFLICT"
	CodeInternal   = "INTERNAL_ERROR"
)

const (
	errorTemplate        = "error.html"
	internalErrorMessage = "Something went wrong"
)

// UpdateStatusRequest is the JSON body of the status endpoints
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// classify maps a service error onto an HTTP status and envelope code
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrEmailAccountNotFound),
		errors.Is(err, services.ErrWebsiteNotFound),
		errors.Is(err, services.ErrSubmissionNotFound),
		errors.Is(err, services.ErrDayPlanNotFound):
		return http.StatusNotFound, CodeNotFound
	case errors.Is(err, services.ErrEmailAccountExists):
		return http.StatusConflict, CodeConflict
	case errors.Is(err, services.ErrForeignKeyViolation):
		return http.StatusBadRequest, CodeForeignKey
	case errors.Is(err, services.ErrInvalidInput), errors.Is(err, services.ErrInvalidStatus):
		return http.StatusBadRequest, CodeValidation
	default:
		return http.StatusInternalServerError, CodeInternal
	}
}

// respondServiceError writes the JSON envelope for err. Unexpected errors are
// attached to the gin context for the request logger and reported with
// fallback as the message.
func respondServiceError(c *gin.Context, err error, fallback string) {
	status, code := classify(err)
	if status == http.StatusInternalServerError {
		c.Error(err)
		respondError(c, status, code, fallback)
		return
	}
	respondError(c, status, code, err.Error())
}

// renderError renders the error page for GET views
func renderError(c *gin.Context, err error) {
	status, _ := classify(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		c.Error(err)
		message = internalErrorMessage
	}
	c.HTML(status, errorTemplate, gin.H{
		"status":  status,
		"title":   http.StatusText(status),
		"message": message,
	})
}

// parseID reads a numeric path parameter. On failure it has already written
// a 400 response.
func parseID(c *gin.Context, param, label string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		respondError(c, http.StatusBadRequest, CodeValidation, "Invalid "+label+" ID")
		return 0, false
	}
	return uint(id), true
}

// parseFormID reads a numeric form field naming a parent row
func parseFormID(value, field string) (uint, error) {
	if value == "" {
		return 0, fmt.Errorf("%w: %s is required", services.ErrInvalidInput, field)
	}
	id, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be numeric", services.ErrInvalidInput, field)
	}
	return uint(id), nil
}

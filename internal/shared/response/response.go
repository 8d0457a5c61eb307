package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the wire shape every failure is rendered with: a numeric
// status plus a human-readable message. Validation failures additionally
// enumerate every offending field, not just the first.
type ErrorResponse struct {
	Status  int               `json:"status"`
	Message string            `json:"message"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

// ValidationError is a single field violation.
type ValidationError struct {
	Parameter string `json:"parameter"`
	Message   string `json:"message"`
}

// Error writes a plain error body.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{
		Status:  status,
		Message: message,
	})
}

// ValidationFailed writes a 400 body carrying one entry per offending field.
func ValidationFailed(c *gin.Context, errors []ValidationError) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Status:  http.StatusBadRequest,
		Message: "There was an error validating the input.",
		Errors:  errors,
	})
}

// BadRequest writes a 400 body with the given message.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

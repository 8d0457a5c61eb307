package handler

import (
	"errors"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog/log"

	"library-api/internal/domains/book/model"
	"library-api/internal/shared/response"
)

// respondError translates a failure from the service into the wire error
// shape. This is the single place error kinds become transport statuses;
// nothing below the handler attempts recovery or retries.
func respondError(c *gin.Context, err error) {
	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		response.ValidationFailed(c, toValidationErrors(fieldErrs))
		return
	}

	status := model.ToHTTPStatus(err)
	if status == http.StatusInternalServerError {
		// Log the real cause but keep internal detail out of the body.
		log.Error().
			Err(err).
			Str("request_id", c.GetString("request_id")).
			Msg("Unexpected error")
		response.Error(c, status, "An unexpected error occurred.")
		return
	}

	response.Error(c, status, err.Error())
}

// toValidationErrors flattens ozzo's field error map into the wire list,
// sorted by parameter name for a stable order.
func toValidationErrors(fieldErrs validation.Errors) []response.ValidationError {
	params := make([]string, 0, len(fieldErrs))
	for param := range fieldErrs {
		params = append(params, param)
	}
	sort.Strings(params)

	out := make([]response.ValidationError, 0, len(params))
	for _, param := range params {
		out = append(out, response.ValidationError{
			Parameter: param,
			Message:   fieldErrs[param].Error(),
		})
	}
	return out
}

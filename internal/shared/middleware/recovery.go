package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"library-api/internal/shared/response"
)

func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("request_id", c.GetString("request_id")).
					Interface("error", err).
					Msg("Panic recovered")

				c.AbortWithStatusJSON(http.StatusInternalServerError, response.ErrorResponse{
					Status:  http.StatusInternalServerError,
					Message: "An unexpected error occurred.",
				})
			}
		}()

		c.Next()
	}
}

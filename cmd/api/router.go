package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"library-api/internal/domains/book/handler"
	"library-api/internal/infrastructure/database"
	"library-api/internal/shared/middleware"
)

func SetupRouter(db *database.PostgresDB, bookHandler *handler.BookHandler) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
	)

	router.GET("/health", healthCheckHandler(db))

	books := router.Group("/books")
	{
		books.POST("", bookHandler.Create)
		books.GET("", bookHandler.List)
		books.GET("/:id", bookHandler.GetByID)
		// Updates are POSTed to the resource path.
		books.POST("/:id", bookHandler.Update)
		books.DELETE("/:id", bookHandler.Delete)
	}

	return router
}

func healthCheckHandler(db *database.PostgresDB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.HealthCheck(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "degraded",
				"timestamp": time.Now().Format(time.RFC3339),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}

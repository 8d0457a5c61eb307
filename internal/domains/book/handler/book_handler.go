package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"library-api/internal/domains/book/model"
	"library-api/internal/domains/book/service"
	"library-api/internal/shared/response"
)

// BookHandler exposes the book service as REST endpoints. It only decodes
// requests and serializes results; every decision lives in the service.
type BookHandler struct {
	service service.Service
}

// NewBookHandler creates a new book handler instance.
func NewBookHandler(service service.Service) *BookHandler {
	return &BookHandler{service: service}
}

// Create handles POST /books.
func (h *BookHandler) Create(c *gin.Context) {
	var req model.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("%s/%s", c.Request.URL.Path, result.ID))
	c.JSON(http.StatusCreated, result)
}

// List handles GET /books with optional page and size query parameters.
func (h *BookHandler) List(c *gin.Context) {
	var query model.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetByID handles GET /books/:id.
func (h *BookHandler) GetByID(c *gin.Context) {
	result, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Update handles POST /books/:id. Updates are partial: omitted fields keep
// their stored values.
func (h *BookHandler) Update(c *gin.Context) {
	var req model.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Delete handles DELETE /books/:id.
func (h *BookHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

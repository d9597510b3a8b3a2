package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/inkpress/inkpress/internal/application"
	"github.com/inkpress/inkpress/pkg/response"
	"github.com/inkpress/inkpress/pkg/validation"
)

type CategoryHandler struct {
	Svc    *application.CategoryService
	Logger *logrus.Logger
}

func NewCategoryHandler(svc *application.CategoryService, logger *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{Svc: svc, Logger: logger}
}

type createCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type updateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// List GET /api/categories
func (h *CategoryHandler) List(c *gin.Context) {
	cats, err := h.Svc.List()
	if err != nil {
		response.Err(c, err)
		return
	}
	response.Success(c, http.StatusOK, cats, "categories")
}

// Get GET /api/categories/:id
func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	cat, err := h.Svc.Get(id)
	if err != nil {
		response.Err(c, err)
		return
	}
	response.Success(c, http.StatusOK, cat, "category")
}

// GetBySlug GET /api/categories/slug/:slug
func (h *CategoryHandler) GetBySlug(c *gin.Context) {
	cat, err := h.Svc.GetBySlug(c.Param("slug"))
	if err != nil {
		response.Err(c, err)
		return
	}
	response.Success(c, http.StatusOK, cat, "category")
}

// Create POST /api/categories
func (h *CategoryHandler) Create(c *gin.Context) {
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	cat, err := h.Svc.Create(application.CreateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		response.Err(c, err)
		return
	}
	h.Logger.WithFields(logrus.Fields{"category_id": cat.ID, "slug": cat.Slug}).Info("category created")
	response.Success(c, http.StatusCreated, cat, "category created")
}

// Update PUT /api/categories/:id
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req updateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	cat, err := h.Svc.Update(id, application.UpdateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		response.Err(c, err)
		return
	}
	response.Success(c, http.StatusOK, cat, "category updated")
}

// Delete DELETE /api/categories/:id
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.Delete(id); err != nil {
		response.Err(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

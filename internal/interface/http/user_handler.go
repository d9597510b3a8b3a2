package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/inkpress/inkpress/internal/application"
	"github.com/inkpress/inkpress/pkg/response"
	"github.com/inkpress/inkpress/pkg/validation"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type updateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Bio      *string `json:"bio"`
	Avatar   *string `json:"avatar"`
	Password *string `json:"password" binding:"omitempty,pwd"`
}

// List GET /api/users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Svc.List()
	if err != nil {
		response.Err(c, err)
		return
	}
	response.Success(c, http.StatusOK, users, "users")
}

// Get GET /api/users/:id
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	u, err := h.Svc.Get(id)
	if err != nil {
		response.Err(c, err)
		return
	}
	response.Success(c, http.StatusOK, u, "user")
}

// Update PUT /api/users/:id
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.Update(id, application.UpdateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Bio:      req.Bio,
		Avatar:   req.Avatar,
		Password: req.Password,
	})
	if err != nil {
		response.Err(c, err)
		return
	}
	response.Success(c, http.StatusOK, u, "user updated")
}

// Delete DELETE /api/users/:id
func (h *UserHandler) Delete(c *gin.Context) {
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

// UploadAvatar POST /api/users/:id/avatar (multipart field "avatar")
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	fh, err := c.FormFile("avatar")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "avatar file is required", nil)
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.Err(c, err)
		return
	}
	defer func() { _ = f.Close() }()

	url, err := h.Svc.UploadAvatar(c.Request.Context(), id, f, fh.Filename, fh.Header.Get("Content-Type"))
	if err != nil {
		response.Err(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"avatar": url}, "avatar uploaded")
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/inkpress/inkpress/internal/application"
	"github.com/inkpress/inkpress/internal/domain/entity"
	"github.com/inkpress/inkpress/internal/interface/middleware"
	"github.com/inkpress/inkpress/pkg/response"
	"github.com/inkpress/inkpress/pkg/validation"
)

type PostHandler struct {
	Svc    *application.PostService
	Logger *logrus.Logger
}

func NewPostHandler(svc *application.PostService, logger *logrus.Logger) *PostHandler {
	return &PostHandler{Svc: svc, Logger: logger}
}

type createPostRequest struct {
	Title         string `json:"title" binding:"required"`
	Content       string `json:"content" binding:"required"`
	Excerpt       string `json:"excerpt"`
	Published     *bool  `json:"published"`
	FeaturedImage string `json:"featuredImage" binding:"omitempty,url"`
	CategoryID    uint   `json:"categoryId" binding:"required"`
}

type updatePostRequest struct {
	Title         *string `json:"title"`
	Content       *string `json:"content"`
	Excerpt       *string `json:"excerpt"`
	Published     *bool   `json:"published"`
	FeaturedImage *string `json:"featuredImage" binding:"omitempty,url"`
	CategoryID    *uint   `json:"categoryId"`
}

// List GET /api/posts (published only)
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.Svc.ListPublished()
	if err != nil {
		response.Err(c, err)
		return
	}
	response.Success(c, http.StatusOK, posts, "posts")
}

// ListAll GET /api/posts/all (drafts included)
func (h *PostHandler) ListAll(c *gin.Context) {
	posts, err := h.Svc.ListAll()
	if err != nil {
		response.Err(c, err)
		return
	}
	response.Success(c, http.StatusOK, posts, "posts")
}

// ListByAuthor GET /api/posts/author/:id
func (h *PostHandler) ListByAuthor(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	posts, err := h.Svc.ListByAuthor(id)
	if err != nil {
		response.Err(c, err)
		return
	}
	response.Success(c, http.StatusOK, posts, "posts")
}

// ListByCategory GET /api/posts/category/:id
func (h *PostHandler) ListByCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	posts, err := h.Svc.ListByCategory(id)
	if err != nil {
		response.Err(c, err)
		return
	}
	response.Success(c, http.StatusOK, posts, "posts")
}

// Get GET /api/posts/:id
func (h *PostHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	p, err := h.Svc.Get(id)
	if err != nil {
		response.Err(c, err)
		return
	}
	response.Success(c, http.StatusOK, p, "post")
}

// GetBySlug GET /api/posts/slug/:slug
func (h *PostHandler) GetBySlug(c *gin.Context) {
	p, err := h.Svc.GetBySlug(c.Param("slug"))
	if err != nil {
		response.Err(c, err)
		return
	}
	response.Success(c, http.StatusOK, p, "post")
}

// Search GET /api/posts/search?q=...&size=...
func (h *PostHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "query parameter q is required", nil)
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	hits, err := h.Svc.Search(c.Request.Context(), q, size)
	if err != nil {
		response.Err(c, err)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results")
}

// Create POST /api/posts
func (h *PostHandler) Create(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	p, err := h.Svc.Create(c.Request.Context(), application.CreatePostInput{
		Title:         req.Title,
		Content:       req.Content,
		Excerpt:       req.Excerpt,
		Published:     req.Published,
		FeaturedImage: req.FeaturedImage,
		CategoryID:    req.CategoryID,
		AuthorID:      middleware.UserID(c),
	})
	if err != nil {
		response.Err(c, err)
		return
	}
	h.Logger.WithFields(logrus.Fields{"post_id": p.ID, "slug": p.Slug}).Info("post created")
	response.Success(c, http.StatusCreated, p, "post created")
}

// Update PUT /api/posts/:id (author or admin)
func (h *PostHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if !h.canModify(c, id) {
		return
	}
	var req updatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	p, err := h.Svc.Update(c.Request.Context(), id, application.UpdatePostInput{
		Title:         req.Title,
		Content:       req.Content,
		Excerpt:       req.Excerpt,
		Published:     req.Published,
		FeaturedImage: req.FeaturedImage,
		CategoryID:    req.CategoryID,
	})
	if err != nil {
		response.Err(c, err)
		return
	}
	response.Success(c, http.StatusOK, p, "post updated")
}

// Delete DELETE /api/posts/:id (author or admin)
func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if !h.canModify(c, id) {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		response.Err(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadImage POST /api/posts/:id/image (multipart field "image")
func (h *PostHandler) UploadImage(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if !h.canModify(c, id) {
		return
	}
	fh, err := c.FormFile("image")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "image file is required", nil)
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.Err(c, err)
		return
	}
	defer func() { _ = f.Close() }()

	url, err := h.Svc.UploadFeaturedImage(c.Request.Context(), id, f, fh.Filename, fh.Header.Get("Content-Type"))
	if err != nil {
		response.Err(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"featuredImage": url}, "image uploaded")
}

// canModify lets the post's author and admins through, answering the request
// itself otherwise.
func (h *PostHandler) canModify(c *gin.Context, id uint) bool {
	p, err := h.Svc.Get(id)
	if err != nil {
		response.Err(c, err)
		return false
	}
	if c.GetString(middleware.CtxUserRoleKey) == string(entity.RoleAdmin) {
		return true
	}
	if middleware.UserID(c) != p.AuthorID {
		response.Error[any](c, http.StatusForbidden, "access denied: insufficient permission", nil)
		return false
	}
	return true
}

package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/inkpress/inkpress/internal/domain/entity"
	handlers "github.com/inkpress/inkpress/internal/interface/http"
	"github.com/inkpress/inkpress/internal/interface/middleware"
	"github.com/inkpress/inkpress/pkg/helpers"
)

type CategoryModule struct {
	Handler *handlers.CategoryHandler
	JWT     *helpers.JWTManager
}

func NewCategoryModule(h *handlers.CategoryHandler, jwt *helpers.JWTManager) *CategoryModule {
	return &CategoryModule{Handler: h, JWT: jwt}
}

func (m *CategoryModule) Register(rg *gin.RouterGroup) {
	cats := rg.Group("/categories")
	cats.GET("", m.Handler.List)
	cats.GET("/:id", m.Handler.Get)
	cats.GET("/slug/:slug", m.Handler.GetBySlug)

	// Writes are admin only
	admin := cats.Group("")
	admin.Use(middleware.Authenticate(m.JWT), middleware.RequireRole(string(entity.RoleAdmin)))
	{
		admin.POST("", m.Handler.Create)
		admin.PUT("/:id", m.Handler.Update)
		admin.DELETE("/:id", m.Handler.Delete)
	}
}

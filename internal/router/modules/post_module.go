package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/inkpress/inkpress/internal/domain/entity"
	handlers "github.com/inkpress/inkpress/internal/interface/http"
	"github.com/inkpress/inkpress/internal/interface/middleware"
	"github.com/inkpress/inkpress/pkg/helpers"
)

type PostModule struct {
	Handler *handlers.PostHandler
	JWT     *helpers.JWTManager
}

func NewPostModule(h *handlers.PostHandler, jwt *helpers.JWTManager) *PostModule {
	return &PostModule{Handler: h, JWT: jwt}
}

func (m *PostModule) Register(rg *gin.RouterGroup) {
	posts := rg.Group("/posts")
	posts.GET("", m.Handler.List)
	posts.GET("/search", m.Handler.Search)
	posts.GET("/slug/:slug", m.Handler.GetBySlug)
	posts.GET("/author/:id", m.Handler.ListByAuthor)
	posts.GET("/category/:id", m.Handler.ListByCategory)
	posts.GET("/:id", m.Handler.Get)

	auth := posts.Group("")
	auth.Use(middleware.Authenticate(m.JWT))
	{
		auth.POST("", m.Handler.Create)
		auth.PUT("/:id", m.Handler.Update)
		auth.DELETE("/:id", m.Handler.Delete)
		auth.POST("/:id/image", m.Handler.UploadImage)
	}

	admin := posts.Group("")
	admin.Use(middleware.Authenticate(m.JWT), middleware.RequireRole(string(entity.RoleAdmin)))
	{
		admin.GET("/all", m.Handler.ListAll)
	}
}

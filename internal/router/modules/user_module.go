package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/inkpress/inkpress/internal/domain/entity"
	handlers "github.com/inkpress/inkpress/internal/interface/http"
	"github.com/inkpress/inkpress/internal/interface/middleware"
	"github.com/inkpress/inkpress/pkg/helpers"
)

type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	users := rg.Group("/users")

	// User reads are not public; the directory is only visible to members.
	auth := users.Group("")
	auth.Use(middleware.Authenticate(m.JWT))
	{
		auth.GET("", m.Handler.List)
		auth.GET("/:id", m.Handler.Get)
		auth.PUT("/:id", m.Handler.Update)
		auth.POST("/:id/avatar", m.Handler.UploadAvatar)
	}

	admin := users.Group("")
	admin.Use(middleware.Authenticate(m.JWT), middleware.RequireRole(string(entity.RoleAdmin)))
	{
		admin.DELETE("/:id", m.Handler.Delete)
	}
}

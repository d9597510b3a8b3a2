package router

import (
	"github.com/inkpress/inkpress/internal/application"
	"github.com/inkpress/inkpress/internal/container"
	"github.com/inkpress/inkpress/internal/infrastructure/gormdb"
	handlers "github.com/inkpress/inkpress/internal/interface/http"
	"github.com/inkpress/inkpress/internal/router/modules"
)

// InitModules wires all feature modules from the container singletons and
// registers them with the router registry. Call once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	db := container.GetDB()
	jwt := container.GetJWT()

	userRepo := gormdb.NewUserRepository(db)
	categoryRepo := gormdb.NewCategoryRepository(db)
	postRepo := gormdb.NewPostRepository(db)

	authSvc := application.NewAuthService(userRepo, jwt, container.GetQueuePub(), logger)
	userSvc := application.NewUserService(userRepo, container.GetGCS(), cfg.GCSBucket, logger)
	categorySvc := application.NewCategoryService(categoryRepo)
	postSvc := application.NewPostService(postRepo, container.GetES(), cfg.ESPostsIndex, container.GetGCS(), cfg.GCSBucket, logger)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger)))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger), jwt))
	r.Add(modules.NewCategoryModule(handlers.NewCategoryHandler(categorySvc, logger), jwt))
	r.Add(modules.NewPostModule(handlers.NewPostHandler(postSvc, logger), jwt))
}

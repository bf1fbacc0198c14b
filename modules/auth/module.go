package auth

import (
	"sponlink-api/core/cache"
	"sponlink-api/core/database"
	"sponlink-api/core/middleware"
	"sponlink-api/modules/auth/controller"
	"sponlink-api/modules/auth/repository"
	"sponlink-api/modules/auth/router"
	"sponlink-api/modules/auth/service"

	"github.com/labstack/echo/v4"
)

// Init wires the auth module and registers its routes.
func Init(e *echo.Echo, db database.IDatabase, c cache.Cache, mw *middleware.Middleware) {
	repo := repository.NewAuthRepository(db)
	svc := service.NewAuthService(repo, c)
	ctrl := controller.NewAuthController(svc)

	router.NewAuthRouter(ctrl).Setup(e, mw)
}

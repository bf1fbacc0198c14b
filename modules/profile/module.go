package profile

import (
	"sponlink-api/core/database"
	"sponlink-api/core/middleware"
	"sponlink-api/modules/profile/controller"
	"sponlink-api/modules/profile/repository"
	"sponlink-api/modules/profile/router"
	"sponlink-api/modules/profile/service"

	"github.com/labstack/echo/v4"
)

// Init wires the profile module and registers its routes.
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware) {
	repo := repository.NewProfileRepository(db)
	svc := service.NewProfileService(repo)
	ctrl := controller.NewProfileController(svc)

	router.NewProfileRouter(ctrl).Setup(e, mw)
}

package sponsor

import (
	"sponlink-api/core/database"
	"sponlink-api/core/middleware"
	"sponlink-api/modules/sponsor/controller"
	"sponlink-api/modules/sponsor/repository"
	"sponlink-api/modules/sponsor/router"
	"sponlink-api/modules/sponsor/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the sponsor module and registers routes
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware, notifier service.Notifier) {
	repo := repository.NewSponsorRepository(db)
	svc := service.NewSponsorService(repo, notifier)
	ctrl := controller.NewSponsorController(svc)
	rtr := router.NewSponsorRouter(ctrl)

	rtr.Setup(e, mw)
}

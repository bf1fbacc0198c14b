package series

import (
	"sponlink-api/core/database"
	"sponlink-api/core/middleware"
	"sponlink-api/modules/event"
	"sponlink-api/modules/series/controller"
	"sponlink-api/modules/series/repository"
	"sponlink-api/modules/series/router"
	"sponlink-api/modules/series/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the event series module and registers routes
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware) {
	repo := repository.NewSeriesRepository(db)
	svc := service.NewSeriesService(repo, event.GetService(db))
	ctrl := controller.NewSeriesController(svc)
	rtr := router.NewSeriesRouter(ctrl)

	rtr.Setup(e, mw)
}

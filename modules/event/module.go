package event

import (
	"sponlink-api/core/database"
	"sponlink-api/core/middleware"
	"sponlink-api/core/storage"
	"sponlink-api/modules/event/controller"
	"sponlink-api/modules/event/repository"
	"sponlink-api/modules/event/router"
	"sponlink-api/modules/event/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the event module and registers routes
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware, store storage.Storage) {
	repo := repository.NewEventRepository(db)
	svc := service.NewEventService(repo)
	ctrl := controller.NewEventController(svc, store)
	rtr := router.NewEventRouter(ctrl)

	rtr.Setup(e, mw)
}

// GetService builds an event service for other modules to consume.
func GetService(db database.IDatabase) service.EventServiceInterface {
	return service.NewEventService(repository.NewEventRepository(db))
}

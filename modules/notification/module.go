package notification

import (
	"sponlink-api/core/database"
	"sponlink-api/core/middleware"
	"sponlink-api/modules/notification/controller"
	"sponlink-api/modules/notification/repository"
	"sponlink-api/modules/notification/router"
	"sponlink-api/modules/notification/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the notification module and registers routes
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware) *service.NotificationService {
	repo := repository.NewNotificationRepository(db)
	svc := service.NewNotificationService(repo)
	ctrl := controller.NewNotificationController(svc)

	router.NewNotificationRouter(ctrl).Setup(e, mw)

	return svc
}

// GetService builds a notification service for other modules and workers.
func GetService(db database.IDatabase) *service.NotificationService {
	return service.NewNotificationService(repository.NewNotificationRepository(db))
}

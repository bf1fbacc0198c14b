package router

import (
	"sponlink-api/core/middleware"
	"sponlink-api/modules/event/controller"

	"github.com/labstack/echo/v4"
)

// EventRouter handles event routes
type EventRouter struct {
	EventController *controller.EventController
}

// NewEventRouter creates a new router
func NewEventRouter(eventController *controller.EventController) *EventRouter {
	return &EventRouter{
		EventController: eventController,
	}
}

// Setup registers event routes
func (r *EventRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	// Public browsing, no auth required
	publicRoutes := v1.Group("/public/events")
	publicRoutes.GET("", r.EventController.GetEvents)
	publicRoutes.GET("/:id", r.EventController.GetEvent)
	publicRoutes.GET("/slug/:slug", r.EventController.GetEventBySlug)

	privateRoutes := v1.Group("/private")

	eventRoutes := privateRoutes.Group("/events", mw.AuthMiddleware())
	eventRoutes.POST("", r.EventController.CreateEvent)
	eventRoutes.PATCH("/:id", r.EventController.UpdateEvent)
	eventRoutes.DELETE("/:id", r.EventController.DeleteEvent)

	// Lifecycle
	eventRoutes.POST("/:id/publish", r.EventController.PublishEvent)
	eventRoutes.POST("/:id/cancel", r.EventController.CancelEvent)
	eventRoutes.POST("/:id/complete", r.EventController.CompleteEvent)
	eventRoutes.POST("/:id/cover", r.EventController.UploadCoverImage)

	// Sponsorship plans
	eventRoutes.POST("/:id/plans", r.EventController.CreatePlan)
	eventRoutes.PATCH("/:id/plans/:planId", r.EventController.UpdatePlan)
	eventRoutes.DELETE("/:id/plans/:planId", r.EventController.DeletePlan)

	myRoutes := privateRoutes.Group("/my", mw.AuthMiddleware())
	myRoutes.GET("/events", r.EventController.GetMyEvents)
}

package router

import (
	"sponlink-api/core/middleware"
	"sponlink-api/modules/series/controller"

	"github.com/labstack/echo/v4"
)

// SeriesRouter handles event series routes
type SeriesRouter struct {
	SeriesController *controller.SeriesController
}

// NewSeriesRouter creates a new router
func NewSeriesRouter(seriesController *controller.SeriesController) *SeriesRouter {
	return &SeriesRouter{
		SeriesController: seriesController,
	}
}

// Setup registers event series routes
func (r *SeriesRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	publicRoutes := v1.Group("/public/series")
	publicRoutes.GET("", r.SeriesController.GetAllSeries)
	publicRoutes.GET("/featured", r.SeriesController.GetFeaturedSeries)
	publicRoutes.GET("/:id", r.SeriesController.GetSeries)
	publicRoutes.GET("/:id/events", r.SeriesController.GetSeriesEvents)
	publicRoutes.GET("/:id/main-event", r.SeriesController.GetMainEvent)

	privateRoutes := v1.Group("/private/series", mw.AuthMiddleware())
	privateRoutes.POST("", r.SeriesController.CreateSeries)
}

package router

import (
	"sponlink-api/core/middleware"
	"sponlink-api/modules/sponsor/controller"

	"github.com/labstack/echo/v4"
)

// SponsorRouter handles cart and saved/followed event routes
type SponsorRouter struct {
	SponsorController *controller.SponsorController
}

// NewSponsorRouter creates a new router
func NewSponsorRouter(sponsorController *controller.SponsorController) *SponsorRouter {
	return &SponsorRouter{
		SponsorController: sponsorController,
	}
}

// Setup registers sponsor routes
func (r *SponsorRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private", mw.AuthMiddleware())

	cartRoutes := privateRoutes.Group("/cart")
	cartRoutes.GET("", r.SponsorController.GetCart)
	cartRoutes.POST("", r.SponsorController.AddToCart)
	cartRoutes.POST("/checkout", r.SponsorController.Checkout)
	cartRoutes.DELETE("/:itemId", r.SponsorController.RemoveFromCart)

	eventRoutes := privateRoutes.Group("/events")
	eventRoutes.POST("/:id/save", r.SponsorController.SaveEvent)
	eventRoutes.DELETE("/:id/save", r.SponsorController.UnsaveEvent)
	eventRoutes.POST("/:id/follow", r.SponsorController.FollowEvent)
	eventRoutes.DELETE("/:id/follow", r.SponsorController.UnfollowEvent)

	myRoutes := privateRoutes.Group("/my")
	myRoutes.GET("/sponsorships", r.SponsorController.GetMySponsorships)
	myRoutes.GET("/saved-events", r.SponsorController.GetSavedEvents)
	myRoutes.GET("/followed-events", r.SponsorController.GetFollowedEvents)
}

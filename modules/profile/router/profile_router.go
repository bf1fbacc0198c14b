package router

import (
	"sponlink-api/core/middleware"
	"sponlink-api/modules/profile/controller"

	"github.com/labstack/echo/v4"
)

type ProfileRouter struct {
	ProfileController *controller.ProfileController
}

func NewProfileRouter(profileController *controller.ProfileController) *ProfileRouter {
	return &ProfileRouter{ProfileController: profileController}
}

// Setup registers profile routes.
func (r *ProfileRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	v1.GET("/public/profiles/:userId", r.ProfileController.GetProfile)

	privateRoutes := v1.Group("/private/profile", mw.AuthMiddleware())
	privateRoutes.GET("", r.ProfileController.GetMyProfile)
	privateRoutes.PATCH("", r.ProfileController.UpdateMyProfile)

	settingsRoutes := v1.Group("/private/settings", mw.AuthMiddleware())
	settingsRoutes.GET("", r.ProfileController.GetMySettings)
	settingsRoutes.PATCH("", r.ProfileController.UpdateMySettings)
}

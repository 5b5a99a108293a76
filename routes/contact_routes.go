package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/HSouheill/barrim_storefront/controllers"
)

// RegisterContactRoutes sets up the public contact form route
func RegisterContactRoutes(e *echo.Echo, cc *controllers.ContactController) {
	e.POST("/api/contact", cc.SubmitContact)
}

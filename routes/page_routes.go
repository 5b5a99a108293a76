package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/HSouheill/barrim_storefront/controllers"
)

func RegisterPageRoutes(e *echo.Echo, pc *controllers.PageController) {
	e.GET("/api/pages", pc.ListPages)
	e.GET("/api/pages/:slug", pc.GetPage)
	e.GET("/pages/:slug", pc.RenderPage)
}

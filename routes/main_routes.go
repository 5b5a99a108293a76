package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/HSouheill/barrim_storefront/controllers"
)

// Controllers bundles the handlers the routes are wired to.
type Controllers struct {
	Storefront  *controllers.StorefrontController
	Contact     *controllers.ContactController
	Pages       *controllers.PageController
	Carousel    *controllers.CarouselController
	AdminBanner *controllers.AdminBannerController
	AdminBrand  *controllers.AdminBrandController
}

// SetupRoutes configures all routes by calling individual route registration functions
func SetupRoutes(e *echo.Echo, ctl Controllers, adminAuth ...echo.MiddlewareFunc) {
	RegisterStorefrontRoutes(e, ctl.Storefront, ctl.Carousel)
	RegisterContactRoutes(e, ctl.Contact)
	RegisterPageRoutes(e, ctl.Pages)
	RegisterAdminRoutes(e, ctl, adminAuth...)
}

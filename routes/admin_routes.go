package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/HSouheill/barrim_storefront/middleware"
)

// RegisterAdminRoutes sets up the admin pass-through routes. auth runs
// before the user type check.
func RegisterAdminRoutes(e *echo.Echo, ctl Controllers, auth ...echo.MiddlewareFunc) {
	protected := e.Group("/api/admin")
	protected.Use(auth...)
	protected.Use(middleware.RequireUserType("admin", "super_admin"))

	// Banner management
	protected.GET("/banners", ctl.AdminBanner.GetAllBanners)
	protected.GET("/banners/:id", ctl.AdminBanner.GetBanner)
	protected.POST("/banners", ctl.AdminBanner.CreateBanner)
	protected.PUT("/banners/:id", ctl.AdminBanner.UpdateBanner)
	protected.DELETE("/banners/:id", ctl.AdminBanner.DeleteBanner)

	// Brand management
	protected.GET("/brands", ctl.AdminBrand.GetAllBrands)
	protected.GET("/brands/:id", ctl.AdminBrand.GetBrand)
	protected.POST("/brands", ctl.AdminBrand.CreateBrand)
	protected.PUT("/brands/:id", ctl.AdminBrand.UpdateBrand)
	protected.DELETE("/brands/:id", ctl.AdminBrand.DeleteBrand)

	// Contact inbox
	protected.GET("/contact", ctl.Contact.ListContacts)
	protected.GET("/contact/:id", ctl.Contact.GetContact)
	protected.PUT("/contact/:id/status", ctl.Contact.UpdateContactStatus)
	protected.POST("/contact/:id/reply", ctl.Contact.ReplyContact)
}

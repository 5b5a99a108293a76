package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/HSouheill/barrim_storefront/controllers"
)

// RegisterStorefrontRoutes sets up the public shop routes
func RegisterStorefrontRoutes(e *echo.Echo, sc *controllers.StorefrontController, cc *controllers.CarouselController) {
	storefront := e.Group("/api/storefront")

	storefront.GET("/home", sc.GetHome)
	storefront.GET("/hero", sc.GetHeroCarousel)
	storefront.GET("/ads", sc.GetAdCarousel)
	storefront.GET("/events", sc.GetEventBanners)
	storefront.GET("/brands", sc.GetBrands)
	storefront.GET("/categories", sc.GetCategories)
	storefront.GET("/categories/tree", sc.GetCategoryTree)
	storefront.GET("/categories/:id/children", sc.GetSubCategories)
	storefront.GET("/products/:id/share", sc.GetShareSheet)

	e.GET("/ws/carousel/:name", cc.Watch)
}

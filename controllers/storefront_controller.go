package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/HSouheill/barrim_storefront/services"
)

// StorefrontController serves the read-only shop sections. Upstream
// failures show up as empty sections, never as errors.
type StorefrontController struct {
	Storefront *services.Storefront
	Share      *services.ShareService
}

func NewStorefrontController(storefront *services.Storefront, share *services.ShareService) *StorefrontController {
	return &StorefrontController{Storefront: storefront, Share: share}
}

// GetHome returns every home page section (GET /api/storefront/home)
func (sc *StorefrontController) GetHome(c echo.Context) error {
	home, err := sc.Storefront.Home(c.Request().Context())
	if errors.Is(err, context.Canceled) {
		return c.NoContent(statusClientClosedRequest)
	}
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, http.StatusOK, "Home page", home)
}

// GetHeroCarousel (GET /api/storefront/hero)
func (sc *StorefrontController) GetHeroCarousel(c echo.Context) error {
	return ok(c, http.StatusOK, "Hero banners", sc.Storefront.HeroCarousel(c.Request().Context()))
}

// GetAdCarousel (GET /api/storefront/ads)
func (sc *StorefrontController) GetAdCarousel(c echo.Context) error {
	return ok(c, http.StatusOK, "Ad banners", sc.Storefront.AdCarousel(c.Request().Context()))
}

// GetEventBanners (GET /api/storefront/events)
func (sc *StorefrontController) GetEventBanners(c echo.Context) error {
	return ok(c, http.StatusOK, "Event banners", sc.Storefront.EventBanners(c.Request().Context()))
}

// GetBrands (GET /api/storefront/brands)
func (sc *StorefrontController) GetBrands(c echo.Context) error {
	return ok(c, http.StatusOK, "Brands", sc.Storefront.BrandMarquee(c.Request().Context()))
}

// GetCategories lists top-level categories (GET /api/storefront/categories)
func (sc *StorefrontController) GetCategories(c echo.Context) error {
	return ok(c, http.StatusOK, "Categories", sc.Storefront.TopCategories(c.Request().Context()))
}

// GetCategoryTree (GET /api/storefront/categories/tree)
func (sc *StorefrontController) GetCategoryTree(c echo.Context) error {
	return ok(c, http.StatusOK, "Category tree", sc.Storefront.CategoryTree(c.Request().Context()))
}

// GetSubCategories (GET /api/storefront/categories/:id/children)
func (sc *StorefrontController) GetSubCategories(c echo.Context) error {
	parent, children := sc.Storefront.SubCategories(c.Request().Context(), c.Param("id"))
	return ok(c, http.StatusOK, "Subcategories", echo.Map{
		"parent":   parent,
		"children": children,
	})
}

// GetShareSheet (GET /api/storefront/products/:id/share)
func (sc *StorefrontController) GetShareSheet(c echo.Context) error {
	sheet, err := sc.Share.Links(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, http.StatusOK, "Share links", sheet)
}

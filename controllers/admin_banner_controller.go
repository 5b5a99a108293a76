package controllers

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/HSouheill/barrim_storefront/models"
	"github.com/HSouheill/barrim_storefront/services"
	"github.com/HSouheill/barrim_storefront/utils"
)

// AdminBannerController passes banner management through to the backend
// and keeps the storefront caches in step.
type AdminBannerController struct {
	API        *services.APIClient
	Storefront *services.Storefront
	Carousels  CarouselRefresher
}

func NewAdminBannerController(api *services.APIClient, storefront *services.Storefront, carousels CarouselRefresher) *AdminBannerController {
	return &AdminBannerController{API: api, Storefront: storefront, Carousels: carousels}
}

// GetAllBanners (GET /api/admin/banners)
func (bc *AdminBannerController) GetAllBanners(c echo.Context) error {
	banners, err := bc.API.AllBanners(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, http.StatusOK, "List of banners", banners)
}

// GetBanner (GET /api/admin/banners/:id)
func (bc *AdminBannerController) GetBanner(c echo.Context) error {
	banner, err := bc.API.Banner(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, http.StatusOK, "Banner", banner)
}

// CreateBanner (POST /api/admin/banners)
func (bc *AdminBannerController) CreateBanner(c echo.Context) error {
	form, err := bannerForm(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "Invalid form data")
	}
	image, err := bannerImage(c)
	if err != nil {
		return respondError(c, err)
	}
	if image == nil {
		return fail(c, http.StatusBadRequest, "Image file is required.")
	}

	banner, err := bc.API.CreateBanner(c.Request().Context(), form, image)
	if err != nil {
		return respondError(c, err)
	}
	bc.changed(c)
	return ok(c, http.StatusCreated, "Banner created successfully", banner)
}

// UpdateBanner (PUT /api/admin/banners/:id). The image is optional.
func (bc *AdminBannerController) UpdateBanner(c echo.Context) error {
	form, err := bannerForm(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "Invalid form data")
	}
	image, err := bannerImage(c)
	if err != nil {
		return respondError(c, err)
	}

	banner, err := bc.API.UpdateBanner(c.Request().Context(), c.Param("id"), form, image)
	if err != nil {
		return respondError(c, err)
	}
	bc.changed(c)
	return ok(c, http.StatusOK, "Banner updated successfully", banner)
}

// DeleteBanner (DELETE /api/admin/banners/:id)
func (bc *AdminBannerController) DeleteBanner(c echo.Context) error {
	if err := bc.API.DeleteBanner(c.Request().Context(), c.Param("id")); err != nil {
		return respondError(c, err)
	}
	bc.changed(c)
	return ok(c, http.StatusOK, "Banner deleted successfully", nil)
}

func (bc *AdminBannerController) changed(c echo.Context) {
	bc.Storefront.InvalidateBanners(c.Request().Context())
	bc.Carousels.Refresh(services.CarouselHero)
	bc.Carousels.Refresh(services.CarouselAds)
}

// bannerForm reads the text fields of a multipart banner request. Absent
// active/order fields stay nil so an update leaves them untouched.
func bannerForm(c echo.Context) (models.BannerForm, error) {
	form := models.BannerForm{
		Title:      strings.TrimSpace(c.FormValue("title")),
		ButtonText: strings.TrimSpace(c.FormValue("buttonText")),
		ButtonLink: strings.TrimSpace(c.FormValue("buttonLink")),
	}
	if raw := c.FormValue("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			return form, err
		}
		form.Active = &active
	}
	if raw := c.FormValue("order"); raw != "" {
		order, err := strconv.Atoi(raw)
		if err != nil {
			return form, err
		}
		form.Order = &order
	}
	return form, nil
}

// bannerImage reads the optional "image" part. It returns nil when the
// request carries no file.
func bannerImage(c echo.Context) (*models.BannerImage, error) {
	file, err := c.FormFile("image")
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, nil
		}
		return nil, &services.ValidationError{Fields: []string{"image"}}
	}
	if err := utils.ValidateUpload(file); err != nil {
		return nil, &services.ValidationError{Fields: []string{"image"}}
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	return services.NormalizeBannerImage(file.Filename, data)
}

package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/HSouheill/barrim_storefront/models"
	"github.com/HSouheill/barrim_storefront/services"
)

type AdminBrandController struct {
	API        *services.APIClient
	Storefront *services.Storefront
}

func NewAdminBrandController(api *services.APIClient, storefront *services.Storefront) *AdminBrandController {
	return &AdminBrandController{API: api, Storefront: storefront}
}

// GetAllBrands (GET /api/admin/brands)
func (bc *AdminBrandController) GetAllBrands(c echo.Context) error {
	brands, err := bc.API.AllBrands(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, http.StatusOK, "List of brands", brands)
}

// GetBrand (GET /api/admin/brands/:id)
func (bc *AdminBrandController) GetBrand(c echo.Context) error {
	brand, err := bc.API.Brand(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, http.StatusOK, "Brand", brand)
}

// CreateBrand (POST /api/admin/brands)
func (bc *AdminBrandController) CreateBrand(c echo.Context) error {
	var req models.BrandRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Brand name is required")
	}

	brand, err := bc.API.CreateBrand(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	bc.Storefront.InvalidateBrands(c.Request().Context())
	return ok(c, http.StatusCreated, "Brand created successfully", brand)
}

// UpdateBrand (PUT /api/admin/brands/:id)
func (bc *AdminBrandController) UpdateBrand(c echo.Context) error {
	var req models.BrandRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Brand name is required")
	}

	brand, err := bc.API.UpdateBrand(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	bc.Storefront.InvalidateBrands(c.Request().Context())
	return ok(c, http.StatusOK, "Brand updated successfully", brand)
}

// DeleteBrand (DELETE /api/admin/brands/:id)
func (bc *AdminBrandController) DeleteBrand(c echo.Context) error {
	if err := bc.API.DeleteBrand(c.Request().Context(), c.Param("id")); err != nil {
		return respondError(c, err)
	}
	bc.Storefront.InvalidateBrands(c.Request().Context())
	return ok(c, http.StatusOK, "Brand deleted successfully", nil)
}

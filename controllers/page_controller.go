package controllers

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/HSouheill/barrim_storefront/services"
)

type PageController struct {
	Pages *services.Pages
}

func NewPageController(pages *services.Pages) *PageController {
	return &PageController{Pages: pages}
}

// ListPages (GET /api/pages)
func (pc *PageController) ListPages(c echo.Context) error {
	return ok(c, http.StatusOK, "Pages", pc.Pages.List())
}

// GetPage (GET /api/pages/:slug)
func (pc *PageController) GetPage(c echo.Context) error {
	page, err := pc.Pages.Get(c.Param("slug"))
	if err != nil {
		return fail(c, http.StatusNotFound, "Page not found")
	}
	return ok(c, http.StatusOK, page.Title, page)
}

// RenderPage serves the HTML page (GET /pages/:slug)
func (pc *PageController) RenderPage(c echo.Context) error {
	var buf bytes.Buffer
	if err := pc.Pages.Render(&buf, c.Param("slug")); err != nil {
		if errors.Is(err, services.ErrPageNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Page not found")
		}
		return err
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

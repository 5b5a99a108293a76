package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/HSouheill/barrim_storefront/services"
	"github.com/HSouheill/barrim_storefront/websocket"
)

// CarouselController upgrades viewers to live carousel sessions.
type CarouselController struct {
	Hub       *websocket.Hub
	Carousels map[string]services.LiveCarousel
	Session   websocket.SessionConfig
	Logger    zerolog.Logger
}

func NewCarouselController(hub *websocket.Hub, carousels map[string]services.LiveCarousel, session websocket.SessionConfig, logger zerolog.Logger) *CarouselController {
	return &CarouselController{Hub: hub, Carousels: carousels, Session: session, Logger: logger}
}

// Watch (GET /ws/carousel/:name)
func (cc *CarouselController) Watch(c echo.Context) error {
	live, found := cc.Carousels[c.Param("name")]
	if !found {
		return fail(c, http.StatusNotFound, "Unknown carousel")
	}
	return websocket.HandleWebSocket(c, cc.Hub, live, cc.Session, cc.Logger)
}

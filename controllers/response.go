package controllers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/HSouheill/barrim_storefront/models"
	"github.com/HSouheill/barrim_storefront/services"
)

// statusClientClosedRequest answers a request whose viewer left before the
// page was ready.
const statusClientClosedRequest = 499

// CarouselRefresher asks live carousel sessions to reload.
type CarouselRefresher interface {
	Refresh(carousel string)
}

func ok(c echo.Context, status int, message string, data interface{}) error {
	return c.JSON(status, models.Response{Status: status, Message: message, Data: data})
}

func fail(c echo.Context, status int, message string) error {
	return c.JSON(status, models.Response{Status: status, Message: message})
}

// respondError maps a service error to the response the client sees.
func respondError(c echo.Context, err error) error {
	switch services.Classify(err) {
	case services.KindValidation:
		var verr *services.ValidationError
		errors.As(err, &verr)
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: services.UserMessage(err),
			Data:    map[string][]string{"fields": verr.Fields},
		})
	case services.KindTimeout:
		return fail(c, http.StatusGatewayTimeout, services.UserMessage(err))
	case services.KindServer:
		var apiErr *services.APIError
		errors.As(err, &apiErr)
		status := http.StatusBadGateway
		if apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
			status = apiErr.StatusCode
		}
		return fail(c, status, services.UserMessage(err))
	case services.KindNoResponse:
		return fail(c, http.StatusServiceUnavailable, services.UserMessage(err))
	}
	c.Logger().Error(err)
	return fail(c, http.StatusInternalServerError, services.UserMessage(err))
}

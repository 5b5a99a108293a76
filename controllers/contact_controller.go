package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/HSouheill/barrim_storefront/models"
	"github.com/HSouheill/barrim_storefront/services"
)

type ContactController struct {
	Contact *services.ContactService
}

func NewContactController(contact *services.ContactService) *ContactController {
	return &ContactController{Contact: contact}
}

// SubmitContact accepts the contact form as JSON or form data (POST /api/contact)
func (cc *ContactController) SubmitContact(c echo.Context) error {
	var submission models.ContactSubmission
	if err := c.Bind(&submission); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}

	message, err := cc.Contact.Submit(c.Request().Context(), submission)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, http.StatusCreated, message, nil)
}

// ListContacts (GET /api/admin/contact)
func (cc *ContactController) ListContacts(c echo.Context) error {
	var opts models.ContactListOptions
	if err := c.Bind(&opts); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid query parameters")
	}
	if opts.Status != "" && !opts.Status.Valid() {
		return fail(c, http.StatusBadRequest, "Invalid status")
	}

	list, err := cc.Contact.List(c.Request().Context(), opts)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, http.StatusOK, "Contact messages", list)
}

// GetContact (GET /api/admin/contact/:id)
func (cc *ContactController) GetContact(c echo.Context) error {
	msg, err := cc.Contact.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, http.StatusOK, "Contact message", msg)
}

// UpdateContactStatus (PUT /api/admin/contact/:id/status)
func (cc *ContactController) UpdateContactStatus(c echo.Context) error {
	var req models.ContactStatusRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}

	msg, err := cc.Contact.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, http.StatusOK, "Status updated", msg)
}

// ReplyContact (POST /api/admin/contact/:id/reply)
func (cc *ContactController) ReplyContact(c echo.Context) error {
	var req models.ContactReplyRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}

	msg, err := cc.Contact.Reply(c.Request().Context(), c.Param("id"), req.Message)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, http.StatusOK, "Reply sent", msg)
}

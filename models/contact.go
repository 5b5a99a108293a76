package models

import "time"

// ContactSubmission is what the contact form posts. Nothing of it is kept
// locally once the request is answered.
type ContactSubmission struct {
	Name    string `json:"name" form:"name" validate:"required"`
	Email   string `json:"email" form:"email" validate:"required,email"`
	Subject string `json:"subject,omitempty" form:"subject"`
	Message string `json:"message" form:"message" validate:"required"`
}

type ContactStatus string

const (
	ContactStatusNew      ContactStatus = "new"
	ContactStatusRead     ContactStatus = "read"
	ContactStatusReplied  ContactStatus = "replied"
	ContactStatusArchived ContactStatus = "archived"
)

func (s ContactStatus) Valid() bool {
	switch s {
	case ContactStatusNew, ContactStatusRead, ContactStatusReplied, ContactStatusArchived:
		return true
	}
	return false
}

// ContactMessage is a stored submission as the admin API returns it.
type ContactMessage struct {
	ID        ID            `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Subject   string        `json:"subject,omitempty"`
	Message   string        `json:"message"`
	Status    ContactStatus `json:"status"`
	Reply     string        `json:"reply,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// ContactListOptions carries filter and pagination parameters for the admin
// listing. Empty Status returns every message.
type ContactListOptions struct {
	Status ContactStatus `query:"status"`
	Page   int           `query:"page"`
	Limit  int           `query:"limit"`
}

type ContactList struct {
	Messages []ContactMessage `json:"messages"`
	Total    int              `json:"total"`
	Page     int              `json:"page"`
	Limit    int              `json:"limit"`
}

type ContactStatusRequest struct {
	Status ContactStatus `json:"status" validate:"required"`
}

type ContactReplyRequest struct {
	Message string `json:"message" validate:"required"`
}

package models

import "time"

type Banner struct {
	ID         ID         `json:"id"`
	Image      string     `json:"image,omitempty"`
	Title      string     `json:"title,omitempty"`
	ButtonText string     `json:"buttonText,omitempty"`
	ButtonLink string     `json:"buttonLink,omitempty"`
	Active     bool       `json:"active"`
	Order      int        `json:"order,omitempty"`
	CreatedAt  *time.Time `json:"createdAt,omitempty"`
	UpdatedAt  *time.Time `json:"updatedAt,omitempty"`
}

// Displayable reports whether the banner can go into a carousel: it must be
// active and carry an image.
func (b Banner) Displayable() bool {
	return b.Active && b.Image != ""
}

// WithDefaults fills the optional call-to-action link.
func (b Banner) WithDefaults(defaultLink string) Banner {
	if b.ButtonLink == "" {
		b.ButtonLink = defaultLink
	}
	return b
}

// BannerForm carries the fields of a multipart create/update request. The
// image travels separately as a file part.
type BannerForm struct {
	Title      string `form:"title" json:"title"`
	ButtonText string `form:"buttonText" json:"buttonText"`
	ButtonLink string `form:"buttonLink" json:"buttonLink"`
	Active     *bool  `form:"active" json:"active"`
	Order      *int   `form:"order" json:"order"`
}

// BannerImage is an uploaded image ready to be forwarded to the backend.
type BannerImage struct {
	Filename    string
	ContentType string
	Data        []byte
}

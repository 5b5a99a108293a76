package models

type Brand struct {
	ID       ID     `json:"id"`
	Name     string `json:"name"`
	Logo     string `json:"logo,omitempty"`
	Active   bool   `json:"active"`
	Category Ref    `json:"category"`
}

func (b Brand) WithDefaults(defaultLogo string) Brand {
	if b.Logo == "" {
		b.Logo = defaultLogo
	}
	return b
}

type BrandRequest struct {
	Name     string `json:"name" validate:"required"`
	Logo     string `json:"logo,omitempty"`
	Active   *bool  `json:"active,omitempty"`
	Category string `json:"category,omitempty"`
}

// BrandMarquee is what the scrolling brand strip renders. Track holds the
// brand list twice so the animation can loop without a visible seam.
type BrandMarquee struct {
	Brands          []Brand `json:"brands"`
	Track           []Brand `json:"track"`
	DurationSeconds int     `json:"durationSeconds"`
}

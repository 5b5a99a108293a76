package models

// CarouselView is the payload of a banner carousel endpoint.
type CarouselView struct {
	State      string   `json:"state"`
	Items      []Banner `json:"items"`
	IntervalMs int64    `json:"intervalMs"`
}

type Home struct {
	Hero       CarouselView      `json:"hero"`
	Ads        CarouselView      `json:"ads"`
	Events     []EventBannerView `json:"events"`
	Brands     BrandMarquee      `json:"brands"`
	Categories []Category        `json:"categories"`
}

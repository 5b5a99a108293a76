package models

import "time"

type EventProduct struct {
	ID    ID      `json:"id"`
	Name  string  `json:"name"`
	Image string  `json:"image,omitempty"`
	Price float64 `json:"price"`
}

// EventBanner promotes a single product until EndDate.
type EventBanner struct {
	ID          ID            `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	EndDate     time.Time     `json:"endDate"`
	Active      bool          `json:"active"`
	Product     *EventProduct `json:"product,omitempty"`
}

// Displayable reports whether the event can be shown at instant now.
func (e EventBanner) Displayable(now time.Time) bool {
	return e.Active && e.Product != nil && e.Product.Image != "" && now.Before(e.EndDate)
}

type Countdown struct {
	Days    int  `json:"days"`
	Hours   int  `json:"hours"`
	Minutes int  `json:"minutes"`
	Seconds int  `json:"seconds"`
	Expired bool `json:"expired"`
}

// Countdown splits the time left until EndDate. Once the end has passed all
// fields are zero and Expired is set.
func (e EventBanner) Countdown(now time.Time) Countdown {
	left := e.EndDate.Sub(now)
	if left <= 0 {
		return Countdown{Expired: true}
	}
	total := int(left / time.Second)
	return Countdown{
		Days:    total / 86400,
		Hours:   total % 86400 / 3600,
		Minutes: total % 3600 / 60,
		Seconds: total % 60,
	}
}

// EventBannerView is an event banner as rendered, countdown included.
type EventBannerView struct {
	EventBanner
	Countdown      Countdown `json:"countdown"`
	FormattedPrice string    `json:"formattedPrice"`
}

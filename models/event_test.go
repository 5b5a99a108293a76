package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEventBanner_Countdown(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	e := EventBanner{EndDate: now.Add(2*24*time.Hour + 3*time.Hour + 4*time.Minute + 5*time.Second + 600*time.Millisecond)}

	assert.Equal(t, Countdown{Days: 2, Hours: 3, Minutes: 4, Seconds: 5}, e.Countdown(now))
	assert.Equal(t, Countdown{Expired: true}, e.Countdown(e.EndDate))
	assert.Equal(t, Countdown{Expired: true}, e.Countdown(e.EndDate.Add(time.Hour)))
}

func TestEventBanner_Displayable(t *testing.T) {
	now := time.Now()
	e := EventBanner{
		Active:  true,
		EndDate: now.Add(time.Hour),
		Product: &EventProduct{ID: "p1", Image: "p.jpg"},
	}
	assert.True(t, e.Displayable(now))
	assert.False(t, e.Displayable(now.Add(2*time.Hour)))

	noImage := e
	noImage.Product = &EventProduct{ID: "p1"}
	assert.False(t, noImage.Displayable(now))

	inactive := e
	inactive.Active = false
	assert.False(t, inactive.Displayable(now))

	noProduct := e
	noProduct.Product = nil
	assert.False(t, noProduct.Displayable(now))
}

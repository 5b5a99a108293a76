package carousel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSwipe(t *testing.T) {
	tests := []struct {
		name string
		dx   float64
		want Direction
	}{
		{"left past threshold", -80, Forward},
		{"left exactly threshold", -50, Forward},
		{"right past threshold", 120, Backward},
		{"right exactly threshold", 50, Backward},
		{"short left", -49, None},
		{"short right", 49.9, None},
		{"tap", 0, None},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Swipe(tt.dx, DefaultSwipeThreshold))
		})
	}
}

func TestGesture_SwipeChangesIndexByOne(t *testing.T) {
	r := New(4, slow, nil)
	defer r.Stop()
	g := NewGesture(0)

	g.Begin(300)
	r.Apply(g.End(220))
	assert.Equal(t, 1, r.Index())

	g.Begin(100)
	r.Apply(g.End(190))
	assert.Equal(t, 0, r.Index())

	g.Begin(100)
	r.Apply(g.End(130))
	assert.Equal(t, 0, r.Index())
}

func TestGesture_ReleaseWithoutPress(t *testing.T) {
	g := NewGesture(50)
	assert.Equal(t, None, g.End(500))

	g.Begin(0)
	g.Cancel()
	assert.Equal(t, None, g.End(-500))
}

func TestStateOf(t *testing.T) {
	assert.Equal(t, StateLoading, StateOf(true, 3))
	assert.Equal(t, StateEmpty, StateOf(false, 0))
	assert.Equal(t, StateDisplaying, StateOf(false, 1))
}

package carousel

import "sync"

// DefaultSwipeThreshold is the horizontal travel, in pixels, a swipe or drag
// needs before it changes the slide.
const DefaultSwipeThreshold = 50

type Direction int

const (
	None Direction = iota
	Forward
	Backward
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	}
	return "none"
}

// Swipe classifies a horizontal movement of dx pixels. Moving left (negative
// dx) shows the next slide, moving right the previous one.
func Swipe(dx, threshold float64) Direction {
	switch {
	case dx <= -threshold:
		return Forward
	case dx >= threshold:
		return Backward
	}
	return None
}

// Gesture tracks one touch swipe or mouse drag from press to release.
type Gesture struct {
	threshold float64

	mu     sync.Mutex
	startX float64
	active bool
}

func NewGesture(threshold float64) *Gesture {
	if threshold <= 0 {
		threshold = DefaultSwipeThreshold
	}
	return &Gesture{threshold: threshold}
}

func (g *Gesture) Begin(x float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.startX = x
	g.active = true
}

// End finishes the gesture at x. A release without a press is ignored.
func (g *Gesture) End(x float64) Direction {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.active {
		return None
	}
	g.active = false
	return Swipe(x-g.startX, g.threshold)
}

// Cancel drops a gesture that left the carousel before release.
func (g *Gesture) Cancel() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.active = false
}

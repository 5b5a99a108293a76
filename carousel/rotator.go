// Package carousel implements the slide rotation shared by every banner
// carousel of the storefront: a single active index advanced by a repeating
// timer, with manual navigation that restarts the timer after a short delay.
package carousel

import (
	"sync"
	"time"
)

const (
	DefaultInterval    = 5 * time.Second
	DefaultResumeDelay = time.Second
)

type Config struct {
	// Interval between automatic advances.
	Interval time.Duration
	// ResumeDelay is how long the timer stays off after manual navigation.
	ResumeDelay time.Duration
}

func (c Config) withDefaults() Config {
	if c.Interval <= 0 {
		c.Interval = DefaultInterval
	}
	if c.ResumeDelay <= 0 {
		c.ResumeDelay = DefaultResumeDelay
	}
	return c
}

// Rotator owns the active index of one carousel. It is safe for concurrent
// use; the change callback runs outside the state lock, one call at a time,
// and always reports the index current at delivery.
type Rotator struct {
	cfg      Config
	onChange func(index int)

	notifyMu sync.Mutex

	mu         sync.Mutex
	count      int
	index      int
	hovering   bool
	stopped    bool
	stopTick   chan struct{}
	resume     *time.Timer
	generation uint64
}

// New returns a rotator over count items. The timer does not run until Start.
func New(count int, cfg Config, onChange func(index int)) *Rotator {
	if count < 0 {
		count = 0
	}
	return &Rotator{
		cfg:      cfg.withDefaults(),
		onChange: onChange,
		count:    count,
	}
}

func (r *Rotator) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.startTickerLocked()
}

func (r *Rotator) Index() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.index
}

func (r *Rotator) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Paused reports whether automatic advancing is suspended.
func (r *Rotator) Paused() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pausedLocked()
}

// Running reports whether the repeating timer is currently armed.
func (r *Rotator) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stopTick != nil
}

func (r *Rotator) pausedLocked() bool {
	return r.stopped || r.hovering || r.count <= 1
}

// Tick advances the index by one, wrapping at the item count, exactly as a
// timer firing would. It does nothing while paused.
func (r *Rotator) Tick() bool {
	return r.advance(nil)
}

// advance moves one slide forward. A non-nil from identifies the timer that
// fired; a timer that has been replaced or switched off no longer counts.
func (r *Rotator) advance(from chan struct{}) bool {
	r.mu.Lock()
	if r.pausedLocked() || (from != nil && r.stopTick != from) {
		r.mu.Unlock()
		return false
	}
	r.index = (r.index + 1) % r.count
	r.mu.Unlock()

	r.notify()
	return true
}

// GoTo jumps to index i and restarts the timer after the resume delay.
// Out-of-range indices are ignored.
func (r *Rotator) GoTo(i int) bool {
	r.mu.Lock()
	if r.stopped || i < 0 || i >= r.count {
		r.mu.Unlock()
		return false
	}
	r.index = i
	r.restartLaterLocked()
	r.mu.Unlock()

	r.notify()
	return true
}

func (r *Rotator) Next() bool {
	return r.step(1)
}

func (r *Rotator) Prev() bool {
	return r.step(-1)
}

// Apply moves according to a finished gesture.
func (r *Rotator) Apply(d Direction) bool {
	switch d {
	case Forward:
		return r.Next()
	case Backward:
		return r.Prev()
	}
	return false
}

func (r *Rotator) step(delta int) bool {
	r.mu.Lock()
	if r.stopped || r.count == 0 {
		r.mu.Unlock()
		return false
	}
	r.index = ((r.index+delta)%r.count + r.count) % r.count
	r.restartLaterLocked()
	r.mu.Unlock()

	r.notify()
	return true
}

// SetHover pauses the timer while the pointer rests on the carousel and
// re-arms it with a full interval when the pointer leaves.
func (r *Rotator) SetHover(hovering bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped || r.hovering == hovering {
		return
	}
	r.hovering = hovering
	if hovering {
		r.stopTickerLocked()
		return
	}
	r.startTickerLocked()
}

// SetCount replaces the item count after a refresh. An index that no longer
// fits falls back to the first slide.
func (r *Rotator) SetCount(n int) {
	if n < 0 {
		n = 0
	}
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return
	}
	r.count = n
	moved := false
	if r.index >= n && r.index != 0 {
		r.index = 0
		moved = true
	}
	if r.pausedLocked() {
		r.stopTickerLocked()
	} else if r.resume == nil {
		r.startTickerLocked()
	}
	r.mu.Unlock()

	if moved {
		r.notify()
	}
}

// Stop releases the timers. Afterwards every method is a no-op and the
// change callback is never called again. Stop must not be called from the
// change callback.
func (r *Rotator) Stop() {
	r.mu.Lock()
	r.stopped = true
	r.stopTickerLocked()
	r.mu.Unlock()

	// wait for a delivery already in progress
	r.notifyMu.Lock()
	r.notifyMu.Unlock()
}

func (r *Rotator) notify() {
	if r.onChange == nil {
		return
	}
	r.notifyMu.Lock()
	defer r.notifyMu.Unlock()

	r.mu.Lock()
	stopped, index := r.stopped, r.index
	r.mu.Unlock()
	if stopped {
		return
	}
	r.onChange(index)
}

func (r *Rotator) startTickerLocked() {
	if r.pausedLocked() || r.stopTick != nil {
		return
	}
	stop := make(chan struct{})
	r.stopTick = stop
	go r.loop(time.NewTicker(r.cfg.Interval), stop)
}

func (r *Rotator) stopTickerLocked() {
	r.generation++
	if r.resume != nil {
		r.resume.Stop()
		r.resume = nil
	}
	if r.stopTick != nil {
		close(r.stopTick)
		r.stopTick = nil
	}
}

// restartLaterLocked turns the timer off and schedules it back on after the
// resume delay, so manual navigation never races an automatic advance.
func (r *Rotator) restartLaterLocked() {
	r.stopTickerLocked()
	gen := r.generation
	r.resume = time.AfterFunc(r.cfg.ResumeDelay, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if r.generation != gen {
			return
		}
		r.resume = nil
		r.startTickerLocked()
	})
}

func (r *Rotator) loop(t *time.Ticker, stop chan struct{}) {
	defer t.Stop()
	for {
		select {
		case <-stop:
			return
		case <-t.C:
			r.advance(stop)
		}
	}
}

package carousel

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu      sync.Mutex
	indices []int
}

func (r *recorder) record(i int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.indices = append(r.indices, i)
}

func (r *recorder) all() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.indices...)
}

// slow keeps the background timer out of the way of the manual Tick calls.
var slow = Config{Interval: time.Hour, ResumeDelay: time.Hour}

func TestRotator_TickAdvancesByOneModuloCount(t *testing.T) {
	rec := &recorder{}
	r := New(3, slow, rec.record)
	defer r.Stop()

	for i := 0; i < 7; i++ {
		require.True(t, r.Tick())
		idx := r.Index()
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, 3)
	}
	assert.Equal(t, []int{1, 2, 0, 1, 2, 0, 1}, rec.all())
}

func TestRotator_TickPausedWithZeroOrOneItems(t *testing.T) {
	for _, n := range []int{0, 1} {
		r := New(n, slow, nil)
		assert.True(t, r.Paused())
		assert.False(t, r.Tick())
		assert.Equal(t, 0, r.Index())
		r.Stop()
	}
}

func TestRotator_HoverPausesTicks(t *testing.T) {
	r := New(4, slow, nil)
	defer r.Stop()

	r.SetHover(true)
	assert.True(t, r.Paused())
	assert.False(t, r.Tick())
	assert.Equal(t, 0, r.Index())

	r.SetHover(false)
	assert.True(t, r.Tick())
	assert.Equal(t, 1, r.Index())
}

func TestRotator_GoTo(t *testing.T) {
	rec := &recorder{}
	r := New(5, slow, rec.record)
	defer r.Stop()

	assert.True(t, r.GoTo(3))
	assert.Equal(t, 3, r.Index())
	assert.False(t, r.GoTo(5))
	assert.False(t, r.GoTo(-1))
	assert.Equal(t, 3, r.Index())
	assert.Equal(t, []int{3}, rec.all())
}

func TestRotator_NextPrevWrap(t *testing.T) {
	r := New(3, slow, nil)
	defer r.Stop()

	assert.True(t, r.Prev())
	assert.Equal(t, 2, r.Index())
	assert.True(t, r.Next())
	assert.Equal(t, 0, r.Index())
}

func TestRotator_ApplyGesture(t *testing.T) {
	r := New(3, slow, nil)
	defer r.Stop()

	assert.True(t, r.Apply(Forward))
	assert.Equal(t, 1, r.Index())
	assert.True(t, r.Apply(Backward))
	assert.Equal(t, 0, r.Index())
	assert.False(t, r.Apply(None))
	assert.Equal(t, 0, r.Index())
}

func TestRotator_TimerAdvances(t *testing.T) {
	rec := &recorder{}
	r := New(3, Config{Interval: 10 * time.Millisecond, ResumeDelay: 10 * time.Millisecond}, rec.record)
	r.Start()
	defer r.Stop()

	require.Eventually(t, func() bool { return len(rec.all()) >= 3 }, time.Second, 5*time.Millisecond)
	got := rec.all()
	for i := 1; i < len(got); i++ {
		assert.Equal(t, (got[i-1]+1)%3, got[i])
	}
}

func TestRotator_ManualNavigationRestartsTimerAfterDelay(t *testing.T) {
	r := New(3, Config{Interval: 10 * time.Millisecond, ResumeDelay: 200 * time.Millisecond}, nil)
	r.Start()
	defer r.Stop()

	require.True(t, r.Running())
	r.GoTo(2)
	assert.False(t, r.Running())

	// nothing moves while the resume delay is pending
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, 2, r.Index())

	require.Eventually(t, r.Running, time.Second, 5*time.Millisecond)
}

func TestRotator_HoverStopsTimer(t *testing.T) {
	r := New(3, Config{Interval: 10 * time.Millisecond}, nil)
	r.Start()
	defer r.Stop()

	r.SetHover(true)
	assert.False(t, r.Running())
	idx := r.Index()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, idx, r.Index())

	r.SetHover(false)
	assert.True(t, r.Running())
}

func TestRotator_SetCountClampsIndex(t *testing.T) {
	rec := &recorder{}
	r := New(5, slow, rec.record)
	defer r.Stop()

	r.GoTo(4)
	r.SetCount(2)
	assert.Equal(t, 0, r.Index())
	assert.Equal(t, 2, r.Count())
	assert.Equal(t, []int{4, 0}, rec.all())

	r.SetCount(1)
	assert.True(t, r.Paused())
}

func TestRotator_SetCountStartsTimerWhenItemsArrive(t *testing.T) {
	r := New(0, Config{Interval: time.Hour}, nil)
	r.Start()
	defer r.Stop()

	assert.False(t, r.Running())
	r.SetCount(3)
	assert.True(t, r.Running())
	r.SetCount(0)
	assert.False(t, r.Running())
}

func TestRotator_StopSilencesEverything(t *testing.T) {
	rec := &recorder{}
	r := New(3, Config{Interval: 5 * time.Millisecond}, rec.record)
	r.Start()
	r.Stop()
	n := len(rec.all())

	assert.False(t, r.Tick())
	assert.False(t, r.GoTo(1))
	assert.False(t, r.Next())
	r.SetCount(10)
	r.SetHover(false)
	time.Sleep(30 * time.Millisecond)

	assert.Len(t, rec.all(), n)
	assert.False(t, r.Running())
}

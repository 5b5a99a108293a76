package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// fakeBackend answers backend routes with canned envelopes and counts hits.
type fakeBackend struct {
	t      *testing.T
	mu     sync.Mutex
	hits   map[string]int
	routes map[string]http.HandlerFunc
	srv    *httptest.Server
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	b := &fakeBackend{t: t, hits: map[string]int{}, routes: map[string]http.HandlerFunc{}}
	b.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path
		b.mu.Lock()
		b.hits[key]++
		h, ok := b.routes[key]
		b.mu.Unlock()
		if !ok {
			writeEnvelope(w, http.StatusNotFound, false, "not found", nil)
			return
		}
		h(w, r)
	}))
	t.Cleanup(b.srv.Close)
	return b
}

func (b *fakeBackend) handle(method, path string, h http.HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.routes[method+" "+path] = h
}

func (b *fakeBackend) ok(method, path string, data interface{}) {
	b.handle(method, path, func(w http.ResponseWriter, _ *http.Request) {
		writeEnvelope(w, http.StatusOK, true, "ok", data)
	})
}

func (b *fakeBackend) count(method, path string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.hits[method+" "+path]
}

func (b *fakeBackend) client() *APIClient {
	return NewAPIClient(b.srv.URL, 2*time.Second, false, zerolog.Nop())
}

func writeEnvelope(w http.ResponseWriter, status int, success bool, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"success": success,
		"message": message,
		"data":    data,
	})
}

type fixedClock struct {
	mu  sync.Mutex
	now time.Time
}

func newClock() *fixedClock {
	return &fixedClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

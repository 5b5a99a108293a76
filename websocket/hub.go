package websocket

import (
	"context"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/HSouheill/barrim_storefront/metrics"
)

// Message types sent to viewers
const (
	MessageTypeState = "state"
	MessageTypeSlide = "slide"
	MessageTypeError = "error"
)

// Message types sent by viewers
const (
	InputHover      = "hover"
	InputLeave      = "leave"
	InputGoTo       = "goto"
	InputNext       = "next"
	InputPrev       = "prev"
	InputSwipeStart = "swipe_start"
	InputSwipeEnd   = "swipe_end"
)

// ServerMessage is a state snapshot or a slide change of one carousel.
type ServerMessage struct {
	Type       string        `json:"type"`
	Carousel   string        `json:"carousel"`
	State      string        `json:"state,omitempty"`
	Index      int           `json:"index"`
	Count      int           `json:"count"`
	IntervalMs int64         `json:"intervalMs,omitempty"`
	Item       interface{}   `json:"item,omitempty"`
	Items      []interface{} `json:"items,omitempty"`
	Message    string        `json:"message,omitempty"`
}

// ClientMessage is a viewer interaction.
type ClientMessage struct {
	Type  string  `json:"type"`
	Index int     `json:"index"`
	X     float64 `json:"x"`
}

// Client is one connected carousel viewer
type Client struct {
	ID       string
	Carousel string
	Conn     *websocket.Conn

	writeMu sync.Mutex
	refresh chan struct{}
}

func newClient(id, carousel string, conn *websocket.Conn) *Client {
	return &Client{ID: id, Carousel: carousel, Conn: conn, refresh: make(chan struct{}, 1)}
}

// Send writes one message. Writes from the rotator, the refresh loop and the
// reader are serialized here.
func (c *Client) Send(msg ServerMessage) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.Conn.WriteJSON(msg)
}

// Hub maintains the set of active viewers per carousel
type Hub struct {
	clients    map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	mu         sync.RWMutex
}

// NewHub creates a new Hub instance
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// Run starts the hub's event loop. It returns when ctx is done.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.closeAll()
			return
		case client := <-h.register:
			h.mu.Lock()
			viewers, ok := h.clients[client.Carousel]
			if !ok {
				viewers = make(map[*Client]bool)
				h.clients[client.Carousel] = viewers
			}
			viewers[client] = true
			metrics.CarouselViewers.WithLabelValues(client.Carousel).Set(float64(len(viewers)))
			h.mu.Unlock()
		case client := <-h.unregister:
			h.mu.Lock()
			if viewers, ok := h.clients[client.Carousel]; ok && viewers[client] {
				delete(viewers, client)
				metrics.CarouselViewers.WithLabelValues(client.Carousel).Set(float64(len(viewers)))
			}
			h.mu.Unlock()
			client.Conn.Close()
		}
	}
}

func (h *Hub) join(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		client.Conn.Close()
		return false
	}
}

func (h *Hub) leave(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
		client.Conn.Close()
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for name, viewers := range h.clients {
		for client := range viewers {
			client.Conn.Close()
		}
		delete(h.clients, name)
		metrics.CarouselViewers.WithLabelValues(name).Set(0)
	}
}

// Viewers returns the number of sessions watching a carousel.
func (h *Hub) Viewers(carousel string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[carousel])
}

// Refresh asks every session on a carousel to reload its items. A session
// that already has a reload pending is skipped.
func (h *Hub) Refresh(carousel string) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients[carousel] {
		select {
		case client.refresh <- struct{}{}:
		default:
		}
	}
}

package websocket

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/HSouheill/barrim_storefront/carousel"
	"github.com/HSouheill/barrim_storefront/services"
)

// SessionConfig tunes the rotation of every live carousel session.
type SessionConfig struct {
	Rotation       carousel.Config
	SwipeThreshold float64
	// AllowedOrigins are the browser origins, besides the service's own host,
	// that may open a session. It is the CORS origin list of the HTTP routes.
	AllowedOrigins []string
}

func (cfg SessionConfig) upgrader() websocket.Upgrader {
	return websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return originAllowed(r, cfg.AllowedOrigins)
		},
	}
}

// originAllowed accepts requests without an Origin header (non-browser
// clients), same-host origins and the listed ones.
func originAllowed(r *http.Request, allowed []string) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	if strings.EqualFold(u.Host, r.Host) {
		return true
	}
	for _, a := range allowed {
		if a == "*" || strings.EqualFold(strings.TrimRight(a, "/"), origin) {
			return true
		}
	}
	return false
}

// HandleWebSocket upgrades the request and runs a carousel session until the
// viewer disconnects.
func HandleWebSocket(c echo.Context, hub *Hub, live services.LiveCarousel, cfg SessionConfig, logger zerolog.Logger) error {
	upgrader := cfg.upgrader()
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	client := newClient(uuid.NewString(), live.Name, conn)
	if !hub.join(client) {
		return nil
	}

	s := &session{
		client: client,
		live:   live,
		cfg:    cfg,
		logger: logger.With().Str("session", client.ID).Str("carousel", live.Name).Logger(),
	}
	go func() {
		defer hub.leave(client)
		s.run()
	}()

	return nil
}

type session struct {
	client *Client
	live   services.LiveCarousel
	cfg    SessionConfig
	logger zerolog.Logger

	mu      sync.Mutex
	items   []interface{}
	rotator *carousel.Rotator
}

func (s *session) run() {
	// The request context ends when the handler returns, so the session
	// owns its own.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s.send(ServerMessage{Type: MessageTypeState, State: string(carousel.StateLoading)})

	s.rotator = carousel.New(0, s.cfg.Rotation, s.slideChanged)
	defer s.rotator.Stop()

	// Reading starts before the first load so a viewer leaving mid-fetch
	// cancels it. Input before the load is a no-op on an empty rotator.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		defer cancel()
		s.readLoop()
	}()

	if s.reload(ctx, s.live.Load) {
		s.rotator.Start()
		go s.refreshLoop(ctx)
	}
	<-closed
}

// reload fetches the items and publishes a fresh state. It reports false
// when the session ended during the fetch.
func (s *session) reload(ctx context.Context, load func(context.Context) ([]interface{}, error)) bool {
	items, err := load(ctx)
	if ctx.Err() != nil {
		return false
	}
	if err != nil {
		s.logger.Warn().Err(err).Msg("carousel reload failed")
		items = nil
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()

	s.rotator.SetCount(len(items))
	index := s.rotator.Index()
	msg := ServerMessage{
		Type:       MessageTypeState,
		State:      string(carousel.StateOf(false, len(items))),
		Index:      index,
		Count:      len(items),
		IntervalMs: s.cfg.Rotation.Interval.Milliseconds(),
		Items:      items,
	}
	if index < len(items) {
		msg.Item = items[index]
	}
	s.send(msg)
	return true
}

func (s *session) refreshLoop(ctx context.Context) {
	var tick <-chan time.Time
	if s.live.RefreshInterval > 0 {
		ticker := time.NewTicker(s.live.RefreshInterval)
		defer ticker.Stop()
		tick = ticker.C
	}
	pushed := s.live.Reload
	if pushed == nil {
		pushed = s.live.Load
	}
	for {
		load := s.live.Load
		select {
		case <-ctx.Done():
			return
		case <-tick:
		case <-s.client.refresh:
			load = pushed
		}
		if !s.reload(ctx, load) {
			return
		}
	}
}

func (s *session) readLoop() {
	gesture := carousel.NewGesture(s.cfg.SwipeThreshold)
	for {
		var msg ClientMessage
		if err := s.client.Conn.ReadJSON(&msg); err != nil {
			var closeErr *websocket.CloseError
			if !errors.As(err, &closeErr) {
				s.logger.Debug().Err(err).Msg("viewer disconnected")
			}
			return
		}

		switch msg.Type {
		case InputHover:
			s.rotator.SetHover(true)
		case InputLeave:
			gesture.Cancel()
			s.rotator.SetHover(false)
		case InputGoTo:
			s.rotator.GoTo(msg.Index)
		case InputNext:
			s.rotator.Next()
		case InputPrev:
			s.rotator.Prev()
		case InputSwipeStart:
			gesture.Begin(msg.X)
		case InputSwipeEnd:
			s.rotator.Apply(gesture.End(msg.X))
		default:
			s.send(ServerMessage{Type: MessageTypeError, Message: "unknown message type: " + msg.Type})
		}
	}
}

func (s *session) slideChanged(index int) {
	s.mu.Lock()
	count := len(s.items)
	var item interface{}
	if index < count {
		item = s.items[index]
	}
	s.mu.Unlock()

	s.send(ServerMessage{Type: MessageTypeSlide, Index: index, Count: count, Item: item})
}

func (s *session) send(msg ServerMessage) {
	msg.Carousel = s.live.Name
	if err := s.client.Send(msg); err != nil {
		s.logger.Debug().Err(err).Str("type", msg.Type).Msg("write failed")
	}
}

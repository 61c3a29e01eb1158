package screeps

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"sync"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"github.com/screepers/screeps-go/screeps/internal"
)

// Client provides the high-level SDK for the realtime socket API.
//
// The protocol logic lives in Session; the client owns the websocket, the
// read/write loops, and callback dispatch. Create with NewClient, register
// callbacks, then Connect.
type Client struct {
	cfg        Config
	logger     Logger
	conn       *internal.Conn
	rawConn    *websocket.Conn
	writeCh    chan string
	dispatcher Dispatcher

	mu        sync.Mutex
	session   *Session
	connected bool
	cancel    context.CancelFunc
}

// NewClient constructs a client with the provided config.
// Use DefaultConfig() as a starting point and modify as needed.
func NewClient(cfg Config) *Client {
	return &Client{
		cfg:     cfg,
		logger:  noopLogger{},
		session: NewSession(cfg.Token),
		writeCh: make(chan string, 16),
	}
}

// SetLogger overrides the logger (optional).
func (c *Client) SetLogger(l Logger) {
	if l == nil {
		return
	}
	c.logger = l
}

// OnRoomUpdate registers a callback for detailed room updates.
func (c *Client) OnRoomUpdate(fn func(RoomUpdateEvent)) { c.dispatcher.SetOnRoomUpdate(fn) }

// OnMapView registers a callback for map-overview room updates.
func (c *Client) OnMapView(fn func(MapViewEvent)) { c.dispatcher.SetOnMapView(fn) }

// OnConsole registers a callback for console output updates.
func (c *Client) OnConsole(fn func(ConsoleEvent)) { c.dispatcher.SetOnConsole(fn) }

// OnCPU registers a callback for CPU/memory updates.
func (c *Client) OnCPU(fn func(CPUEvent)) { c.dispatcher.SetOnCPU(fn) }

// OnServerTime registers a callback for server time announcements.
func (c *Client) OnServerTime(fn func(uint64)) { c.dispatcher.SetOnServerTime(fn) }

// OnAuth registers a callback for authentication outcomes.
func (c *Client) OnAuth(fn func(AuthEvent)) { c.dispatcher.SetOnAuth(fn) }

// OnRateLimit registers a callback for per-channel rate-limit skips.
func (c *Client) OnRateLimit(fn func(RateLimitEvent)) { c.dispatcher.SetOnRateLimit(fn) }

// OnChannel registers a callback receiving every channel update as raw
// JSON, including channels without a typed callback.
func (c *Client) OnChannel(fn func(ChannelEvent)) { c.dispatcher.SetOnChannel(fn) }

// OnState registers a callback for connection state transitions.
func (c *Client) OnState(fn func(StateEvent)) { c.dispatcher.SetOnState(fn) }

// OnError registers a callback for errors.
func (c *Client) OnError(fn func(error)) { c.dispatcher.SetOnError(fn) }

// Connect dials the server's SockJS endpoint and starts internal loops.
// Authentication happens automatically once the server opens the session.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	if c.connected {
		c.mu.Unlock()
		return NewError(ErrorConnection, "already connected")
	}
	c.mu.Unlock()

	if c.cfg.APIURL == "" {
		return NewError(ErrorInvalidConfig, "empty API URL")
	}
	wsURL, err := WebsocketURL(c.cfg.APIURL)
	if err != nil {
		return err
	}

	dialCtx := ctx
	if c.cfg.HandshakeTimeout > 0 {
		var cancel context.CancelFunc
		dialCtx, cancel = context.WithTimeout(ctx, c.cfg.HandshakeTimeout)
		defer cancel()
	}

	ws, _, err := websocket.Dial(dialCtx, wsURL, nil)
	if err != nil {
		return WrapError(ErrorConnection, "dial "+wsURL, err)
	}
	// Room updates for a busy room can be large.
	ws.SetReadLimit(16 << 20)

	c.rawConn = ws
	c.conn = internal.NewConn(ws, c.cfg.ReadTimeout, c.cfg.WriteTimeout)

	c.mu.Lock()
	ev, err := c.session.Connect()
	if err != nil {
		c.mu.Unlock()
		_ = c.conn.Close(websocket.StatusInternalError, "session error")
		return err
	}
	runCtx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.connected = true
	c.mu.Unlock()

	c.dispatcher.Dispatch(ev)
	go c.readLoop(runCtx)
	go c.writeLoop(runCtx)
	return nil
}

// Subscribe requests updates for a channel. Before authentication completes
// the subscription is queued and flushed automatically; it is never
// silently dropped.
func (c *Client) Subscribe(ctx context.Context, ch Channel) error {
	c.mu.Lock()
	commands := c.session.Subscribe(ch)
	c.mu.Unlock()
	return c.send(ctx, commands)
}

// Unsubscribe stops updates for a channel and destroys its document.
func (c *Client) Unsubscribe(ctx context.Context, ch Channel) error {
	c.mu.Lock()
	commands := c.session.Unsubscribe(ch)
	c.mu.Unlock()
	return c.send(ctx, commands)
}

// Document returns a copy of the materialized state for a channel.
func (c *Client) Document(ch Channel) (map[string]any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	doc, ok := c.session.Document(ch.String())
	if !ok {
		return nil, false
	}
	return cloneDocument(doc), true
}

// State returns the current connection state.
func (c *Client) State() ConnectionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.State()
}

// Metrics returns the session's counters.
func (c *Client) Metrics() *Metrics {
	return c.session.Metrics()
}

// Close shuts down the client and closes the websocket.
func (c *Client) Close() error {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	c.connected = false
	ev := c.session.Reset()
	c.mu.Unlock()
	if ev != nil {
		c.dispatcher.Dispatch(ev)
	}
	if c.conn != nil {
		return c.conn.Close(websocket.StatusNormalClosure, "client close")
	}
	return nil
}

func (c *Client) send(ctx context.Context, frames []string) error {
	for _, frame := range frames {
		select {
		case c.writeCh <- frame:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

func (c *Client) readLoop(ctx context.Context) {
	for {
		raw, err := c.conn.Read(ctx)
		if err != nil {
			if isExpectedDisconnect(ctx, err) {
				return
			}
			c.dispatcher.fireError(WrapError(ErrorConnection, "read failed", err))
			c.logger.Warn("read loop exit", map[string]any{"error": err.Error()})
			c.teardown()
			return
		}

		c.mu.Lock()
		events, outbound, err := c.session.HandleFrame(raw)
		c.mu.Unlock()

		for _, ev := range events {
			c.dispatcher.Dispatch(ev)
		}
		if writeErr := c.send(ctx, outbound); writeErr != nil {
			return
		}
		if err != nil {
			c.dispatcher.fireError(err)
			if IsAuthFailure(err) {
				c.logger.Warn("authentication rejected", nil)
				c.teardown()
				return
			}
			// Frame-scoped errors: drop the frame, keep the connection.
			c.logger.Warn("dropped malformed frame", map[string]any{"error": err.Error()})
		}
	}
}

func (c *Client) writeLoop(ctx context.Context) {
	for {
		select {
		case frame := <-c.writeCh:
			if err := c.conn.Write(ctx, frame); err != nil {
				c.dispatcher.fireError(WrapError(ErrorConnection, "write failed", err))
				c.logger.Warn("write loop exit", map[string]any{"error": err.Error()})
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

func (c *Client) teardown() {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	c.connected = false
	ev := c.session.Reset()
	c.mu.Unlock()
	if ev != nil {
		c.dispatcher.Dispatch(ev)
	}
	if c.conn != nil {
		_ = c.conn.Close(websocket.StatusNormalClosure, "session over")
	}
}

// WebsocketURL derives the SockJS websocket endpoint from an HTTP API base
// URL, generating fresh server and session path segments. The result should
// not be reused across connections.
func WebsocketURL(apiURL string) (string, error) {
	base, err := url.Parse(apiURL)
	if err != nil {
		return "", WrapError(ErrorInvalidConfig, "bad API URL", err)
	}

	switch base.Scheme {
	case "http":
		base.Scheme = "ws"
	case "https":
		base.Scheme = "wss"
	default:
		return "", NewError(ErrorInvalidConfig, "unknown URL scheme "+base.Scheme)
	}

	id := uuid.New()
	session := id.String()[:8]
	server := int(id.ID() % 1000)

	joined, err := base.Parse(fmt.Sprintf("../socket/%03d/%s/websocket", server, session))
	if err != nil {
		return "", WrapError(ErrorInvalidConfig, "bad API URL path", err)
	}
	return joined.String(), nil
}

func isExpectedDisconnect(ctx context.Context, err error) bool {
	if err == nil {
		return false
	}
	if ctx != nil && ctx.Err() != nil {
		return true
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
		return true
	}
	switch websocket.CloseStatus(err) {
	case websocket.StatusNormalClosure, websocket.StatusGoingAway:
		return true
	default:
		return false
	}
}

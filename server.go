// Quizbox websocket transport
//
// Every connection to /ws is a session with a random id. Clients send
// {"event", "id", "data"} frames; the hub feeds them to the quiz game one at a
// time and delivers the resulting broadcasts to every session subscribed to
// the room's channel. Frames carrying an "id" receive an "ack" frame with the
// same id.
//
// Features:
// - One goroutine owns the game, the connection table and channel subscriptions
// - Slow clients whose send buffer fills up are dropped
// - Disconnects remove the session from every roster it joined
// - Optional idle-room reaping via --session-timeout
// - Origin allow-list via --allowed-origins, any origin when unset
// - Per-room QR code of the join link, backed by go-qrcode

package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/Seednode/quizbox/quiz"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"
)

const (
	sendBuffer     = 64
	maxMessageSize = 1 << 20
)

// ClientMessage is a frame received from a client.
type ClientMessage struct {
	Event string          `json:"event"`
	ID    json.RawMessage `json:"id,omitempty"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// ServerMessage is a frame sent to a client. ID is only set on acks.
type ServerMessage struct {
	Event string          `json:"event"`
	ID    json.RawMessage `json:"id,omitempty"`
	Data  any             `json:"data"`
}

// ConnectedMessage greets a new connection with its session id, which is
// also its player id in any room it joins.
type ConnectedMessage struct {
	ID quiz.SessionID `json:"id"`
}

type Client struct {
	conn *websocket.Conn
	send chan []byte
	id   quiz.SessionID
}

type inbound struct {
	client *Client
	msg    ClientMessage
}

// Hub serializes every event for every room. Only run touches its maps.
type Hub struct {
	cfg  *Config
	game *quiz.Game

	clients  map[quiz.SessionID]*Client
	channels map[string]map[quiz.SessionID]bool

	register chan *Client
	unreg    chan *Client
	events   chan inbound
	done     chan struct{}
}

func newHub(cfg *Config) *Hub {
	h := &Hub{
		cfg:      cfg,
		clients:  make(map[quiz.SessionID]*Client),
		channels: make(map[string]map[quiz.SessionID]bool),
		register: make(chan *Client),
		unreg:    make(chan *Client),
		events:   make(chan inbound),
		done:     make(chan struct{}),
	}

	h.game = quiz.New(h, func(format string, args ...any) {
		logf(cfg, format, args...)
	})

	return h
}

func (h *Hub) run(ctx context.Context) {
	defer close(h.done)

	var reap <-chan time.Time
	if h.cfg.sessionTimeout > 0 {
		ticker := time.NewTicker(h.cfg.sessionTimeout / 2)
		defer ticker.Stop()
		reap = ticker.C
	}

	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return

		case c := <-h.register:
			h.clients[c.id] = c
			h.EmitToSession(c.id, "connected", ConnectedMessage{ID: c.id})

			logf(h.cfg, "SOCKET: Session %s connected", c.id)

		case c := <-h.unreg:
			if _, ok := h.clients[c.id]; ok {
				delete(h.clients, c.id)
				close(c.send)
			}
			for _, members := range h.channels {
				delete(members, c.id)
			}
			h.game.HandleDisconnect(c.id)

			logf(h.cfg, "SOCKET: Session %s disconnected", c.id)

		case in := <-h.events:
			ack, ok := h.game.Dispatch(in.client.id, in.msg.Event, in.msg.Data)
			if ok && len(in.msg.ID) > 0 {
				h.deliver(in.client.id, h.encode("ack", in.msg.ID, ack))
			}

		case now := <-reap:
			if n := h.game.ReapIdle(now.Add(-h.cfg.sessionTimeout)); n > 0 {
				logf(h.cfg, "ROOMS: Reaped %d idle room(s)", n)
			}
		}
	}
}

func (h *Hub) encode(event string, id json.RawMessage, payload any) []byte {
	data, err := json.Marshal(ServerMessage{
		Event: event,
		ID:    id,
		Data:  payload,
	})
	if err != nil {
		log.Printf("%s | ERROR: encoding %s: %v", time.Now().Format(logDate), event, err)
		return nil
	}
	return data
}

// deliver queues data for one session, dropping the client if it cannot
// keep up.
func (h *Hub) deliver(id quiz.SessionID, data []byte) {
	c, ok := h.clients[id]
	if !ok || data == nil {
		return
	}

	select {
	case c.send <- data:
	default:
		delete(h.clients, id)
		close(c.send)
	}
}

func (h *Hub) EmitToSession(id quiz.SessionID, event string, payload any) {
	h.deliver(id, h.encode(event, nil, payload))
}

func (h *Hub) EmitToChannel(channel, event string, payload any) {
	members := h.channels[channel]
	if len(members) == 0 {
		return
	}

	data := h.encode(event, nil, payload)
	for id := range members {
		h.deliver(id, data)
	}
}

func (h *Hub) Subscribe(id quiz.SessionID, channel string) {
	members, ok := h.channels[channel]
	if !ok {
		members = make(map[quiz.SessionID]bool)
		h.channels[channel] = members
	}
	members[id] = true
}

func (h *Hub) Unsubscribe(channel string) {
	delete(h.channels, channel)
}

// closeAll disconnects every client; used on shutdown.
func (h *Hub) closeAll() {
	for id, c := range h.clients {
		close(c.send)
		delete(h.clients, id)
	}
}

// submit hands a frame to the run loop unless the hub has stopped.
func (h *Hub) submit(in inbound) bool {
	select {
	case h.events <- in:
		return true
	case <-h.done:
		return false
	}
}

func newUpgrader(cfg *Config) *websocket.Upgrader {
	return &websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(cfg.allowedOrigins) == 0 {
				return true
			}
			return slices.Contains(cfg.allowedOrigins, r.Header.Get("Origin"))
		},
	}
}

func serveWS(cfg *Config, h *Hub) httprouter.Handle {
	upgrader := newUpgrader(cfg)

	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logf(cfg, "SOCKET: Upgrade from %s failed: %v", realIP(r), err)
			return
		}

		client := &Client{
			conn: conn,
			send: make(chan []byte, sendBuffer),
			id:   quiz.SessionID(uuid.NewString()),
		}

		select {
		case h.register <- client:
		case <-h.done:
			_ = conn.Close()
			return
		}

		go client.writePump()
		client.readPump(h)
	}
}

func (c *Client) readPump(h *Hub) {
	defer func() {
		select {
		case h.unreg <- c:
		case <-h.done:
		}
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)

	for {
		var msg ClientMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			return
		}

		if msg.Event == "" {
			continue
		}

		if !h.submit(inbound{client: c, msg: msg}) {
			return
		}
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()

	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}

	_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

// joinURL is the link players open to join a room.
func joinURL(cfg *Config, r *http.Request, code string) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	return scheme + "://" + r.Host + cfg.prefix + "/?room=" + code
}

// qrHandler renders a PNG QR code of the room's join link.
func qrHandler(cfg *Config) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		code := strings.ToUpper(ps.ByName("code"))
		if code == "" {
			http.Error(w, "missing room code", http.StatusBadRequest)
			return
		}

		const qrSize = 320
		png, err := qrcode.Encode(joinURL(cfg, r, code), qrcode.Medium, qrSize)
		if err != nil {
			http.Error(w, "qr generation failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		securityHeaders(cfg, w)
		_, _ = w.Write(png)
	}
}

// registerQuizGame sets up routes so that:
//   - $prefix/ws              → WebSocket for every room
//   - $prefix/room/:code/qr   → PNG QR code of the room's join link
func registerQuizGame(cfg *Config, h *Hub, mux *httprouter.Router) {
	mux.GET(cfg.prefix+"/ws", serveWS(cfg, h))
	mux.GET(cfg.prefix+"/room/:code/qr", qrHandler(cfg))
}

package ws

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"social-platform/config"
	"social-platform/internal/apperr"
	"social-platform/internal/service"
	"social-platform/pkg/logger"
	"social-platform/pkg/redis"
	"social-platform/pkg/token"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// clientFrame is any inbound frame. The connection starts
// unauthenticated and accepts only auth frames; after a valid auth it
// accepts message frames.
type clientFrame struct {
	Type          string `json:"type"`
	Token         string `json:"token"`
	ReceiverID    uint   `json:"receiver_id"`
	Content       string `json:"content"`
	AttachmentURL string `json:"attachment_url"`
}

// errorFrame replaces the silent drop of bad input: every rejected
// frame gets an explicit reply so clients (and tests) can observe the
// failure.
type errorFrame struct {
	Type    string `json:"type"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Handler serves the chat channel endpoint.
type Handler struct {
	hub      *Hub
	tokens   *token.Service
	users    *service.UserService
	messages *service.MessageService
	cfg      config.WebSocketConfig
}

func NewHandler(hub *Hub, tokens *token.Service, users *service.UserService, messages *service.MessageService, cfg config.WebSocketConfig) *Handler {
	return &Handler{
		hub:      hub,
		tokens:   tokens,
		users:    users,
		messages: messages,
		cfg:      cfg,
	}
}

// Serve upgrades the connection and runs the per-connection state
// machine: Unauthenticated -> Authenticated -> Closed.
//
// The auth frame carries the same signed session token used for HTTP
// requests; a client-asserted user id is not trusted.
func (h *Handler) Serve(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	var client *Client
	done := make(chan struct{})

	defer func() {
		select {
		case <-done:
		default:
			close(done)
		}
		if client != nil {
			h.hub.Unregister(client)
			h.setPresence(client.UserID, "offline")
		}
	}()

	_ = conn.SetReadDeadline(time.Now().Add(h.cfg.ReadTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(h.cfg.ReadTimeout))
	})

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(h.cfg.ReadTimeout))

		var frame clientFrame
		if err := json.Unmarshal(payload, &frame); err != nil {
			h.writeError(conn, client, http.StatusBadRequest, "malformed frame")
			continue
		}

		switch frame.Type {
		case "auth":
			if client != nil {
				h.writeError(conn, client, http.StatusBadRequest, "already authenticated")
				continue
			}
			claims, err := h.tokens.Validate(frame.Token)
			if err != nil {
				h.writeError(conn, client, http.StatusUnauthorized, "invalid token")
				continue
			}
			userID, err := claims.UserID()
			if err != nil {
				h.writeError(conn, client, http.StatusUnauthorized, "invalid token")
				continue
			}

			client = &Client{
				UserID: userID,
				Conn:   conn,
				Send:   make(chan []byte, 256),
			}
			h.hub.Register(client)
			h.setPresence(userID, "online")
			go h.writePump(client, done)

		case "message":
			if client == nil {
				h.writeError(conn, client, http.StatusUnauthorized, "authenticate first")
				continue
			}
			if _, err := h.messages.Send(client.UserID, frame.ReceiverID, frame.Content, frame.AttachmentURL); err != nil {
				h.writeError(conn, client, sendErrorCode(err), err.Error())
			}
			// The persisted envelope reaches this client via the
			// hub echo; nothing else to write here.

		case "heartbeat":
			if client != nil && redis.Enabled() {
				_ = redis.RefreshUserPresence(client.UserID)
			}

		default:
			h.writeError(conn, client, http.StatusBadRequest, "unknown frame type")
		}
	}
}

// writePump owns the connection's write side: forwarded envelopes,
// echo acks, error frames and pings all pass through here.
func (h *Handler) writePump(client *Client, done <-chan struct{}) {
	ticker := time.NewTicker(h.cfg.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case payload := <-client.Send:
			if err := client.Conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			if err := client.Conn.WriteControl(websocket.PingMessage, []byte("ping"), time.Now().Add(5*time.Second)); err != nil {
				return
			}
		}
	}
}

// writeError sends an error frame. Before auth the reading goroutine
// is the only writer, so it may use the connection directly; after
// auth all writes funnel through the client's send channel.
func (h *Handler) writeError(conn *websocket.Conn, client *Client, code int, message string) {
	payload, err := json.Marshal(errorFrame{Type: "error", Code: code, Message: message})
	if err != nil {
		return
	}
	if client == nil {
		_ = conn.WriteMessage(websocket.TextMessage, payload)
		return
	}
	select {
	case client.Send <- payload:
	default:
	}
}

func (h *Handler) setPresence(userID uint, status string) {
	if !redis.Enabled() {
		return
	}
	fullName := ""
	if user, err := h.users.GetByID(userID); err == nil {
		fullName = user.FullName
	}
	if err := redis.SetUserPresence(userID, fullName, status); err != nil {
		logger.Warn("set presence", zap.Error(err))
	}
}

func sendErrorCode(err error) int {
	switch {
	case errors.Is(err, apperr.ErrForeignKey):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

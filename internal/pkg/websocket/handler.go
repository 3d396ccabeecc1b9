package websocket

import (
	"encoding/json"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/grantsphere/internal/app/services"
	"github.com/yigit/grantsphere/internal/middleware"
)

// Handler for WebSocket connections
type Handler struct {
	hub    *Hub
	browse services.BrowseService
	logger zerolog.Logger
}

// NewHandler creates a new WebSocket handler
func NewHandler(hub *Hub, browse services.BrowseService, logger zerolog.Logger) *Handler {
	return &Handler{
		hub:    hub,
		browse: browse,
		logger: logger,
	}
}

// HandleConnection godoc
// @Summary Subscribe to a browse session
// @Description Upgrades the connection to a WebSocket. The server pushes a state message after every change of the session and accepts commands in the same form as the commands endpoint.
// @Tags sessions, websocket
// @Param id path string true "Session ID"
// @Success 101 {string} string "Switching Protocols to WebSocket"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{id}/ws [get]
func (h *Handler) HandleConnection(c *gin.Context) {
	sessionID := c.Param("id")

	state, err := h.browse.State(c.Request.Context(), sessionID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("sessionID", sessionID).
			Msg("Failed to upgrade connection to WebSocket")
		return
	}

	client := &Client{
		hub:       h.hub,
		conn:      conn,
		send:      make(chan []byte, 64),
		sessionID: sessionID,
		browse:    h.browse,
		logger:    h.logger,
	}

	// The first frame is the current state so the peer can render at once
	if data, err := json.Marshal(&Message{
		Type:      MessageTypeState,
		SessionID: sessionID,
		State:     state,
		Timestamp: time.Now(),
	}); err == nil {
		client.send <- data
	}

	if !h.hub.join(client) {
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()

	h.logger.Info().
		Str("sessionID", sessionID).
		Str("remoteAddr", conn.RemoteAddr().String()).
		Msg("WebSocket connection established")
}

package api

import (
	"chatroom/internal/hub"
	ws "chatroom/internal/websocket"
	"github.com/gin-gonic/gin"
)

type WebSocketHandler struct {
	hub *hub.Hub
}

func NewWebSocketHandler(h *hub.Hub) *WebSocketHandler {
	return &WebSocketHandler{hub: h}
}

// HandleWebSocket upgrades the connection and streams events
// @Summary WebSocket event stream
// @Description Upgrade to WebSocket and receive every sign-in and message event from this moment on, in commit order. History is served by GET /users and GET /messages; fetch it before subscribing.
// @Tags websocket
// @Success 101 {string} string "Switching Protocols"
// @Failure 400 {object} ErrorResponse "Bad Request"
// @Router /ws [get]
func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	// Serve blocks for the lifetime of the connection; upgrade errors have
	// already been written to the response by the upgrader.
	ws.Serve(h.hub, c.Writer, c.Request)
}

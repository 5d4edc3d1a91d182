package api

import (
	"errors"
	"net/http"

	"chatroom/internal/hub"
	"chatroom/pkg/chat"
	"github.com/gin-gonic/gin"
)

type MessageHandlers struct {
	hub *hub.Hub
}

func NewMessageHandlers(h *hub.Hub) *MessageHandlers {
	return &MessageHandlers{hub: h}
}

// SendMessageHandler appends a message to the room log
// @Summary Send a message
// @Description Append a message to the log and announce it to all subscribers
// @Tags Messages
// @Accept json
// @Produce json
// @Param request body SendMessageRequest true "Send message request"
// @Success 200 {object} SendMessageResponse "Message accepted with its assigned index"
// @Failure 400 {object} ErrorResponse "Message is empty or the body is malformed"
// @Failure 404 {object} ErrorResponse "User is not signed in"
// @Router /messages [post]
func (h *MessageHandlers) SendMessageHandler(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	index, err := h.hub.Send(req.User, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrEmptyMessage):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, chat.ErrUnknownUser):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to send message"})
		}
		return
	}

	c.JSON(http.StatusOK, SendMessageResponse{Index: index})
}

// ListMessagesHandler returns the full message history
// @Summary List messages
// @Description Get every message sent so far in ascending index order
// @Tags Messages
// @Produce json
// @Success 200 {object} MessagesResponse "Messages retrieved successfully"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /messages [get]
func (h *MessageHandlers) ListMessagesHandler(c *gin.Context) {
	messages, err := h.hub.Messages()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list messages"})
		return
	}

	c.JSON(http.StatusOK, MessagesResponse{Messages: messages})
}

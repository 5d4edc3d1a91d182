package api

import (
	"chatroom/internal/hub"

	"github.com/gin-gonic/gin"
)

type Router struct {
	uh *UserHandlers
	mh *MessageHandlers
	wh *WebSocketHandler
}

func NewRouter(h *hub.Hub) *Router {
	return &Router{
		uh: NewUserHandlers(h),
		mh: NewMessageHandlers(h),
		wh: NewWebSocketHandler(h),
	}
}

func (r *Router) RegisterRoutes(router *gin.Engine) {
	router.GET("/hc", HealthCheckHandler)
	router.POST("/signin", r.uh.SignInHandler)
	router.GET("/users", r.uh.ListUsersHandler)
	router.GET("/messages", r.mh.ListMessagesHandler)
	router.POST("/messages", r.mh.SendMessageHandler)
	router.GET("/ws", r.wh.HandleWebSocket)
}

func HealthCheckHandler(c *gin.Context) {
	c.String(200, "Running")
}

package api

import (
	"errors"
	"net/http"

	"chatroom/internal/hub"
	"chatroom/pkg/chat"
	"github.com/gin-gonic/gin"
)

type UserHandlers struct {
	hub *hub.Hub
}

func NewUserHandlers(h *hub.Hub) *UserHandlers {
	return &UserHandlers{hub: h}
}

// SignInHandler signs a user in under a display name
// @Summary Sign in with a display name
// @Description Add a display name to the room and announce it to all subscribers
// @Tags Users
// @Accept json
// @Produce json
// @Param request body SignInRequest true "Sign in request"
// @Success 200 {object} SignInResponse "Signed in"
// @Failure 400 {object} ErrorResponse "Name is empty or the body is malformed"
// @Failure 409 {object} ErrorResponse "Name is already signed in"
// @Router /signin [post]
func (h *UserHandlers) SignInHandler(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	user, err := h.hub.SignIn(req.User)
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrEmptyName):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, chat.ErrDuplicateName):
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to sign in"})
		}
		return
	}

	c.JSON(http.StatusOK, SignInResponse{User: user.Name})
}

// ListUsersHandler lists the signed-in names
// @Summary List signed-in users
// @Description Get all signed-in display names in alphabetical order
// @Tags Users
// @Produce json
// @Success 200 {object} UsersResponse "Users retrieved successfully"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /users [get]
func (h *UserHandlers) ListUsersHandler(c *gin.Context) {
	users, err := h.hub.Users()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list users"})
		return
	}

	c.JSON(http.StatusOK, UsersResponse{Users: users})
}

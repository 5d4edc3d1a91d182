package api

import "chatroom/pkg/chat"

type SignInRequest struct {
	User string `json:"user" example:"adam"`
}

type SignInResponse struct {
	User string `json:"user" example:"adam"`
}

type UsersResponse struct {
	Users []string `json:"users"`
}

type SendMessageRequest struct {
	User    string `json:"user" example:"adam"`
	Message string `json:"message" example:"hello everyone"`
}

type SendMessageResponse struct {
	Index int `json:"index" example:"0"`
}

type MessagesResponse struct {
	Messages []chat.Message `json:"messages"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"name is already signed in"`
}

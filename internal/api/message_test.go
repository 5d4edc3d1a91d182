package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendMessageHandler_Success(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := performJSON(router, http.MethodPost, "/signin", SignInRequest{User: "adam"})
	require.Equal(t, http.StatusOK, w.Code)

	w = performJSON(router, http.MethodPost, "/messages", SendMessageRequest{User: "adam", Message: "wewt"})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp SendMessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Index)

	w = performJSON(router, http.MethodPost, "/messages", SendMessageRequest{User: "adam", Message: "again"})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Index)
}

func TestSendMessageHandler_UnknownUser(t *testing.T) {
	router, h := setupTestRouter(t)

	w := performJSON(router, http.MethodPost, "/messages", SendMessageRequest{User: "ghost", Message: "hi"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	messages, err := h.Messages()
	require.NoError(t, err)
	assert.Empty(t, messages, "rejected send must not grow the log")
}

func TestSendMessageHandler_EmptyMessage(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := performJSON(router, http.MethodPost, "/signin", SignInRequest{User: "adam"})
	require.Equal(t, http.StatusOK, w.Code)

	w = performJSON(router, http.MethodPost, "/messages", SendMessageRequest{User: "adam", Message: ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListMessagesHandler_Empty(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := performJSON(router, http.MethodGet, "/messages", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"messages":[]}`, w.Body.String())
}

func TestListMessagesHandler_AscendingIndexOrder(t *testing.T) {
	router, _ := setupTestRouter(t)

	for _, name := range []string{"alice", "bob"} {
		w := performJSON(router, http.MethodPost, "/signin", SignInRequest{User: name})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := performJSON(router, http.MethodPost, "/messages", SendMessageRequest{User: "alice", Message: "hi"})
	require.Equal(t, http.StatusOK, w.Code)
	w = performJSON(router, http.MethodPost, "/messages", SendMessageRequest{User: "bob", Message: "yo"})
	require.Equal(t, http.StatusOK, w.Code)

	w = performJSON(router, http.MethodGet, "/messages", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"messages":[
		{"index":0,"user":"alice","message":"hi"},
		{"index":1,"user":"bob","message":"yo"}
	]}`, w.Body.String())
}

package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"chatroom/internal/directory"
	"chatroom/internal/hub"
	"chatroom/internal/messagelog"
	"chatroom/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *hub.Hub) {
	gin.SetMode(gin.TestMode)

	db, err := storage.Connect(":memory:")
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	dir := directory.NewService(db)
	h := hub.New(dir, messagelog.NewService(db, dir))

	router := gin.New()
	NewRouter(h).RegisterRoutes(router)

	return router, h
}

func performJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSignInHandler_Success(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := performJSON(router, http.MethodPost, "/signin", SignInRequest{User: "adam"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp SignInResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "adam", resp.User)
}

func TestSignInHandler_EmptyName(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := performJSON(router, http.MethodPost, "/signin", SignInRequest{User: ""})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSignInHandler_DuplicateName(t *testing.T) {
	router, h := setupTestRouter(t)

	w := performJSON(router, http.MethodPost, "/signin", SignInRequest{User: "bobo"})
	require.Equal(t, http.StatusOK, w.Code)

	w = performJSON(router, http.MethodPost, "/signin", SignInRequest{User: "bobo"})
	assert.Equal(t, http.StatusConflict, w.Code)

	users, err := h.Users()
	require.NoError(t, err)
	assert.Equal(t, []string{"bobo"}, users, "directory must still hold exactly one entry")
}

func TestSignInHandler_InvalidBody(t *testing.T) {
	router, _ := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/signin", bytes.NewBufferString("not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListUsersHandler_Empty(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := performJSON(router, http.MethodGet, "/users", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"users":[]}`, w.Body.String())
}

func TestListUsersHandler_Alphabetical(t *testing.T) {
	router, _ := setupTestRouter(t)

	for _, name := range []string{"frank", "adam", "zoe"} {
		w := performJSON(router, http.MethodPost, "/signin", SignInRequest{User: name})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := performJSON(router, http.MethodGet, "/users", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp UsersResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"adam", "frank", "zoe"}, resp.Users)
}

func TestHealthCheckHandler(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := performJSON(router, http.MethodGet, "/hc", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Running", w.Body.String())
}

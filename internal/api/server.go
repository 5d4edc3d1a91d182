package api

import (
	"net/http"

	"chatroom/internal/config"
	"chatroom/internal/hub"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

// Serve wires the routes around the injected hub and listens on the
// configured port. The CORS layer wraps the whole engine so the browser UI
// can live on another origin.
func Serve(cfg config.Config, h *hub.Hub) error {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	router := NewRouter(h)
	router.RegisterRoutes(r)

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	})

	return http.ListenAndServe(":"+cfg.ServerPort, c.Handler(r))
}

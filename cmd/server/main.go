package main

import (
	"log"

	"chatroom/internal/api"
	"chatroom/internal/config"
	"chatroom/internal/directory"
	"chatroom/internal/hub"
	"chatroom/internal/messagelog"
	"chatroom/internal/storage"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf(".env file not found, using environment defaults")
	}

	cfg := config.Load()

	db, err := storage.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("failed to open storage: %v", err)
	}

	dir := directory.NewService(db)
	h := hub.New(dir, messagelog.NewService(db, dir))

	log.Printf("chatroom listening on :%s (env=%s, origins=%v)", cfg.ServerPort, cfg.Env, cfg.AllowedOrigins)
	log.Fatal(api.Serve(cfg, h))
}

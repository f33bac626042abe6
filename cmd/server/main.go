package main

import (
	"os"

	"okaigpt/backend/internal/app"
)

// @title           OKAIgpt API
// @version         1.0
// @description     Backend for the OKAIgpt multi-tool assistant: chat sessions, tools, video lifecycle and activity feed.
// @host            localhost:8000
// @BasePath        /api
func main() {
	os.Exit(app.Run())
}

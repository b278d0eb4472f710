// @title        Ollama Chat API
// @version      1.0
// @description  CRUD backend for the Ollama chat web application.
// @BasePath     /api
package main

import (
	"os"

	"ollama-chat/backend/internal/app"
)

func main() {
	os.Exit(app.Run())
}

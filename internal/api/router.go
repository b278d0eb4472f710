package api

import (
	"net/http"
	"time"

	// This blank import is required by swaggo to find the API definitions.
	_ "ollama-chat/backend/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter creates and configures a new chi router with all the application's routes.
func NewRouter(chatHandler *ChatHandler, generateHandler *GenerateHandler, frontendDir string) *chi.Mux {
	r := chi.NewRouter()

	// --- Global Middleware ---
	r.Use(middleware.RequestID) // Injects a unique request ID into the context.
	r.Use(middleware.RealIP)    // Sets the remote address to the real IP from proxy headers.
	r.Use(middleware.Logger)    // Logs the start and end of each request with useful info.
	r.Use(middleware.Recoverer) // Recovers from panics and returns a 500 error.

	// The browser client runs on the vite dev server during development,
	// so cross-origin requests must be allowed.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	// Serves the auto-generated Swagger UI for API documentation.
	r.Get("/api/swagger/*", httpSwagger.WrapHandler)

	// A simple health check endpoint for container orchestration probes.
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))

		// --- Chats ---
		r.Get("/chats", chatHandler.GetChats)
		r.Post("/chats", chatHandler.CreateChat)
		r.Patch("/chats/{chatID}", chatHandler.RenameChat)
		r.Delete("/chats/{chatID}", chatHandler.DeleteChat)

		// --- Messages ---
		r.Post("/chats/{chatID}/messages", chatHandler.AppendMessages)
		r.Get("/chats/{chatID}/messages", chatHandler.GetMessages)

		// --- Inference proxy ---
		r.Post("/generate", generateHandler.Generate)
	})

	// --- Frontend File Server ---
	// Serves the built frontend. In production this would usually be handled
	// by a reverse proxy, but it keeps local development simple.
	fileServer := http.FileServer(http.Dir(frontendDir))
	r.Handle("/*", http.StripPrefix("/", fileServer))

	return r
}

package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	app_errors "ollama-chat/backend/internal/errors"
)

// This file contains shared DTOs (Data Transfer Objects) for API responses
// and helper functions for sending consistent HTTP responses.

// ErrorResponse defines the standard JSON structure for error messages.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse defines a generic success response for operations that don't
// return a full resource, such as deleting a chat.
type StatusResponse struct {
	Message string `json:"message"`
}

// CreateChatRequest is the DTO for creating a chat. The title is optional;
// a blank one falls back to the configured default.
type CreateChatRequest struct {
	Title string `json:"title" example:"Nuevo Chat"`
}

// UpdateTitleRequest is the DTO for the chat rename endpoint.
type UpdateTitleRequest struct {
	Title string `json:"title" validate:"required,max=100" example:"My Custom Chat Title"`
}

// AppendMessagesRequest is the DTO for the batch message append endpoint.
// Role and content rules are enforced by the service, not here.
type AppendMessagesRequest struct {
	Messages []NewMessagePayload `json:"messages"`
}

// NewMessagePayload is one element of an append batch.
type NewMessagePayload struct {
	Role    string `json:"role" example:"user"`
	Content string `json:"content" example:"hola"`
}

// GenerateProxyRequest is the DTO for the inference proxy endpoint.
type GenerateProxyRequest struct {
	Model  string `json:"model" example:"llama3"`
	Prompt string `json:"prompt" validate:"required" example:"Why is the sky blue?"`
}

// respondWithError is the centralized error handling function for the API
// layer. It maps domain errors to HTTP status codes and formats a standard
// JSON error response.
func respondWithError(w http.ResponseWriter, err error) {
	var statusCode int
	var message string

	switch {
	case errors.Is(err, app_errors.ErrNotFound):
		statusCode = http.StatusNotFound
		message = "The requested resource was not found."
	case errors.Is(err, app_errors.ErrValidation):
		// For validation errors, the error message from the service layer
		// is already descriptive and user-friendly.
		statusCode = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, app_errors.ErrUpstreamUnavailable):
		statusCode = http.StatusBadGateway
		message = "The inference endpoint is unavailable."
	default:
		// Store failures and anything unhandled become an internal server
		// error, so no implementation details leak to the client.
		statusCode = http.StatusInternalServerError
		message = "An unexpected internal server error occurred."
	}

	// The original, more detailed error is logged for debugging purposes,
	// while a generic message is sent to the client.
	slog.Warn("Responding with error", "status_code", statusCode, "client_message", message, "internal_error", err)

	respondWithJSON(w, statusCode, ErrorResponse{Error: message})
}

// respondWithJSON is a low-level helper for marshaling a payload to JSON
// and writing it to the http.ResponseWriter with a given status code.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		// This indicates a server-side programming error (e.g., trying to marshal a channel).
		slog.Error("Failed to marshal JSON response", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		slog.Error("Failed to write JSON response", "error", err)
	}
}

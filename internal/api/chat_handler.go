package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	app_errors "ollama-chat/backend/internal/errors"
	"ollama-chat/backend/internal/interfaces"
	"ollama-chat/backend/internal/model"
)

// ChatHandler translates HTTP requests into ChatService calls. It does no
// business validation of its own beyond checking the shape of path ids.
type ChatHandler struct {
	service interfaces.ChatService
}

func NewChatHandler(svc interfaces.ChatService) *ChatHandler {
	return &ChatHandler{service: svc}
}

// chatIDParam extracts and checks the {chatID} path parameter. Ids are UUID
// strings; anything else is rejected before it reaches the service.
func chatIDParam(r *http.Request) (string, error) {
	chatID := chi.URLParam(r, "chatID")
	if _, err := uuid.Parse(chatID); err != nil {
		return "", fmt.Errorf("%w: malformed chat id %q", app_errors.ErrValidation, chatID)
	}
	return chatID, nil
}

// GetChats godoc
// @Summary      List chats
// @Description  Returns every chat, newest first.
// @Tags         Chats
// @Produce      json
// @Success      200  {array}   model.Chat
// @Failure      500  {object}  ErrorResponse
// @Router       /chats [get]
func (h *ChatHandler) GetChats(w http.ResponseWriter, r *http.Request) {
	chats, err := h.service.ListChats(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	if chats == nil {
		chats = []*model.Chat{}
	}
	respondWithJSON(w, http.StatusOK, chats)
}

// CreateChat godoc
// @Summary      Create a chat
// @Description  Creates a new chat. A missing or blank title falls back to the default placeholder.
// @Tags         Chats
// @Accept       json
// @Produce      json
// @Param        chat  body      CreateChatRequest  false  "Optional title"
// @Success      201   {object}  model.Chat
// @Failure      400   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /chats [post]
func (h *ChatHandler) CreateChat(w http.ResponseWriter, r *http.Request) {
	var req CreateChatRequest
	// An empty body is fine: it simply means "no title".
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		respondWithError(w, fmt.Errorf("%w: invalid request payload", app_errors.ErrValidation))
		return
	}

	chat, err := h.service.CreateChat(r.Context(), req.Title)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, chat)
}

// RenameChat godoc
// @Summary      Rename a chat
// @Tags         Chats
// @Accept       json
// @Produce      json
// @Param        chatID  path      string              true  "Chat ID"
// @Param        title   body      UpdateTitleRequest  true  "New title"
// @Success      200     {object}  model.Chat
// @Failure      400     {object}  ErrorResponse
// @Failure      404     {object}  ErrorResponse
// @Router       /chats/{chatID} [patch]
func (h *ChatHandler) RenameChat(w http.ResponseWriter, r *http.Request) {
	chatID, err := chatIDParam(r)
	if err != nil {
		respondWithError(w, err)
		return
	}

	var req UpdateTitleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request payload", app_errors.ErrValidation))
		return
	}
	if err := validateRequest(req); err != nil {
		respondWithError(w, err)
		return
	}

	chat, err := h.service.RenameChat(r.Context(), chatID, req.Title)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, chat)
}

// DeleteChat godoc
// @Summary      Delete a chat
// @Description  Deletes a chat and all of its messages.
// @Tags         Chats
// @Produce      json
// @Param        chatID  path      string  true  "Chat ID"
// @Success      200     {object}  StatusResponse
// @Failure      400     {object}  ErrorResponse
// @Failure      404     {object}  ErrorResponse
// @Router       /chats/{chatID} [delete]
func (h *ChatHandler) DeleteChat(w http.ResponseWriter, r *http.Request) {
	chatID, err := chatIDParam(r)
	if err != nil {
		respondWithError(w, err)
		return
	}

	if err := h.service.DeleteChat(r.Context(), chatID); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Message: "chat deleted"})
}

// AppendMessages godoc
// @Summary      Append messages to a chat
// @Description  Persists a batch of messages in input order. The batch is all-or-nothing.
// @Tags         Messages
// @Accept       json
// @Produce      json
// @Param        chatID    path      string                 true  "Chat ID"
// @Param        messages  body      AppendMessagesRequest  true  "Batch of messages"
// @Success      200       {array}   model.Message
// @Failure      400       {object}  ErrorResponse
// @Failure      404       {object}  ErrorResponse
// @Failure      500       {object}  ErrorResponse
// @Router       /chats/{chatID}/messages [post]
func (h *ChatHandler) AppendMessages(w http.ResponseWriter, r *http.Request) {
	chatID, err := chatIDParam(r)
	if err != nil {
		respondWithError(w, err)
		return
	}

	var req AppendMessagesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request payload", app_errors.ErrValidation))
		return
	}

	batch := make([]model.NewMessage, 0, len(req.Messages))
	for _, msg := range req.Messages {
		batch = append(batch, model.NewMessage{Role: msg.Role, Content: msg.Content})
	}

	saved, err := h.service.AppendMessages(r.Context(), chatID, batch)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, saved)
}

// GetMessages godoc
// @Summary      List a chat's messages
// @Description  Returns messages ascending by timestamp.
// @Tags         Messages
// @Produce      json
// @Param        chatID  path      string  true  "Chat ID"
// @Success      200     {array}   model.Message
// @Failure      400     {object}  ErrorResponse
// @Failure      404     {object}  ErrorResponse
// @Failure      500     {object}  ErrorResponse
// @Router       /chats/{chatID}/messages [get]
func (h *ChatHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	chatID, err := chatIDParam(r)
	if err != nil {
		respondWithError(w, err)
		return
	}

	messages, err := h.service.ListMessages(r.Context(), chatID)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, messages)
}

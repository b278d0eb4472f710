package interfaces

import (
	"context"

	"ollama-chat/backend/internal/model"
)

// This file defines the interfaces for our core services.
// Depending on these interfaces, instead of concrete implementations, allows
// for decoupling (e.g., API layer from Service layer) and easier testing via
// mocking.

// ChatService defines the contract for chat-related business logic.
type ChatService interface {
	ListChats(ctx context.Context) ([]*model.Chat, error)
	CreateChat(ctx context.Context, title string) (*model.Chat, error)
	RenameChat(ctx context.Context, chatID, newTitle string) (*model.Chat, error)
	DeleteChat(ctx context.Context, chatID string) error
	AppendMessages(ctx context.Context, chatID string, batch []model.NewMessage) ([]model.Message, error)
	ListMessages(ctx context.Context, chatID string) ([]model.Message, error)
}

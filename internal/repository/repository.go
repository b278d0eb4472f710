package repository

import (
	"context"

	"ollama-chat/backend/internal/model"
)

// Repository defines the interface for data storage operations.
// This interface makes it easy to switch database implementations.
type Repository interface {
	CreateChat(ctx context.Context, chat *model.Chat) error
	GetChat(ctx context.Context, chatID string) (*model.Chat, error)
	GetChats(ctx context.Context) ([]*model.Chat, error)
	UpdateChatTitle(ctx context.Context, chatID, newTitle string) error
	DeleteChat(ctx context.Context, chatID string) error

	// AddMessages persists the batch in input order within a single
	// transaction. Either every message is written or none is.
	AddMessages(ctx context.Context, chatID string, messages []*model.Message) error
	GetMessagesByChatID(ctx context.Context, chatID string) ([]model.Message, error)
}

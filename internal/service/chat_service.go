package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	app_errors "ollama-chat/backend/internal/errors"
	"ollama-chat/backend/internal/model"
	"ollama-chat/backend/internal/repository"
)

// ChatService is the single authority over chat and message invariants.
// All store access goes through it.
type ChatService struct {
	repo repository.Repository

	// defaultTitle is used when a chat is created with a blank title.
	defaultTitle string

	// strictLookup makes ListMessages fail with ErrNotFound for a
	// well-formed id that references no chat, instead of returning an
	// empty list.
	strictLookup bool
}

func NewChatService(repo repository.Repository, defaultTitle string, strictLookup bool) *ChatService {
	return &ChatService{repo: repo, defaultTitle: defaultTitle, strictLookup: strictLookup}
}

// ListChats returns every chat, newest first.
func (s *ChatService) ListChats(ctx context.Context) ([]*model.Chat, error) {
	chats, err := s.repo.GetChats(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: could not list chats: %v", app_errors.ErrStoreUnavailable, err)
	}
	return chats, nil
}

// CreateChat creates a new chat. A blank or whitespace-only title falls back
// to the configured default.
func (s *ChatService) CreateChat(ctx context.Context, title string) (*model.Chat, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		title = s.defaultTitle
	}

	now := time.Now().UTC()
	chat := &model.Chat{
		ID:        uuid.NewString(),
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.CreateChat(ctx, chat); err != nil {
		return nil, fmt.Errorf("%w: could not create chat: %v", app_errors.ErrStoreUnavailable, err)
	}

	slog.Info("Created chat", "chat_id", chat.ID, "title", chat.Title)
	return chat, nil
}

// RenameChat updates a chat's title and returns the updated chat.
func (s *ChatService) RenameChat(ctx context.Context, chatID, newTitle string) (*model.Chat, error) {
	newTitle = strings.TrimSpace(newTitle)
	if newTitle == "" {
		return nil, fmt.Errorf("%w: title cannot be empty", app_errors.ErrValidation)
	}

	if err := s.repo.UpdateChatTitle(ctx, chatID, newTitle); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: chat %s", app_errors.ErrNotFound, chatID)
		}
		return nil, fmt.Errorf("%w: could not rename chat: %v", app_errors.ErrStoreUnavailable, err)
	}

	chat, err := s.repo.GetChat(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("%w: could not load renamed chat: %v", app_errors.ErrStoreUnavailable, err)
	}

	slog.Info("Renamed chat", "chat_id", chatID, "title", newTitle)
	return chat, nil
}

// DeleteChat removes a chat together with all its messages.
func (s *ChatService) DeleteChat(ctx context.Context, chatID string) error {
	if err := s.repo.DeleteChat(ctx, chatID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: chat %s", app_errors.ErrNotFound, chatID)
		}
		return fmt.Errorf("%w: could not delete chat: %v", app_errors.ErrStoreUnavailable, err)
	}

	slog.Info("Deleted chat", "chat_id", chatID)
	return nil
}

// AppendMessages validates and persists a batch of messages, preserving input
// order. The batch is all-or-nothing: if any element is invalid, nothing is
// written. An empty batch is a no-op.
func (s *ChatService) AppendMessages(ctx context.Context, chatID string, batch []model.NewMessage) ([]model.Message, error) {
	for i, msg := range batch {
		if !model.ValidRole(msg.Role) {
			return nil, fmt.Errorf("%w: message %d has invalid role %q", app_errors.ErrValidation, i, msg.Role)
		}
		if strings.TrimSpace(msg.Content) == "" {
			return nil, fmt.Errorf("%w: message %d has empty content", app_errors.ErrValidation, i)
		}
	}

	if len(batch) == 0 {
		return []model.Message{}, nil
	}

	if _, err := s.repo.GetChat(ctx, chatID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: chat %s", app_errors.ErrNotFound, chatID)
		}
		return nil, fmt.Errorf("%w: could not look up chat: %v", app_errors.ErrStoreUnavailable, err)
	}

	now := time.Now().UTC()
	messages := make([]*model.Message, 0, len(batch))
	for _, msg := range batch {
		messages = append(messages, &model.Message{
			ID:        uuid.NewString(),
			ChatID:    chatID,
			Role:      msg.Role,
			Content:   msg.Content,
			Timestamp: now,
		})
	}

	if err := s.repo.AddMessages(ctx, chatID, messages); err != nil {
		return nil, fmt.Errorf("%w: could not save messages: %v", app_errors.ErrStoreUnavailable, err)
	}

	saved := make([]model.Message, 0, len(messages))
	for _, msg := range messages {
		saved = append(saved, *msg)
	}

	slog.Info("Appended messages", "chat_id", chatID, "count", len(saved))
	return saved, nil
}

// ListMessages returns a chat's messages ascending by timestamp. For a chat
// id that references nothing, the result depends on the strict lookup
// setting: an empty list by default, ErrNotFound when strict.
func (s *ChatService) ListMessages(ctx context.Context, chatID string) ([]model.Message, error) {
	if s.strictLookup {
		if _, err := s.repo.GetChat(ctx, chatID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, fmt.Errorf("%w: chat %s", app_errors.ErrNotFound, chatID)
			}
			return nil, fmt.Errorf("%w: could not look up chat: %v", app_errors.ErrStoreUnavailable, err)
		}
	}

	messages, err := s.repo.GetMessagesByChatID(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("%w: could not list messages: %v", app_errors.ErrStoreUnavailable, err)
	}
	if messages == nil {
		messages = []model.Message{}
	}
	return messages, nil
}

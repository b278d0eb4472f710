package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"ollama-chat/backend/internal/model"
)

// MockRepository is a testify-based mock of repository.Repository.
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateChat(ctx context.Context, chat *model.Chat) error {
	args := m.Called(ctx, chat)
	return args.Error(0)
}

func (m *MockRepository) GetChat(ctx context.Context, chatID string) (*model.Chat, error) {
	args := m.Called(ctx, chatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Chat), args.Error(1)
}

func (m *MockRepository) GetChats(ctx context.Context) ([]*model.Chat, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Chat), args.Error(1)
}

func (m *MockRepository) UpdateChatTitle(ctx context.Context, chatID, newTitle string) error {
	args := m.Called(ctx, chatID, newTitle)
	return args.Error(0)
}

func (m *MockRepository) DeleteChat(ctx context.Context, chatID string) error {
	args := m.Called(ctx, chatID)
	return args.Error(0)
}

func (m *MockRepository) AddMessages(ctx context.Context, chatID string, messages []*model.Message) error {
	args := m.Called(ctx, chatID, messages)
	return args.Error(0)
}

func (m *MockRepository) GetMessagesByChatID(ctx context.Context, chatID string) ([]model.Message, error) {
	args := m.Called(ctx, chatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Message), args.Error(1)
}

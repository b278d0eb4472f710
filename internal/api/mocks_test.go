package api_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"ollama-chat/backend/internal/llm"
	"ollama-chat/backend/internal/model"
)

// MockChatService is a testify-based mock of interfaces.ChatService.
type MockChatService struct {
	mock.Mock
}

func (m *MockChatService) ListChats(ctx context.Context) ([]*model.Chat, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Chat), args.Error(1)
}

func (m *MockChatService) CreateChat(ctx context.Context, title string) (*model.Chat, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Chat), args.Error(1)
}

func (m *MockChatService) RenameChat(ctx context.Context, chatID, newTitle string) (*model.Chat, error) {
	args := m.Called(ctx, chatID, newTitle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Chat), args.Error(1)
}

func (m *MockChatService) DeleteChat(ctx context.Context, chatID string) error {
	args := m.Called(ctx, chatID)
	return args.Error(0)
}

func (m *MockChatService) AppendMessages(ctx context.Context, chatID string, batch []model.NewMessage) ([]model.Message, error) {
	args := m.Called(ctx, chatID, batch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Message), args.Error(1)
}

func (m *MockChatService) ListMessages(ctx context.Context, chatID string) ([]model.Message, error) {
	args := m.Called(ctx, chatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Message), args.Error(1)
}

// MockProvider is a testify-based mock of llm.Provider.
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) Generate(ctx context.Context, req *llm.GenerateRequest) (*llm.GenerateResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*llm.GenerateResponse), args.Error(1)
}

func (m *MockProvider) Heartbeat(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

package api_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"ollama-chat/backend/internal/api"
	"ollama-chat/backend/internal/llm"
)

func TestGenerateHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		provider := &MockProvider{}
		handler := api.NewGenerateHandler(provider, "llama3")
		provider.On("Generate", mock.Anything, mock.MatchedBy(func(req *llm.GenerateRequest) bool {
			return req.Model == "llama3" && req.Prompt == "hola"
		})).Return(&llm.GenerateResponse{Model: "llama3", Response: "hola!", Done: true}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(`{"prompt":"hola"}`))
		rr := httptest.NewRecorder()
		handler.Generate(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "hola!")
		provider.AssertExpectations(t)
	})

	t.Run("Explicit model overrides the default", func(t *testing.T) {
		provider := &MockProvider{}
		handler := api.NewGenerateHandler(provider, "llama3")
		provider.On("Generate", mock.Anything, mock.MatchedBy(func(req *llm.GenerateRequest) bool {
			return req.Model == "mistral"
		})).Return(&llm.GenerateResponse{Response: "ok", Done: true}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(`{"model":"mistral","prompt":"hola"}`))
		rr := httptest.NewRecorder()
		handler.Generate(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		provider.AssertExpectations(t)
	})

	t.Run("Failure - Missing prompt", func(t *testing.T) {
		provider := &MockProvider{}
		handler := api.NewGenerateHandler(provider, "llama3")

		req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(`{}`))
		rr := httptest.NewRecorder()
		handler.Generate(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Field 'Prompt' failed on the 'required' tag")
		provider.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Upstream unreachable maps to 502", func(t *testing.T) {
		provider := &MockProvider{}
		handler := api.NewGenerateHandler(provider, "llama3")
		provider.On("Generate", mock.Anything, mock.Anything).
			Return(nil, errors.New("connection refused")).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(`{"prompt":"hola"}`))
		rr := httptest.NewRecorder()
		handler.Generate(rr, req)

		assert.Equal(t, http.StatusBadGateway, rr.Code)
	})
}

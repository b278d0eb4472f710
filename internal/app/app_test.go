package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ollama-chat/backend/internal/config"
	"ollama-chat/backend/internal/model"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		AppPort:          8000,
		DatabasePath:     filepath.Join(t.TempDir(), "test.db"),
		OllamaURL:        "http://localhost:11434",
		OllamaModel:      "llama3",
		DefaultChatTitle: "Nuevo Chat",
		FrontendDir:      os.TempDir(),
		LogLevel:         "ERROR",
	}
}

func TestNewApp(t *testing.T) {
	app, err := NewApp(testConfig(t))
	require.NoError(t, err)
	require.NotNil(t, app)
	defer func() { require.NoError(t, app.DB.Close()) }()

	assert.NotNil(t, app.DB)
	assert.NotNil(t, app.Server)
}

// TestChatFlow drives the whole stack (router, handlers, service, repository,
// migrations) against a real SQLite database on disk.
func TestChatFlow(t *testing.T) {
	app, err := NewApp(testConfig(t))
	require.NoError(t, err)
	defer func() { require.NoError(t, app.DB.Close()) }()

	server := httptest.NewServer(app.Server.Handler)
	defer server.Close()

	client := server.Client()

	post := func(path, body string, out interface{}) int {
		t.Helper()
		resp, err := client.Post(server.URL+path, "application/json", strings.NewReader(body))
		require.NoError(t, err)
		defer resp.Body.Close()
		if out != nil && resp.StatusCode < 300 {
			require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
		}
		return resp.StatusCode
	}

	get := func(path string, out interface{}) int {
		t.Helper()
		resp, err := client.Get(server.URL + path)
		require.NoError(t, err)
		defer resp.Body.Close()
		if out != nil && resp.StatusCode < 300 {
			require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
		}
		return resp.StatusCode
	}

	// Create a chat without a title: the default placeholder applies.
	var created model.Chat
	require.Equal(t, http.StatusCreated, post("/api/chats", `{}`, &created))
	assert.Equal(t, "Nuevo Chat", created.Title)
	require.NotEmpty(t, created.ID)

	// Append a user message, then an assistant message.
	var firstBatch []model.Message
	require.Equal(t, http.StatusOK, post("/api/chats/"+created.ID+"/messages",
		`{"messages":[{"role":"user","content":"hi"}]}`, &firstBatch))
	require.Len(t, firstBatch, 1)

	var secondBatch []model.Message
	require.Equal(t, http.StatusOK, post("/api/chats/"+created.ID+"/messages",
		`{"messages":[{"role":"assistant","content":"hello"}]}`, &secondBatch))
	require.Len(t, secondBatch, 1)

	// History comes back in order, timestamps non-decreasing.
	var history []model.Message
	require.Equal(t, http.StatusOK, get("/api/chats/"+created.ID+"/messages", &history))
	require.Len(t, history, 2)
	assert.Equal(t, "hi", history[0].Content)
	assert.Equal(t, model.RoleUser, history[0].Role)
	assert.Equal(t, "hello", history[1].Content)
	assert.Equal(t, model.RoleAssistant, history[1].Role)
	assert.False(t, history[1].Timestamp.Before(history[0].Timestamp))

	// A disallowed role rejects the whole batch and writes nothing.
	require.Equal(t, http.StatusBadRequest, post("/api/chats/"+created.ID+"/messages",
		`{"messages":[{"role":"system","content":"be nice"}]}`, nil))
	history = nil
	require.Equal(t, http.StatusOK, get("/api/chats/"+created.ID+"/messages", &history))
	assert.Len(t, history, 2)

	// Renaming a nonexistent chat is a 404 with no side effects.
	req, err := http.NewRequest(http.MethodPatch,
		server.URL+"/api/chats/00000000-0000-0000-0000-000000000000", strings.NewReader(`{"title":"x"}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Deleting the chat cascades to its messages.
	req, err = http.NewRequest(http.MethodDelete, server.URL+"/api/chats/"+created.ID, nil)
	require.NoError(t, err)
	resp, err = client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var chats []model.Chat
	require.Equal(t, http.StatusOK, get("/api/chats", &chats))
	assert.Empty(t, chats)

	history = nil
	require.Equal(t, http.StatusOK, get("/api/chats/"+created.ID+"/messages", &history))
	assert.Empty(t, history)
}

package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"ollama-chat/backend/internal/api"
	"ollama-chat/backend/internal/config"
	"ollama-chat/backend/internal/database"
	"ollama-chat/backend/internal/llm"
	"ollama-chat/backend/internal/repository"
	"ollama-chat/backend/internal/service"
)

// App holds the wired application: one process-wide database handle and the
// configured HTTP server. Everything is built once here and injected
// explicitly, so tests can substitute fakes at any seam.
type App struct {
	DB     *sql.DB
	Server *http.Server
}

// NewApp builds the full dependency graph from a loaded configuration.
func NewApp(cfg *config.Config) (*App, error) {
	db, err := database.InitDB(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	repo := repository.NewSQLiteRepository(db)
	ollamaProvider := llm.NewOllamaProvider(cfg.OllamaURL)
	chatService := service.NewChatService(repo, cfg.DefaultChatTitle, cfg.StrictChatLookup)

	chatHandler := api.NewChatHandler(chatService)
	generateHandler := api.NewGenerateHandler(ollamaProvider, cfg.OllamaModel)
	router := api.NewRouter(chatHandler, generateHandler, cfg.FrontendDir)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &App{DB: db, Server: server}, nil
}

func Run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		// slog is not yet configured, so use the default logger for this critical error.
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	setupLogger(cfg.LogLevel)

	logConfigSource()

	probeOllama(cfg.OllamaURL)

	app, err := NewApp(cfg)
	if err != nil {
		slog.Error("Failed to build application", "error", err)
		return 1
	}
	defer func() {
		if err := app.DB.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()
	slog.Info("Successfully connected to SQLite database.", "path", cfg.DatabasePath)

	slog.Info("Starting server", "port", cfg.AppPort)
	if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server failed", "error", err)
		return 1
	}

	return 0
}

func logConfigSource() {
	configFileUsed := viper.ConfigFileUsed()
	if configFileUsed != "" {
		slog.Info("Successfully loaded configuration from file.", "file", configFileUsed)
	} else {
		slog.Info("Configuration file not found. Using environment variables and defaults.")
	}
}

func setupLogger(logLevel string) {
	var level slog.Level
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}

// probeOllama checks the inference endpoint once at startup. The core never
// depends on it, so an unreachable Ollama is only worth a warning.
func probeOllama(ollamaURL string) {
	provider := llm.NewOllamaProvider(ollamaURL)
	if err := provider.Heartbeat(context.Background()); err != nil {
		slog.Warn("Ollama is not reachable; generation requests will fail until it is up.", "url", ollamaURL, "error", err)
		return
	}
	slog.Info("Ollama is ready.", "url", ollamaURL)
}

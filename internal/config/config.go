package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	AppPort          int    `mapstructure:"APP_PORT"`
	DatabasePath     string `mapstructure:"DATABASE_PATH"`
	OllamaURL        string `mapstructure:"OLLAMA_URL"`
	OllamaModel      string `mapstructure:"OLLAMA_MODEL"`
	DefaultChatTitle string `mapstructure:"DEFAULT_CHAT_TITLE"`
	// StrictChatLookup controls what listing messages of a well-formed but
	// nonexistent chat id returns: an empty list (false) or a 404 (true).
	StrictChatLookup bool   `mapstructure:"STRICT_CHAT_LOOKUP"`
	FrontendDir      string `mapstructure:"FRONTEND_DIR"`
	LogLevel         string `mapstructure:"LOG_LEVEL"`
}

func LoadConfig() (*Config, error) {
	viper.SetDefault("APP_PORT", 8000)
	viper.SetDefault("DATABASE_PATH", "./data/chat.db")
	viper.SetDefault("OLLAMA_URL", "http://localhost:11434")
	viper.SetDefault("OLLAMA_MODEL", "llama3")
	viper.SetDefault("DEFAULT_CHAT_TITLE", "Nuevo Chat")
	viper.SetDefault("STRICT_CHAT_LOOKUP", false)
	viper.SetDefault("FRONTEND_DIR", "./frontend/dist")
	viper.SetDefault("LOG_LEVEL", "INFO")

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./backend")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

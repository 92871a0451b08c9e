package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds every runtime setting. Values come from the environment,
// optionally seeded from a .env file.
type Config struct {
	Port      string `mapstructure:"port"`
	GinMode   string `mapstructure:"gin_mode"`
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	EnableDB    bool   `mapstructure:"enable_db"`
	DatabaseURL string `mapstructure:"database_url"`

	OpenAIAPIKey    string `mapstructure:"openai_api_key"`
	OpenAIBaseURL   string `mapstructure:"openai_base_url"`
	OpenAIModel     string `mapstructure:"openai_model"`
	OpenAIChatModel string `mapstructure:"openai_chat_model"`

	GeminiAPIKey  string `mapstructure:"gemini_api_key"`
	GeminiBaseURL string `mapstructure:"gemini_base_url"`
	GeminiModel   string `mapstructure:"gemini_model"`

	AITimeout time.Duration `mapstructure:"ai_timeout"`

	RedisURL        string        `mapstructure:"redis_url"`
	EnhanceCacheTTL time.Duration `mapstructure:"enhance_cache_ttl"`

	MaxBodyBytes int64    `mapstructure:"max_body_bytes"`
	CORSOrigins  []string `mapstructure:"cors_origins"`
}

var defaults = map[string]any{
	"port":              "8080",
	"gin_mode":          "release",
	"log_level":         "info",
	"log_format":        "json",
	"enable_db":         false,
	"database_url":      "",
	"openai_api_key":    "",
	"openai_base_url":   "https://api.openai.com/v1",
	"openai_model":      "gpt-4o",
	"openai_chat_model": "gpt-4o-mini",
	"gemini_api_key":    "",
	"gemini_base_url":   "https://generativelanguage.googleapis.com/v1beta",
	"gemini_model":      "gemini-2.0-flash",
	"ai_timeout":        15 * time.Second,
	"redis_url":         "",
	"enhance_cache_ttl": 10 * time.Minute,
	"max_body_bytes":    int64(1 << 20),
	"cors_origins":      []string{"*"},
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.CORSOrigins = trimAll(cfg.CORSOrigins)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.EnableDB && c.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required when ENABLE_DB=true")
	}
	if c.AITimeout <= 0 {
		return errors.New("AI_TIMEOUT must be positive")
	}
	if c.MaxBodyBytes <= 0 {
		return errors.New("MAX_BODY_BYTES must be positive")
	}
	return nil
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

// Package textgen talks to hosted text-generation APIs.
package textgen

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Skufu/aidoc/internal/config"
)

var (
	ErrStatus          = errors.New("unexpected provider status")
	ErrEmptyCompletion = errors.New("provider returned an empty completion")
)

// Request is a single-turn generation. Model overrides the client default when set.
type Request struct {
	System string
	Prompt string
	Model  string
}

type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
	// Name identifies the provider in user-facing status strings.
	Name() string
}

const (
	defaultHTTPTimeout = 30 * time.Second
	timeoutGrace       = 5 * time.Second
)

// maxErrorBody bounds how much of a failed response is kept in the error.
const maxErrorBody = 512

// FromConfig returns the generator used for structured enhancement. OpenAI is
// preferred over Gemini; nil means no provider is configured.
func FromConfig(cfg *config.Config) Generator {
	return fromConfig(cfg, cfg.OpenAIModel)
}

// ChatFromConfig is FromConfig with the lighter conversational OpenAI model.
func ChatFromConfig(cfg *config.Config) Generator {
	return fromConfig(cfg, cfg.OpenAIChatModel)
}

func fromConfig(cfg *config.Config, openAIModel string) Generator {
	client := &http.Client{Timeout: clientTimeout(cfg.AITimeout)}
	switch {
	case cfg.OpenAIAPIKey != "":
		return NewOpenAI(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, openAIModel, client)
	case cfg.GeminiAPIKey != "":
		return NewGemini(cfg.GeminiBaseURL, cfg.GeminiAPIKey, cfg.GeminiModel, client)
	}
	return nil
}

// clientTimeout outlasts the per-call AI_TIMEOUT context, so a slow provider is
// reported as a deadline rather than a transport failure.
func clientTimeout(aiTimeout time.Duration) time.Duration {
	if aiTimeout <= 0 {
		return defaultHTTPTimeout
	}
	return aiTimeout + timeoutGrace
}

func truncate(b []byte) string {
	if len(b) > maxErrorBody {
		return string(b[:maxErrorBody]) + "..."
	}
	return string(b)
}

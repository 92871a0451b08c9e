// Package chat implements the conversational "AI doctor" assistant.
package chat

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Skufu/aidoc/internal/metrics"
	"github.com/Skufu/aidoc/internal/textgen"
)

var ErrMessageRequired = errors.New("message is required")

const (
	StatusNotConfigured = "No API key configured"
	StatusErrorFallback = "Error fallback"

	NotConfiguredResponse = "AI is not configured. Add an OpenAI or Google API key. Meanwhile, share your symptoms, duration, severity, and any medications taken. For emergencies, call 102 or 108."
	ErrorFallbackResponse = "Sorry, I'm having trouble right now. Please share your symptoms, duration, severity, and medications. For emergencies, call 102 or 108."

	// historyWindow is how many prior turns are replayed to the provider.
	historyWindow = 8
)

var systemPrompt = strings.Join([]string{
	"You are a cautious, helpful medical assistant for Indian healthcare.",
	"Provide concise, clear, step-by-step guidance.",
	"Include safety notes and specific red flags that require urgent care.",
	"Do not give a definitive diagnosis; use probabilities where helpful.",
	"If unsure, say so and suggest next steps.",
	"Support English and Hindi mixed replies based on the user's phrasing.",
	"Always end with: 'For emergencies, call 102 or 108.'",
}, " ")

const answerFormat = `Format your answers with:
1) Possible causes (with rough likelihood)
2) What you can do now (specific at-home steps)
3) When to seek care (clear red flags)
4) Medication caution (avoid naming prescription-only drugs)
5) Next steps (follow-up, tests, or doctor types)`

// Turn is one prior message. Clients send the speaker as either type or role.
type Turn struct {
	Type    string `json:"type,omitempty"`
	Role    string `json:"role,omitempty"`
	Content string `json:"content"`
}

func (t Turn) speaker() string {
	role := t.Type
	if role == "" {
		role = t.Role
	}
	if role == "user" {
		return "User"
	}
	return "Assistant"
}

type Request struct {
	Message     string `json:"message"`
	History     []Turn `json:"history"`
	ChatHistory []Turn `json:"chatHistory"`
}

// Turns returns history, falling back to chatHistory when history is absent.
func (r Request) Turns() []Turn {
	if r.History != nil {
		return r.History
	}
	return r.ChatHistory
}

type Reply struct {
	Response string `json:"response"`
	AIStatus string `json:"aiStatus"`
}

type Service struct {
	gen     textgen.Generator
	timeout time.Duration
	logger  *zap.Logger
}

// NewService builds the assistant. A nil generator answers with setup guidance.
func NewService(gen textgen.Generator, timeout time.Duration, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{gen: gen, timeout: timeout, logger: logger.Named("chat")}
}

// Reply never fails once the message is present; provider errors become a fallback reply.
func (s *Service) Reply(ctx context.Context, req Request) (Reply, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return Reply{}, ErrMessageRequired
	}

	if s.gen == nil {
		s.logger.Warn("no provider configured")
		metrics.ChatRepliesTotal.WithLabelValues("none", "not_configured").Inc()
		return Reply{Response: NotConfiguredResponse, AIStatus: StatusNotConfigured}, nil
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := s.gen.Generate(ctx, textgen.Request{
		System: systemPrompt,
		Prompt: BuildPrompt(req.Turns(), message),
	})
	if err != nil {
		s.logger.Warn("chat generation failed",
			zap.String("provider", s.gen.Name()),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		metrics.ChatRepliesTotal.WithLabelValues(s.gen.Name(), "error").Inc()
		return Reply{Response: ErrorFallbackResponse, AIStatus: StatusErrorFallback}, nil
	}

	s.logger.Debug("chat generation ok",
		zap.String("provider", s.gen.Name()),
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("chars", len(text)),
	)
	metrics.ChatRepliesTotal.WithLabelValues(s.gen.Name(), "ok").Inc()
	return Reply{Response: text, AIStatus: s.gen.Name()}, nil
}

// BuildPrompt renders the last few turns, the answer format and the new message.
func BuildPrompt(history []Turn, message string) string {
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}

	var sb strings.Builder
	for _, t := range history {
		sb.WriteString(t.speaker())
		sb.WriteString(": ")
		sb.WriteString(t.Content)
		sb.WriteByte('\n')
	}
	sb.WriteString(answerFormat)
	sb.WriteString("\n\nUser: ")
	sb.WriteString(message)
	sb.WriteString("\nAssistant:")
	return sb.String()
}

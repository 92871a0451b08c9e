package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skufu/aidoc/internal/textgen"
)

type fakeGenerator struct {
	text string
	err  error
	last textgen.Request
}

func (f *fakeGenerator) Generate(_ context.Context, req textgen.Request) (string, error) {
	f.last = req
	return f.text, f.err
}

func (f *fakeGenerator) Name() string { return "OpenAI" }

func TestReplyRequiresMessage(t *testing.T) {
	svc := NewService(&fakeGenerator{}, time.Second, nil)
	_, err := svc.Reply(context.Background(), Request{Message: "  \t"})
	assert.ErrorIs(t, err, ErrMessageRequired)
}

func TestReplyWithoutProvider(t *testing.T) {
	svc := NewService(nil, time.Second, nil)
	reply, err := svc.Reply(context.Background(), Request{Message: "I have a cough"})
	require.NoError(t, err)

	assert.Equal(t, StatusNotConfigured, reply.AIStatus)
	assert.Contains(t, reply.Response, "102")
	assert.Contains(t, reply.Response, "108")
}

func TestReplyProviderFailure(t *testing.T) {
	svc := NewService(&fakeGenerator{err: errors.New("503")}, time.Second, nil)
	reply, err := svc.Reply(context.Background(), Request{Message: "fever since two days"})
	require.NoError(t, err)

	assert.Equal(t, StatusErrorFallback, reply.AIStatus)
	assert.Equal(t, ErrorFallbackResponse, reply.Response)
}

func TestReplySuccess(t *testing.T) {
	gen := &fakeGenerator{text: "Rest and fluids. For emergencies, call 102 or 108."}
	svc := NewService(gen, time.Second, nil)

	reply, err := svc.Reply(context.Background(), Request{
		Message: "  headache  ",
		History: []Turn{{Role: "user", Content: "hi"}, {Role: "assistant", Content: "hello"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "OpenAI", reply.AIStatus)
	assert.Equal(t, gen.text, reply.Response)
	assert.True(t, strings.HasSuffix(gen.last.System, "Always end with: 'For emergencies, call 102 or 108.'"))
	assert.True(t, strings.HasPrefix(gen.last.Prompt, "User: hi\nAssistant: hello\nFormat your answers with:"))
	assert.True(t, strings.HasSuffix(gen.last.Prompt, "User: headache\nAssistant:"))
}

func TestBuildPromptKeepsLastTurns(t *testing.T) {
	history := make([]Turn, 0, 12)
	for i := 0; i < 12; i++ {
		history = append(history, Turn{Type: "user", Content: fmt.Sprintf("m%d", i)})
	}

	prompt := BuildPrompt(history, "now")
	assert.NotContains(t, prompt, "User: m3\n")
	assert.Contains(t, prompt, "User: m4\n")
	assert.Contains(t, prompt, "User: m11\n")
	assert.Equal(t, 9, strings.Count(prompt, "User: "))
}

func TestBuildPromptWithoutHistory(t *testing.T) {
	prompt := BuildPrompt(nil, "cough")
	assert.True(t, strings.HasPrefix(prompt, answerFormat))
}

func TestTurnSpeakerPrefersType(t *testing.T) {
	assert.Equal(t, "User", Turn{Type: "user", Role: "assistant"}.speaker())
	assert.Equal(t, "Assistant", Turn{Type: "bot", Role: "user"}.speaker())
	assert.Equal(t, "User", Turn{Role: "user"}.speaker())
	assert.Equal(t, "Assistant", Turn{}.speaker())
}

func TestRequestTurns(t *testing.T) {
	var req Request
	require.NoError(t, json.Unmarshal([]byte(`{"message":"x","chatHistory":[{"type":"user","content":"a"}]}`), &req))
	require.Len(t, req.Turns(), 1)
	assert.Equal(t, "a", req.Turns()[0].Content)

	require.NoError(t, json.Unmarshal([]byte(`{"message":"x","history":[],"chatHistory":[{"type":"user","content":"a"}]}`), &req))
	assert.Empty(t, req.Turns())
}

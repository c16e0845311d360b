package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeminiSessionResendsHistory(t *testing.T) {
	var (
		mu     sync.Mutex
		bodies []geminiRequest
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/test-model:generateContent", r.URL.Path)
		assert.Equal(t, "k", r.URL.Query().Get("key"))

		var body geminiRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		mu.Lock()
		bodies = append(bodies, body)
		mu.Unlock()

		last := body.Contents[len(body.Contents)-1].Parts[0].Text
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"re: ` + last + `"}]}}]}`))
	}))
	defer srv.Close()

	g, err := NewGemini("k", WithBaseURL(srv.URL), WithModel("test-model"))
	require.NoError(t, err)

	s := g.StartChat()
	out, err := s.SendMessage(context.Background(), "one")
	require.NoError(t, err)
	assert.Equal(t, "re: one", out)

	out, err = s.SendMessage(context.Background(), "two")
	require.NoError(t, err)
	assert.Equal(t, "re: two", out)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, bodies, 2)
	assert.Len(t, bodies[0].Contents, 1)
	require.Len(t, bodies[1].Contents, 3)
	assert.Equal(t, "user", bodies[1].Contents[0].Role)
	assert.Equal(t, "model", bodies[1].Contents[1].Role)
	assert.Equal(t, "re: one", bodies[1].Contents[1].Parts[0].Text)

	assert.Len(t, bodies[0].SafetySettings, 4)
	assert.Equal(t, 1000, bodies[0].GenerationConfig.MaxOutputTokens)
	assert.InDelta(t, 0.7, bodies[0].GenerationConfig.Temperature, 1e-9)
}

func TestGeminiErrorsDoNotGrowHistory(t *testing.T) {
	var (
		mu      sync.Mutex
		fail    = true
		lastLen int
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body geminiRequest
		_ = json.NewDecoder(r.Body).Decode(&body)
		mu.Lock()
		defer mu.Unlock()
		lastLen = len(body.Contents)
		if fail {
			http.Error(w, `{"error":"quota"}`, http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"ok"}]}}]}`))
	}))
	defer srv.Close()

	g, err := NewGemini("secret", WithBaseURL(srv.URL))
	require.NoError(t, err)
	s := g.StartChat()

	_, err = s.SendMessage(context.Background(), "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
	assert.NotContains(t, err.Error(), "secret")

	mu.Lock()
	fail = false
	mu.Unlock()
	_, err = s.SendMessage(context.Background(), "hi")
	require.NoError(t, err)
	mu.Lock()
	assert.Equal(t, 1, lastLen)
	mu.Unlock()
}

func TestExtractGeminiText(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr string
	}{
		{name: "joins parts", raw: `{"candidates":[{"content":{"parts":[{"text":"a"},{"text":"b"}]}}]}`, want: "ab"},
		{name: "blocked prompt", raw: `{"promptFeedback":{"blockReason":"SAFETY"}}`, wantErr: "SAFETY"},
		{name: "no candidates", raw: `{"candidates":[]}`, wantErr: "no candidates"},
		{name: "safety stop", raw: `{"candidates":[{"content":{},"finishReason":"SAFETY"}]}`, wantErr: "finish reason SAFETY"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var res geminiResponse
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &res))
			got, err := extractGeminiText(res)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOpenAISession(t *testing.T) {
	var (
		mu  sync.Mutex
		got openaiRequest
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer k", r.Header.Get("Authorization"))
		mu.Lock()
		defer mu.Unlock()
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"hello"}}]}`))
	}))
	defer srv.Close()

	o, err := NewOpenAI("k", WithBaseURL(srv.URL))
	require.NoError(t, err)
	out, err := o.StartChat().SendMessage(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, "hello", out)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, DefaultOpenAIModel, got.Model)
	assert.Equal(t, []openaiMessage{{Role: "user", Content: "hi"}}, got.Messages)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	_, err := FromEnv(GeminiProvider)
	assert.ErrorIs(t, err, ErrMissingAPIKey)

	t.Setenv("GEMINI_API_KEY", "k")
	t.Setenv("GEMINI_MODEL", "gemini-custom")
	m, err := FromEnv(GeminiProvider)
	require.NoError(t, err)
	assert.Equal(t, "gemini-custom", m.(*Gemini).opts.model)

	t.Setenv("OPENAI_API_KEY", "")
	_, err = FromEnv(OpenAIProvider)
	assert.ErrorIs(t, err, ErrMissingAPIKey)

	_, err = FromEnv(Provider("claude"))
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "unsupported model"))
}

func TestEmptyMessageRejected(t *testing.T) {
	g, err := NewGemini("k", WithBaseURL("http://127.0.0.1:0"))
	require.NoError(t, err)
	_, err = g.StartChat().SendMessage(context.Background(), "  ")
	assert.Error(t, err)
}

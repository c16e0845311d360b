package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"owusu1946/portfolio-chat/config"
)

const (
	geminiBaseURL      = "https://generativelanguage.googleapis.com/v1beta"
	DefaultGeminiModel = "gemini-2.5-pro"
)

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	SafetySettings   []config.SafetySetting `json:"safetySettings"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content      geminiContent `json:"content"`
		FinishReason string        `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback *struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback,omitempty"`
}

// Gemini talks to the generateContent REST endpoint. The endpoint is
// stateless, so each session keeps its own history and resends it.
type Gemini struct {
	apiKey string
	opts   options
}

func NewGemini(apiKey string, opts ...Option) (*Gemini, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	return &Gemini{
		apiKey: apiKey,
		opts:   buildOptions(geminiBaseURL, DefaultGeminiModel, opts),
	}, nil
}

func (g *Gemini) StartChat() Session {
	return &geminiSession{client: g}
}

type geminiSession struct {
	client  *Gemini
	history []geminiContent
}

func (s *geminiSession) SendMessage(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", errors.New("gemini: empty message")
	}

	userTurn := geminiContent{Role: "user", Parts: []geminiPart{{Text: text}}}
	body := geminiRequest{
		Contents:       append(append([]geminiContent{}, s.history...), userTurn),
		SafetySettings: config.SafetySettings,
		GenerationConfig: geminiGenerationConfig{
			Temperature:     config.Temperature,
			MaxOutputTokens: config.MaxOutputTokens,
		},
	}

	reply, err := s.client.generate(ctx, body)
	if err != nil {
		return "", err
	}

	// History only grows on success, so a failed turn can be resent.
	s.history = append(s.history, userTurn, geminiContent{Role: "model", Parts: []geminiPart{{Text: reply}}})
	return reply, nil
}

func (g *Gemini) generate(ctx context.Context, body geminiRequest) (string, error) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal request")
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.opts.baseURL, g.opts.model, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(jsonData))
	if err != nil {
		return "", errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.opts.httpClient.Do(req)
	if err != nil {
		// The URL carries the key; keep it out of the error.
		return "", errors.Errorf("gemini request failed: %v", unwrapURLError(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", errors.Errorf("gemini returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var res geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return "", errors.Wrap(err, "failed to decode response")
	}
	return extractGeminiText(res)
}

// Extract text from Gemini API response with proper error handling
func extractGeminiText(res geminiResponse) (string, error) {
	if res.PromptFeedback != nil && res.PromptFeedback.BlockReason != "" {
		return "", errors.Errorf("prompt blocked: %s", res.PromptFeedback.BlockReason)
	}
	if len(res.Candidates) == 0 {
		return "", errors.New("no candidates returned from Gemini")
	}

	candidate := res.Candidates[0]
	if len(candidate.Content.Parts) == 0 {
		if candidate.FinishReason != "" {
			return "", errors.Errorf("no parts in content (finish reason %s)", candidate.FinishReason)
		}
		return "", errors.New("no parts in content")
	}

	var sb strings.Builder
	for _, p := range candidate.Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String(), nil
}

func unwrapURLError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}

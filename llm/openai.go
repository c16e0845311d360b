package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"owusu1946/portfolio-chat/config"
)

const (
	openaiBaseURL      = "https://api.openai.com/v1"
	DefaultOpenAIModel = "gpt-4o-mini"
)

type openaiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openaiRequest struct {
	Model       string          `json:"model"`
	Messages    []openaiMessage `json:"messages"`
	Temperature float64         `json:"temperature"`
	MaxTokens   int             `json:"max_tokens"`
}

type openaiResponse struct {
	Choices []struct {
		Message      openaiMessage `json:"message"`
		FinishReason string        `json:"finish_reason"`
	} `json:"choices"`
}

// OpenAI speaks the chat completions API. Safety thresholds have no
// equivalent there and are not sent.
type OpenAI struct {
	apiKey string
	opts   options
}

func NewOpenAI(apiKey string, opts ...Option) (*OpenAI, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	return &OpenAI{
		apiKey: apiKey,
		opts:   buildOptions(openaiBaseURL, DefaultOpenAIModel, opts),
	}, nil
}

func (o *OpenAI) StartChat() Session {
	return &openaiSession{client: o}
}

type openaiSession struct {
	client  *OpenAI
	history []openaiMessage
}

func (s *openaiSession) SendMessage(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", errors.New("openai: empty message")
	}

	userTurn := openaiMessage{Role: "user", Content: text}
	body := openaiRequest{
		Model:       s.client.opts.model,
		Messages:    append(append([]openaiMessage{}, s.history...), userTurn),
		Temperature: config.Temperature,
		MaxTokens:   config.MaxOutputTokens,
	}

	reply, err := s.client.complete(ctx, body)
	if err != nil {
		return "", err
	}

	s.history = append(s.history, userTurn, openaiMessage{Role: "assistant", Content: reply})
	return reply, nil
}

func (o *OpenAI) complete(ctx context.Context, body openaiRequest) (string, error) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.opts.baseURL+"/chat/completions", bytes.NewReader(jsonData))
	if err != nil {
		return "", errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.opts.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "openai request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", errors.Errorf("openai returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var res openaiResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return "", errors.Wrap(err, "failed to decode response")
	}
	if len(res.Choices) == 0 {
		return "", errors.New("no choices returned from OpenAI")
	}
	return res.Choices[0].Message.Content, nil
}

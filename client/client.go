// Package client is a small consumer of the chat API. It keeps the
// visible conversation and posts the whole history on every user turn.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/lithammer/shortuuid/v4"
	"github.com/pkg/errors"

	"owusu1946/portfolio-chat/types"
)

var (
	// ErrBusy is returned when a turn is submitted while another is loading.
	ErrBusy = errors.New("a message is already being answered")
	// ErrStopped is returned for a reply that arrived after Stop.
	ErrStopped = errors.New("stopped")
	// ErrNothingToReload is returned by Reload without a user message.
	ErrNothingToReload = errors.New("no user message to reload")
)

type Conversation struct {
	endpoint   string
	httpClient *http.Client
	onToolCall func(types.Message)

	mu       sync.Mutex
	messages []types.Message
	loading  bool
	err      error
	// turn identifies the request in flight so Stop can drop its reply.
	turn uint64
}

type Option func(*Conversation)

func WithHTTPClient(c *http.Client) Option {
	return func(conv *Conversation) { conv.httpClient = c }
}

// OnToolCall registers a callback run for every reply that carries a tool.
func OnToolCall(fn func(types.Message)) Option {
	return func(conv *Conversation) { conv.onToolCall = fn }
}

// New returns an empty conversation posting to endpoint, for example
// http://localhost:8080/api/chat.
func New(endpoint string, opts ...Option) *Conversation {
	c := &Conversation{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Send appends a user message and waits for the assistant reply.
func (c *Conversation) Send(ctx context.Context, text string) (types.Message, error) {
	if strings.TrimSpace(text) == "" {
		return types.Message{}, errors.Wrap(types.ErrInvalidMessage, "empty message")
	}

	c.mu.Lock()
	if c.loading {
		c.mu.Unlock()
		return types.Message{}, ErrBusy
	}
	c.messages = append(c.messages, types.Message{
		ID:      shortuuid.New(),
		Role:    types.RoleUser,
		Content: text,
	})
	turn, history := c.beginLocked()
	c.mu.Unlock()

	return c.submit(ctx, turn, history)
}

// Reload drops a trailing assistant reply and asks again for the last user
// message.
func (c *Conversation) Reload(ctx context.Context) (types.Message, error) {
	c.mu.Lock()
	if c.loading {
		c.mu.Unlock()
		return types.Message{}, ErrBusy
	}
	n := len(c.messages)
	if n > 0 && c.messages[n-1].Role == types.RoleAssistant {
		c.messages = c.messages[:n-1]
		n--
	}
	if n == 0 {
		c.mu.Unlock()
		return types.Message{}, ErrNothingToReload
	}
	turn, history := c.beginLocked()
	c.mu.Unlock()

	return c.submit(ctx, turn, history)
}

// Stop clears the loading state. The server keeps working on the request;
// its reply is discarded when it arrives.
func (c *Conversation) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loading {
		c.loading = false
		c.turn++
	}
}

// Messages returns a copy of the conversation so far.
func (c *Conversation) Messages() []types.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]types.Message, len(c.messages))
	copy(out, c.messages)
	return out
}

func (c *Conversation) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Err returns the error of the last turn, if any.
func (c *Conversation) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// beginLocked marks a turn as loading and snapshots the history to post.
// c.mu must be held.
func (c *Conversation) beginLocked() (uint64, []types.Message) {
	c.loading = true
	c.err = nil
	c.turn++
	history := make([]types.Message, len(c.messages))
	copy(history, c.messages)
	return c.turn, history
}

func (c *Conversation) submit(ctx context.Context, turn uint64, history []types.Message) (types.Message, error) {
	resp, err := c.post(ctx, history)

	c.mu.Lock()
	if turn != c.turn {
		c.mu.Unlock()
		return types.Message{}, ErrStopped
	}
	c.loading = false
	if err != nil {
		c.err = err
		c.mu.Unlock()
		return types.Message{}, err
	}
	reply := types.Message{
		ID:      shortuuid.New(),
		Role:    types.RoleAssistant,
		Content: resp.Content,
	}
	if resp.ToolUsed {
		reply.ToolName = resp.ToolName
		reply.ToolResult = resp.ToolResult
	}
	c.messages = append(c.messages, reply)
	c.mu.Unlock()

	if reply.ToolName != "" && c.onToolCall != nil {
		c.onToolCall(reply)
	}
	return reply, nil
}

func (c *Conversation) post(ctx context.Context, history []types.Message) (types.ChatResponse, error) {
	payload, err := json.Marshal(types.ChatRequest{Messages: history})
	if err != nil {
		return types.ChatResponse{}, errors.Wrap(err, "failed to encode request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return types.ChatResponse{}, errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return types.ChatResponse{}, errors.Wrap(err, "chat request failed")
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return types.ChatResponse{}, errors.Wrap(err, "failed to read response")
	}

	if res.StatusCode != http.StatusOK {
		var envelope types.ErrorResponse
		if json.Unmarshal(body, &envelope) == nil && envelope.Error != "" {
			return types.ChatResponse{}, errors.Errorf("chat request failed with status %d: %s", res.StatusCode, envelope.Error)
		}
		return types.ChatResponse{}, errors.Errorf("chat request failed with status %d", res.StatusCode)
	}

	var out types.ChatResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return types.ChatResponse{}, errors.Wrap(err, "failed to decode response")
	}
	return out, nil
}

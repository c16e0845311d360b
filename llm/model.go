package llm

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

// ErrMissingAPIKey is returned before any network call when the provider
// credential is not configured.
var ErrMissingAPIKey = errors.New("missing API key")

// Model starts hosted chat sessions. Generation and safety settings are
// fixed when the Model is built.
type Model interface {
	StartChat() Session
}

// Session is one provider-side conversation. SendMessage appends the text
// as a user turn, waits for the reply and appends it as well.
type Session interface {
	SendMessage(ctx context.Context, text string) (string, error)
}

type options struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

// Option configures a provider client.
type Option func(*options)

// WithBaseURL points the client at another endpoint, e.g. a test server.
func WithBaseURL(u string) Option {
	return func(o *options) {
		if u != "" {
			o.baseURL = u
		}
	}
}

// WithModel overrides the provider model name.
func WithModel(m string) Option {
	return func(o *options) {
		if m != "" {
			o.model = m
		}
	}
}

// WithHTTPClient replaces the default client.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		if c != nil {
			o.httpClient = c
		}
	}
}

func buildOptions(baseURL, model string, opts []Option) options {
	o := options{
		baseURL: baseURL,
		model:   model,
		// Add timeout to prevent hanging
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

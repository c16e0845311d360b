package llm

import (
	"os"

	"github.com/pkg/errors"
)

type Provider string

const (
	OpenAIProvider Provider = "openai"
	GeminiProvider Provider = "gemini"
)

// APIKeyEnv names the environment variable holding the provider key.
func (p Provider) APIKeyEnv() string {
	if p == OpenAIProvider {
		return "OPENAI_API_KEY"
	}
	return "GEMINI_API_KEY"
}

// ModelEnv names the environment variable overriding the model name.
func (p Provider) ModelEnv() string {
	if p == OpenAIProvider {
		return "OPENAI_MODEL"
	}
	return "GEMINI_MODEL"
}

// FromEnv builds a Model for the provider, reading its key and model name
// from the environment at call time. It fails with ErrMissingAPIKey before
// anything is sent when the key is unset.
func FromEnv(provider Provider, opts ...Option) (Model, error) {
	opts = append([]Option{WithModel(os.Getenv(provider.ModelEnv()))}, opts...)
	apiKey := os.Getenv(provider.APIKeyEnv())

	switch provider {
	case OpenAIProvider:
		m, err := NewOpenAI(apiKey, opts...)
		if err != nil {
			return nil, err
		}
		return m, nil
	case GeminiProvider:
		m, err := NewGemini(apiKey, opts...)
		if err != nil {
			return nil, err
		}
		return m, nil
	default:
		return nil, errors.Errorf("unsupported model: %s (supported: %s, %s)", provider, OpenAIProvider, GeminiProvider)
	}
}

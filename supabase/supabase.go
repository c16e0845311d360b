package supabase

import (
	"github.com/pkg/errors"
	"github.com/supabase-community/supabase-go"
)

// Init connects the analytics sink. Analytics is optional, so unlike the
// chat credential a failure here is returned rather than fatal.
func Init(apiURL, apiKey string) (*supabase.Client, error) {
	if apiURL == "" || apiKey == "" {
		return nil, errors.New("SUPABASE_URL or SUPABASE_KEY is missing")
	}

	client, err := supabase.NewClient(apiURL, apiKey, &supabase.ClientOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Supabase client")
	}
	return client, nil
}

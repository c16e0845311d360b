package types

import (
	"encoding/json"
	"fmt"
)

// ErrorMessage extracts a best-effort message from any failure value:
// strings as-is, errors by message, anything else JSON-encoded.
func ErrorMessage(v any) string {
	switch e := v.(type) {
	case nil:
		return "Unknown error"
	case string:
		return e
	case error:
		return e.Error()
	}

	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

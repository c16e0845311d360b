package types

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// ErrInvalidMessage is returned for request bodies that do not describe a
// usable conversation.
var ErrInvalidMessage = errors.New("invalid message")

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAssistant
}

// UnmarshalJSON rejects any role outside the closed set.
func (r *Role) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.Wrap(ErrInvalidMessage, "role must be a string")
	}
	role := Role(s)
	if !role.Valid() {
		return errors.Wrapf(ErrInvalidMessage, "unknown role %q", s)
	}
	*r = role
	return nil
}

type Message struct {
	ID         string `json:"id,omitempty"`
	Role       Role   `json:"role"`
	Content    string `json:"content"`
	ToolName   string `json:"toolName,omitempty"`
	ToolResult string `json:"toolResult,omitempty"`
}

type ChatRequest struct {
	Messages []Message `json:"messages"`
}

// Validate checks that there is a history and every message has a known
// role. A trailing assistant or blank message is still a valid turn; it
// just never selects a tool.
func (r ChatRequest) Validate() error {
	if len(r.Messages) == 0 {
		return errors.Wrap(ErrInvalidMessage, "messages must not be empty")
	}
	for i, m := range r.Messages {
		if !m.Role.Valid() {
			return errors.Wrapf(ErrInvalidMessage, "message %d has no role", i)
		}
	}
	return nil
}

// ChatResponse is the single JSON object returned for every answered turn.
// All fields are always serialized.
type ChatResponse struct {
	Content    string `json:"content"`
	ToolUsed   bool   `json:"toolUsed"`
	ToolName   string `json:"toolName"`
	ToolResult string `json:"toolResult"`
}

// Normalize enforces toolUsed == (toolName != "" && toolResult != "").
// A half-populated tool is cleared rather than reported.
func (r ChatResponse) Normalize() ChatResponse {
	if r.ToolName != "" && r.ToolResult != "" {
		r.ToolUsed = true
		return r
	}
	r.ToolUsed = false
	r.ToolName = ""
	r.ToolResult = ""
	return r
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type ToolsResponse struct {
	Tools []string `json:"tools"`
}

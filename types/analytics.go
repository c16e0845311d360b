package types

import "time"

// TurnActivity is one answered chat turn as seen by the analytics sink.
// It never carries message text.
type TurnActivity struct {
	RequestID      string    `json:"request_id"`
	ActivityType   string    `json:"activity_type"`
	ToolName       string    `json:"tool_name,omitempty"`
	MessageLength  int       `json:"message_length"`
	ReplayedTurns  int       `json:"replayed_turns"`
	ResponseLength int       `json:"response_length"`
	Degraded       bool      `json:"degraded"`
	LatencyMs      int64     `json:"latency_ms"`
	CreatedAt      time.Time `json:"created_at"`
}

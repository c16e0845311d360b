package config

import "time"

// MaxDuration is the wall-clock budget for one chat request. Nothing is
// retried once it runs out.
const MaxDuration = 30 * time.Second

// MaxBodyBytes caps the size of an incoming chat request body.
const MaxBodyBytes = 1 << 20

// Generation settings passed once when a hosted chat session is created.
const (
	MaxOutputTokens = 1000
	Temperature     = 0.7
)

type SafetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

// Safety thresholds, one per harm category.
var SafetySettings = []SafetySetting{
	{Category: "HARM_CATEGORY_HARASSMENT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
	{Category: "HARM_CATEGORY_HATE_SPEECH", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
	{Category: "HARM_CATEGORY_SEXUALLY_EXPLICIT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
	{Category: "HARM_CATEGORY_DANGEROUS_CONTENT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
}

// Activity types recorded by the analytics sink
const (
	ActivityToolResponse  = "tool_response"
	ActivityReplyResponse = "reply_response"
)

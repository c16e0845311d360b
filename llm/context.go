package llm

// EstimateTokens gives a rough size: ~4 characters per token.
func EstimateTokens(text string) int {
	return len(text) / 4
}

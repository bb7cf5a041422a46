package prompts

// charsPerToken is the average number of characters per token.
// This is a rough heuristic — real tokenizers vary, but 4 chars/token
// is a well-known approximation for English text and works well enough
// for context budgeting.
const charsPerToken = 4

// EstimateTokens returns a rough token count for a string.
func EstimateTokens(s string) int {
	if len(s) == 0 {
		return 0
	}
	return (len(s) + charsPerToken - 1) / charsPerToken // round up
}

// EstimateTokens returns the estimated fixed context cost of sending this
// template downstream, before placeholder substitution. Accounts for each
// message's text plus per-message overhead (role tokens, framing).
func (t Template) EstimateTokens() int {
	total := 0
	for _, m := range t.Messages {
		total += 4 // per-message overhead
		total += EstimateTokens(m.Text)
	}
	return total
}

package llm

import (
	"context"
	"strings"

	llmport "github.com/amirhossein-jamali/gold-assistant/internal/domain/port/llm"
)

// goldKeywords mark a prompt as a gold investment question
var goldKeywords = []string{
	"gold",
	"digital gold",
	"invest in gold",
	"buy gold",
	"gold investment",
	"is gold safe",
	"should i buy gold",
}

const (
	goldFacts = "Gold is traditionally considered a hedge against inflation and currency depreciation. " +
		"It tends to preserve value over long periods, though short-term price movements can be volatile."

	purchaseNudge = "If you'd like, I can help you invest in digital gold through the Simplify Money flow. " +
		"A small test purchase (e.g., ₹10) is a great way to see how it works. Would you like to proceed?"

	offTopicGuidance = "I couldn't detect that your question is about gold investment. " +
		"If you want to learn about gold investments, try asking 'Should I invest in gold?' or 'How to buy digital gold?'"
)

// CannedClient answers offline from fixed text. It needs no API key
type CannedClient struct{}

// NewCannedClient creates a canned completion client
func NewCannedClient() *CannedClient {
	return &CannedClient{}
}

// Complete returns gold facts plus a purchase nudge for gold questions,
// and guidance text for anything else. The instruction is ignored
func (c *CannedClient) Complete(ctx context.Context, req llmport.CompletionRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !IsAboutGold(req.Prompt) {
		return offTopicGuidance, nil
	}
	return goldFacts + "\n\n" + purchaseNudge, nil
}

// Close is a no-op
func (c *CannedClient) Close() error {
	return nil
}

// IsAboutGold reports whether text mentions any gold keyword, case-insensitively
func IsAboutGold(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range goldKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

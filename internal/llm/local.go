package llm

import (
	"context"
	"fmt"
	"strings"
)

// LocalProvider is the deterministic fallback used when no hosted
// provider is configured. It echoes a canned summary derived from the
// prompt so downstream formatting can still be exercised.
type LocalProvider struct{}

func NewLocalProvider() *LocalProvider {
	return &LocalProvider{}
}

func (l *LocalProvider) Chat(_ context.Context, messages []Message) (string, error) {
	if len(messages) == 0 {
		return "", fmt.Errorf("no messages provided")
	}
	last := messages[len(messages)-1].Content
	first := last
	if idx := strings.IndexByte(first, '\n'); idx >= 0 {
		first = first[:idx]
	}
	return "[local] " + strings.TrimSpace(first), nil
}

func (l *LocalProvider) Name() string { return "local" }

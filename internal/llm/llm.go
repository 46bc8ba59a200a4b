// Package llm provides the optional narrative generator used to attach
// an executive summary to generated policies. Document composition never
// depends on it; when no API key is configured a deterministic local
// provider stands in.
package llm

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/compligenie/compligenie/internal/common"
)

// Message is one chat turn.
type Message struct {
	Role    string
	Content string
}

// Provider answers chat requests.
type Provider interface {
	Chat(ctx context.Context, messages []Message) (string, error)
	Name() string
}

// NewProvider selects the provider from the environment. OPENAI_API_KEY
// enables the hosted provider; otherwise the local fallback is used.
func NewProvider() Provider {
	logger := common.Logger()
	apiKey := strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	if apiKey == "" {
		logger.Warn("llm: OPENAI_API_KEY not set; using local provider")
		return NewLocalProvider()
	}
	var timeout time.Duration
	if raw := strings.TrimSpace(os.Getenv("OPENAI_HTTP_TIMEOUT")); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			logger.Warn("llm: invalid OPENAI_HTTP_TIMEOUT, using default", "value", raw, "error", err)
		} else {
			timeout = parsed
		}
	}
	endpoint := strings.TrimSpace(os.Getenv("OPENAI_ENDPOINT"))
	logger.Info("llm: OpenAI provider selected")
	return NewOpenAIProvider(apiKey, endpoint, timeout)
}

// NarrativePrompt builds the chat messages asking for an executive
// summary of a generated policy.
func NarrativePrompt(companyName, industry string, sectionTitles []string) []Message {
	var b strings.Builder
	b.WriteString("Write a short executive summary, at most three paragraphs, of an AI usage policy for ")
	b.WriteString(companyName)
	b.WriteString(", a company in the ")
	b.WriteString(industry)
	b.WriteString(" industry. The policy covers these sections:\n")
	for _, title := range sectionTitles {
		b.WriteString("- ")
		b.WriteString(title)
		b.WriteString("\n")
	}
	return []Message{
		{Role: "system", Content: "You summarize corporate compliance documents in plain business language. Do not invent obligations that are not in the section list."},
		{Role: "user", Content: b.String()},
	}
}

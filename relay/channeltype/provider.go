package channeltype

import "strings"

// Provider selects which upstream API surface council queries are sent to.
type Provider string

const (
	// OpenRouter is the aggregation gateway; model identifiers are sent with their vendor prefix.
	OpenRouter Provider = "openrouter"
	// OpenAI talks to an OpenAI-compatible endpoint directly; vendor prefixes are stripped.
	OpenAI Provider = "openai"
)

// NormalizeProvider trims and lower-cases the configured provider. Anything other than
// "openai" falls back to OpenRouter, which is also the default when unset.
func NormalizeProvider(raw string) Provider {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(OpenAI):
		return OpenAI
	default:
		return OpenRouter
	}
}

func (p Provider) String() string {
	return string(p)
}

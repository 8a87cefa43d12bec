package channeltype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeProvider(t *testing.T) {
	cases := map[string]Provider{
		"":           OpenRouter,
		"openrouter": OpenRouter,
		"OpenRouter": OpenRouter,
		"openai":     OpenAI,
		"  OPENAI  ": OpenAI,
		"anthropic":  OpenRouter,
		"open-ai":    OpenRouter,
	}

	for input, want := range cases {
		assert.Equal(t, want, NormalizeProvider(input), "input %q", input)
	}
}

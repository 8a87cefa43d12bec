package relay

import (
	"github.com/llm-council/council-relay/relay/adaptor"
	"github.com/llm-council/council-relay/relay/adaptor/openai"
	"github.com/llm-council/council-relay/relay/adaptor/openrouter"
	"github.com/llm-council/council-relay/relay/channeltype"
)

// GetAdaptor returns the adaptor for provider. Unknown providers use OpenRouter,
// matching channeltype.NormalizeProvider.
func GetAdaptor(provider channeltype.Provider) adaptor.Adaptor {
	switch provider {
	case channeltype.OpenAI:
		return &openai.Adaptor{}
	default:
		return &openrouter.Adaptor{}
	}
}

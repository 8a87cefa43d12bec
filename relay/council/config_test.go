package council

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llm-council/council-relay/relay/adaptor/openai"
	"github.com/llm-council/council-relay/relay/adaptor/openrouter"
	"github.com/llm-council/council-relay/relay/channeltype"
)

func clearCouncilEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"LLM_PROVIDER", "OPENROUTER_API_KEY", "OPENAI_API_KEY", "OPENAI_API_URL",
		"COUNCIL_MODELS", "CHAIRMAN_MODEL", "COUNCIL_QUERY_TIMEOUT", "COUNCIL_MAX_CONCURRENCY",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearCouncilEnv(t)

	cfg := LoadConfig()
	assert.Equal(t, channeltype.OpenRouter, cfg.Provider)
	assert.Equal(t, openrouter.APIURL, cfg.APIURL)
	assert.Empty(t, cfg.APIKey)
	assert.Equal(t, DefaultCouncilModels(), cfg.CouncilModels)
	assert.Len(t, cfg.CouncilModels, 4)
	assert.Equal(t, DefaultChairmanModel, cfg.ChairmanModel)
	assert.Equal(t, 120*time.Second, cfg.QueryTimeout)
	assert.Zero(t, cfg.MaxConcurrency)
}

func TestLoadConfigCouncilModelsOverride(t *testing.T) {
	clearCouncilEnv(t)
	t.Setenv("COUNCIL_MODELS", "a/b, ,c/d")

	assert.Equal(t, []string{"a/b", "c/d"}, LoadConfig().CouncilModels)
}

func TestLoadConfigCouncilModelsBlankOverride(t *testing.T) {
	clearCouncilEnv(t)
	t.Setenv("COUNCIL_MODELS", " , ,")

	assert.Equal(t, DefaultCouncilModels(), LoadConfig().CouncilModels)
}

func TestLoadConfigOpenAI(t *testing.T) {
	clearCouncilEnv(t)
	t.Setenv("LLM_PROVIDER", "OpenAI")
	t.Setenv("OPENAI_API_KEY", "sk-openai")
	t.Setenv("OPENROUTER_API_KEY", "sk-router")

	cfg := LoadConfig()
	assert.Equal(t, channeltype.OpenAI, cfg.Provider)
	assert.Equal(t, "sk-openai", cfg.APIKey)
	assert.Equal(t, openai.DefaultAPIURL, cfg.APIURL)

	t.Setenv("OPENAI_API_URL", "http://gateway.local/v1/chat/completions")
	assert.Equal(t, "http://gateway.local/v1/chat/completions", LoadConfig().APIURL)
}

func TestLoadConfigOpenRouterIgnoresOpenAIURL(t *testing.T) {
	clearCouncilEnv(t)
	t.Setenv("LLM_PROVIDER", "something-else")
	t.Setenv("OPENROUTER_API_KEY", "sk-router")
	t.Setenv("OPENAI_API_URL", "http://gateway.local/v1/chat/completions")

	cfg := LoadConfig()
	assert.Equal(t, channeltype.OpenRouter, cfg.Provider)
	assert.Equal(t, "sk-router", cfg.APIKey)
	assert.Equal(t, openrouter.APIURL, cfg.APIURL)
}

func TestLoadConfigChairmanAndLimits(t *testing.T) {
	clearCouncilEnv(t)
	t.Setenv("CHAIRMAN_MODEL", "  anthropic/claude-opus-4  ")
	t.Setenv("COUNCIL_QUERY_TIMEOUT", "15")
	t.Setenv("COUNCIL_MAX_CONCURRENCY", "2")

	cfg := LoadConfig()
	assert.Equal(t, "anthropic/claude-opus-4", cfg.ChairmanModel)
	assert.Equal(t, 15*time.Second, cfg.QueryTimeout)
	assert.Equal(t, 2, cfg.MaxConcurrency)
}

func TestDefaultCouncilModelsIsACopy(t *testing.T) {
	models := DefaultCouncilModels()
	models[0] = "mutated"
	assert.NotEqual(t, "mutated", DefaultCouncilModels()[0])
}

func TestPublicHidesAPIKey(t *testing.T) {
	cfg := Config{APIKey: "sk-secret"}.withDefaults()

	pub := cfg.Public()
	require.True(t, pub.APIKeyConfigured)
	assert.Equal(t, "openrouter", pub.Provider)
	assert.Equal(t, 120, pub.QueryTimeoutSec)
	assert.NotContains(t, []string{pub.Provider, pub.APIURL, pub.ChairmanModel}, "sk-secret")

	assert.False(t, Config{}.withDefaults().Public().APIKeyConfigured)
}

package council

import (
	"strings"
	"time"

	"github.com/llm-council/council-relay/common/env"
	"github.com/llm-council/council-relay/relay/adaptor/openai"
	"github.com/llm-council/council-relay/relay/adaptor/openrouter"
	"github.com/llm-council/council-relay/relay/channeltype"
)

const (
	// DefaultChairmanModel synthesizes the council's answers when CHAIRMAN_MODEL is unset.
	DefaultChairmanModel = "google/gemini-3-pro-preview"
	// DefaultQueryTimeout bounds one single-model query.
	DefaultQueryTimeout = 120 * time.Second
)

// defaultCouncilModels is returned by DefaultCouncilModels; callers never see the backing array.
var defaultCouncilModels = []string{
	"openai/gpt-5.1",
	"google/gemini-3-pro-preview",
	"anthropic/claude-sonnet-4.5",
	"x-ai/grok-4",
}

// DefaultCouncilModels returns a copy of the built-in council.
func DefaultCouncilModels() []string {
	return append([]string(nil), defaultCouncilModels...)
}

// Config is the council snapshot resolved once at process start.
// It is passed by value and treated as read-only afterwards.
type Config struct {
	Provider channeltype.Provider
	// APIKey is the credential of the active provider only; empty means queries fail without a network call.
	APIKey string
	// APIURL is the chat completions endpoint of the active provider.
	APIURL        string
	CouncilModels []string
	ChairmanModel string
	QueryTimeout  time.Duration
	// MaxConcurrency caps in-flight queries per fan-out; 0 leaves it unbounded.
	MaxConcurrency int
}

// LoadConfig resolves the council configuration from the process environment.
// Identifier syntax is not validated; malformed identifiers surface as query failures.
func LoadConfig() Config {
	provider := channeltype.NormalizeProvider(env.String("LLM_PROVIDER", string(channeltype.OpenRouter)))

	cfg := Config{
		Provider:       provider,
		CouncilModels:  ParseModels(env.String("COUNCIL_MODELS", "")),
		ChairmanModel:  env.String("CHAIRMAN_MODEL", DefaultChairmanModel),
		QueryTimeout:   time.Duration(env.Int("COUNCIL_QUERY_TIMEOUT", int(DefaultQueryTimeout/time.Second))) * time.Second,
		MaxConcurrency: env.Int("COUNCIL_MAX_CONCURRENCY", 0),
	}

	switch provider {
	case channeltype.OpenAI:
		cfg.APIKey = env.String("OPENAI_API_KEY", "")
		cfg.APIURL = env.String("OPENAI_API_URL", openai.DefaultAPIURL)
	default:
		cfg.APIKey = env.String("OPENROUTER_API_KEY", "")
		cfg.APIURL = openrouter.APIURL
	}

	return cfg.withDefaults()
}

// withDefaults fills zero values so hand-built configs behave like loaded ones.
func (c Config) withDefaults() Config {
	if c.Provider == "" {
		c.Provider = channeltype.OpenRouter
	}
	if c.APIURL == "" {
		switch c.Provider {
		case channeltype.OpenAI:
			c.APIURL = openai.DefaultAPIURL
		default:
			c.APIURL = openrouter.APIURL
		}
	}
	if len(c.CouncilModels) == 0 {
		c.CouncilModels = DefaultCouncilModels()
	} else {
		c.CouncilModels = append([]string(nil), c.CouncilModels...)
	}
	if strings.TrimSpace(c.ChairmanModel) == "" {
		c.ChairmanModel = DefaultChairmanModel
	}
	if c.QueryTimeout <= 0 {
		c.QueryTimeout = DefaultQueryTimeout
	}
	if c.MaxConcurrency < 0 {
		c.MaxConcurrency = 0
	}
	return c
}

// ParseModels splits a comma-separated override, trimming entries and dropping blanks.
// An override that yields nothing falls back to the built-in council.
func ParseModels(raw string) []string {
	models := env.SplitList(raw)
	if len(models) == 0 {
		return DefaultCouncilModels()
	}
	return models
}

// Models returns a copy of the council list.
func (c Config) Models() []string {
	return append([]string(nil), c.CouncilModels...)
}

// PublicConfig is the view of Config that is safe to show to API clients.
type PublicConfig struct {
	Provider         string   `json:"provider"`
	APIURL           string   `json:"api_url"`
	CouncilModels    []string `json:"council_models"`
	ChairmanModel    string   `json:"chairman_model"`
	APIKeyConfigured bool     `json:"api_key_configured"`
	QueryTimeoutSec  int      `json:"query_timeout_seconds"`
	MaxConcurrency   int      `json:"max_concurrency"`
}

// Public drops the credential, keeping only whether one is configured.
func (c Config) Public() PublicConfig {
	return PublicConfig{
		Provider:         c.Provider.String(),
		APIURL:           c.APIURL,
		CouncilModels:    c.Models(),
		ChairmanModel:    c.ChairmanModel,
		APIKeyConfigured: c.APIKey != "",
		QueryTimeoutSec:  int(c.QueryTimeout / time.Second),
		MaxConcurrency:   c.MaxConcurrency,
	}
}

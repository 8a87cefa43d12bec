package meta

import (
	"time"

	"github.com/llm-council/council-relay/relay/channeltype"
)

// Meta carries everything an adaptor needs to send one council query upstream.
type Meta struct {
	Provider channeltype.Provider
	// BaseURL is the full chat completions endpoint resolved for the provider
	BaseURL string
	APIKey  string
	// OriginModelName is the council identifier as configured, e.g. "openai/gpt-4o"
	OriginModelName string
	// ActualModelName is the name sent upstream after the adaptor rewrote it
	ActualModelName string
	StartTime       time.Time
}

// New returns the metadata for one query. ActualModelName starts equal to the origin name;
// adaptors rewrite it in Init.
func New(provider channeltype.Provider, baseURL, apiKey, modelID string) *Meta {
	return &Meta{
		Provider:        provider,
		BaseURL:         baseURL,
		APIKey:          apiKey,
		OriginModelName: modelID,
		ActualModelName: modelID,
		StartTime:       time.Now(),
	}
}

// HasAPIKey reports whether a credential is configured for the provider.
func (m *Meta) HasAPIKey() bool {
	return m.APIKey != ""
}

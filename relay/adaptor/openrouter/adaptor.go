package openrouter

import (
	"net/http"

	"github.com/llm-council/council-relay/relay/adaptor"
	"github.com/llm-council/council-relay/relay/meta"
)

// APIURL is the fixed OpenRouter chat completions endpoint.
const APIURL = "https://openrouter.ai/api/v1/chat/completions"

// Adaptor represents the OpenRouter adapter implementation.
type Adaptor struct{}

var _ adaptor.Adaptor = (*Adaptor)(nil)

// Init leaves the model name untouched; OpenRouter expects the vendor namespace.
func (a *Adaptor) Init(meta *meta.Meta) {
	meta.ActualModelName = meta.OriginModelName
}

// GetRequestURL returns the configured endpoint, falling back to APIURL.
func (a *Adaptor) GetRequestURL(meta *meta.Meta) (string, error) {
	if meta.BaseURL == "" {
		return APIURL, nil
	}
	return meta.BaseURL, nil
}

// SetupRequestHeader configures the bearer token OpenRouter authenticates with.
func (a *Adaptor) SetupRequestHeader(req *http.Request, meta *meta.Meta) error {
	adaptor.SetupCommonRequestHeader(req, meta)
	return nil
}

func (a *Adaptor) GetChannelName() string {
	return "openrouter"
}

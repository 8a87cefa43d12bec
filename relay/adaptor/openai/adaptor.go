package openai

import (
	"net/http"
	"strings"

	"github.com/Laisky/errors/v2"

	"github.com/llm-council/council-relay/relay/adaptor"
	"github.com/llm-council/council-relay/relay/meta"
)

// DefaultAPIURL is the chat completions endpoint used when OPENAI_API_URL is unset.
const DefaultAPIURL = "https://api.openai.com/v1/chat/completions"

// Adaptor calls an OpenAI-compatible endpoint directly.
type Adaptor struct{}

var _ adaptor.Adaptor = (*Adaptor)(nil)

// Init strips the vendor namespace, since direct endpoints name models without it.
func (a *Adaptor) Init(meta *meta.Meta) {
	meta.ActualModelName = StripVendorPrefix(meta.OriginModelName)
}

// StripVendorPrefix drops everything up to and including the first "/".
// "openai/gpt-4o" becomes "gpt-4o"; identifiers without a "/" are returned unchanged.
func StripVendorPrefix(modelID string) string {
	if _, name, found := strings.Cut(modelID, "/"); found {
		return name
	}
	return modelID
}

func (a *Adaptor) GetRequestURL(meta *meta.Meta) (string, error) {
	if meta.BaseURL == "" {
		return "", errors.New("openai endpoint is empty")
	}
	return meta.BaseURL, nil
}

func (a *Adaptor) SetupRequestHeader(req *http.Request, meta *meta.Meta) error {
	adaptor.SetupCommonRequestHeader(req, meta)
	return nil
}

func (a *Adaptor) GetChannelName() string {
	return "openai"
}

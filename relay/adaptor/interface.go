package adaptor

import (
	"net/http"

	"github.com/llm-council/council-relay/relay/meta"
)

// Adaptor translates a council query into one provider's HTTP surface.
type Adaptor interface {
	// Init rewrites meta for the provider, e.g. the upstream model name.
	Init(meta *meta.Meta)
	GetRequestURL(meta *meta.Meta) (string, error)
	SetupRequestHeader(req *http.Request, meta *meta.Meta) error
	GetChannelName() string
}

package council

import (
	"net/http"
	"time"

	"github.com/llm-council/council-relay/common/client"
	"github.com/llm-council/council-relay/relay"
	"github.com/llm-council/council-relay/relay/adaptor"
)

// maxResponseBytes caps how much of an upstream body is read.
const maxResponseBytes = 10 << 20

// Client queries the council described by its Config. It is safe for concurrent use.
type Client struct {
	cfg        Config
	httpClient *http.Client
	adaptor    adaptor.Adaptor
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the shared outbound client, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout overrides the per-query timeout of the config.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.cfg.QueryTimeout = timeout
		}
	}
}

// NewClient returns a client bound to cfg. Zero fields of cfg take their defaults.
func NewClient(cfg Config, opts ...Option) *Client {
	c := &Client{
		cfg:        cfg.withDefaults(),
		httpClient: client.HTTPClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = client.New("")
	}
	c.adaptor = relay.GetAdaptor(c.cfg.Provider)
	return c
}

// Config returns a copy of the snapshot the client was built with.
func (c *Client) Config() Config {
	cfg := c.cfg
	cfg.CouncilModels = c.cfg.Models()
	return cfg
}

package client

import (
	"net/http"
	"net/url"
	"time"

	"github.com/Laisky/zap"

	"github.com/llm-council/council-relay/common/config"
	"github.com/llm-council/council-relay/common/logger"
)

// HTTPClient is shared by every outbound provider request. Per-request deadlines come from the request
// context, so the client itself carries no overall timeout.
var HTTPClient *http.Client

// Init builds HTTPClient, routing through RELAY_PROXY when configured.
func Init() {
	HTTPClient = New(config.RelayProxy)
}

// New returns a pooled client, optionally routed through proxy.
func New(proxy string) *http.Client {
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: time.Second,
	}
	if proxy != "" {
		proxyURL, err := url.Parse(proxy)
		if err != nil {
			logger.Logger.Fatal("failed to parse relay proxy", zap.String("proxy", proxy), zap.Error(err))
		}
		logger.Logger.Info("using relay proxy", zap.String("proxy", proxyURL.Redacted()))
		transport.Proxy = http.ProxyURL(proxyURL)
	}

	return &http.Client{
		Transport: transport,
		// each query is exactly one request; a 3xx is reported as the upstream status
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

package config

import (
	"strings"

	"github.com/llm-council/council-relay/common/env"
)

var (
	// SystemName is reported by the status endpoint and used as the CLI banner.
	SystemName = env.String("SYSTEM_NAME", "LLM Council")

	// ServerPort overrides the --port flag when running inside container or PaaS environments.
	ServerPort = strings.TrimSpace(env.String("PORT", ""))
	// GinMode allows forcing Gin into release mode (or other modes) without recompiling.
	GinMode = strings.TrimSpace(env.String("GIN_MODE", ""))

	// DebugEnabled toggles verbose structured logging when DEBUG=true.
	DebugEnabled = env.Bool("DEBUG", false)

	// ShutdownTimeoutSec specifies the graceful shutdown timeout (seconds) for the HTTP server.
	ShutdownTimeoutSec = env.Int("SHUTDOWN_TIMEOUT", 30)

	// EnablePrometheusMetrics exposes the /metrics endpoint for Prometheus scrapers when true.
	EnablePrometheusMetrics = env.Bool("ENABLE_PROMETHEUS_METRICS", true)

	// EnableGzip compresses JSON API responses.
	EnableGzip = env.Bool("ENABLE_GZIP", true)

	// CORSAllowedOrigins lists the origins allowed to call the HTTP API. "*" allows any origin.
	CORSAllowedOrigins = func() []string {
		origins := env.List("CORS_ALLOWED_ORIGINS")
		if len(origins) == 0 {
			return []string{"*"}
		}
		return origins
	}()

	// OnlyOneLogFile merges all rotated logs into a single file when true.
	OnlyOneLogFile = env.Bool("ONLY_ONE_LOG_FILE", false)

	// LogPushAPI defines the webhook endpoint for escalated log alerts.
	LogPushAPI = env.String("LOG_PUSH_API", "")
	// LogPushType labels outbound log alerts so downstream processors can route them.
	LogPushType = env.String("LOG_PUSH_TYPE", "")
	// LogPushToken authenticates outbound log alert requests.
	LogPushToken = env.String("LOG_PUSH_TOKEN", "")

	// RelayProxy provides an HTTP proxy for outbound requests to upstream providers.
	RelayProxy = env.String("RELAY_PROXY", "")

	// ApproximateTokenEnabled estimates prompt tokens from text length instead of loading tiktoken encoders.
	ApproximateTokenEnabled = env.Bool("APPROXIMATE_TOKEN", false)
)

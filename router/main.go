package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/llm-council/council-relay/common/config"
	"github.com/llm-council/council-relay/common/helper"
	"github.com/llm-council/council-relay/relay/council"
)

// SetRouter mounts every route of the council service on server.
func SetRouter(server *gin.Engine, cc *council.Client) {
	server.Use(cors.New(corsConfig(config.CORSAllowedOrigins)))
	if config.EnableGzip {
		server.Use(gzip.Gzip(gzip.DefaultCompression))
	}

	SetApiRouter(server, cc)
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", helper.RequestIdKey}
	cfg.ExposeHeaders = []string{helper.RequestIdKey}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	cfg.AllowOrigins = origins
	return cfg
}

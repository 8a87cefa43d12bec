package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/llm-council/council-relay/common"
	"github.com/llm-council/council-relay/common/config"
	"github.com/llm-council/council-relay/common/graceful"
	"github.com/llm-council/council-relay/relay/council"
)

func GetStatus(cc *council.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg := cc.Config()
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "",
			"data": gin.H{
				"version":            common.Version,
				"start_time":         common.StartTime,
				"system_name":        config.SystemName,
				"provider":           cfg.Provider.String(),
				"council_size":       len(cfg.CouncilModels),
				"api_key_configured": cfg.APIKey != "",
				"draining":           graceful.IsDraining(),
			},
		})
	}
}

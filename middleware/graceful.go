package middleware

import (
	"net/http"

	"github.com/Laisky/errors/v2"
	"github.com/gin-gonic/gin"

	"github.com/llm-council/council-relay/common/graceful"
)

// RequestTracker counts requests for the shutdown drain and turns new ones away once draining started.
func RequestTracker() gin.HandlerFunc {
	return func(c *gin.Context) {
		if graceful.IsDraining() {
			c.Header("Connection", "close")
			AbortWithError(c, http.StatusServiceUnavailable, errors.New("server is shutting down"))
			return
		}

		done := graceful.BeginRequest()
		defer done()
		c.Next()
	}
}

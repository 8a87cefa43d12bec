package middleware

import (
	gmw "github.com/Laisky/gin-middlewares/v6"
	"github.com/Laisky/zap"
	"github.com/gin-gonic/gin"

	"github.com/llm-council/council-relay/common/helper"
)

// RequestId tags every request with an id, echoed in the response header and attached
// to the request-scoped logger. A well-formed id sent by the caller is reused.
func RequestId() func(c *gin.Context) {
	return func(c *gin.Context) {
		id := c.GetHeader(helper.RequestIdKey)
		if id == "" || len(id) > 64 {
			id = helper.GenRequestID()
		}
		c.Set(helper.RequestIdKey, id)
		c.Header(helper.RequestIdKey, id)
		gmw.SetLogger(c, gmw.GetLogger(c).With(zap.String("request_id", id)))
		c.Next()
	}
}

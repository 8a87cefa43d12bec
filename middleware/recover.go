package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/Laisky/zap"
	"github.com/gin-gonic/gin"

	"github.com/llm-council/council-relay/common"
	"github.com/llm-council/council-relay/common/ctxkey"
	"github.com/llm-council/council-relay/common/helper"
	"github.com/llm-council/council-relay/common/logger"
)

func PanicRecover() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				body, _ := common.GetRequestBody(c)
				logger.Logger.Error("panic detected",
					zap.Any("panic", err),
					zap.String("stacktrace", string(debug.Stack())),
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path),
					zap.Strings("models", c.GetStringSlice(ctxkey.RequestModels)),
					zap.String("request_body", helper.Snippet(body)))
				c.JSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"error": gin.H{
						"message": helper.MessageWithRequestId(fmt.Sprintf("panic detected: %v", err), c.GetString(helper.RequestIdKey)),
						"type":    "council_panic",
					},
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

package router

import (
	"github.com/gin-gonic/gin"

	"github.com/llm-council/council-relay/controller"
	"github.com/llm-council/council-relay/middleware"
	"github.com/llm-council/council-relay/relay/council"
)

func SetApiRouter(router *gin.Engine, cc *council.Client) {
	apiRouter := router.Group("/api")
	apiRouter.Use(middleware.RequestTracker())
	{
		apiRouter.GET("/status", controller.GetStatus(cc))

		councilRoute := apiRouter.Group("/council")
		{
			councilRoute.GET("/config", controller.GetCouncilConfig(cc))
			councilRoute.POST("/query", controller.QueryCouncil(cc))
			councilRoute.POST("/chairman", controller.QueryChairman(cc))
		}
	}
}

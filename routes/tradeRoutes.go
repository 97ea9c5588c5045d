package routes

import (
	"github.com/gin-gonic/gin"

	"trade-journal/controllers"
	"trade-journal/models"
)

func TradeRoutes(api *gin.RouterGroup, hub *models.Hub) {
	api.POST("/trades", controllers.CreateTradeHandler(hub))
	api.GET("/trades", controllers.GetTradesHandler)
	api.GET("/trades/:id", controllers.GetTradeHandler)
	api.PUT("/trades/:id", controllers.UpdateTradeHandler(hub))
	api.DELETE("/trades/:id", controllers.DeleteTradeHandler(hub))
	api.POST("/trades/:id/analyze", controllers.AnalyzeTradeHandler(hub))
}

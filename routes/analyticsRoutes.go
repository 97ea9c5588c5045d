package routes

import (
	"github.com/gin-gonic/gin"

	"trade-journal/controllers"
)

func AnalyticsRoutes(api *gin.RouterGroup) {
	api.GET("/stats", controllers.GetStatsHandler)
	api.GET("/calendar", controllers.GetCalendarHandler)
}

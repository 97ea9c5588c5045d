package routes

import (
	"github.com/gin-gonic/gin"

	"trade-journal/controllers"
)

func ScreenshotRoutes(api *gin.RouterGroup) {
	api.POST("/trades/:id/screenshots", controllers.UploadScreenshotHandler)
	api.GET("/trades/:id/screenshots", controllers.ListScreenshotsHandler)
}

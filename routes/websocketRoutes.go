package routes

import (
	"github.com/gin-gonic/gin"

	"trade-journal/models"
	"trade-journal/websocket"
)

func WebSocketRoutes(r *gin.Engine, hub *models.Hub) {
	r.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(hub, c.Writer, c.Request)
	})
}

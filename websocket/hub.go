package websocket

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"trade-journal/models"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The SPA is served from a different origin than the API.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWs upgrades the connection and joins the client to the hub. The hub
// pushes journal events (trade_created, trade_updated, trade_deleted,
// trade_analyzed); nothing is read from the client.
func ServeWs(h *models.Hub, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("ws upgrade failed")
		return
	}

	client := &models.Client{Conn: conn, Send: make(chan models.WSMessage, 256)}
	h.Register <- client

	go client.WritePump()
	go client.ReadPump(h)

	client.Send <- models.WSMessage{Event: "welcome", Data: "connected to journal"}
}

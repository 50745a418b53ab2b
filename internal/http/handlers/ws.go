package handlers

import (
	"net/http"

	"fair_rps/internal/logger"
	"fair_rps/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// WS upgrades the request and plays one round on the connection.
func (h *Handler) WS(hub *ws.Hub) gin.HandlerFunc {
	allowedOrigin := h.AllowedOrigin
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			if allowedOrigin == "" {
				return true
			}
			return r.Header.Get("Origin") == allowedOrigin
		},
	}

	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			logger.Warn("ws upgrade error", "error", err)
			return
		}
		ws.Serve(hub, conn)
	}
}

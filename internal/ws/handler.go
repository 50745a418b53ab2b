package ws

import (
	"github.com/gorilla/websocket"
)

// Serve starts a round on an upgraded connection. It returns immediately;
// the round runs on its own goroutines.
func Serve(hub *Hub, conn *websocket.Conn) *Client {
	client := NewClient(conn, hub, NewSession(hub.Rounds))
	go client.Run()
	return client
}

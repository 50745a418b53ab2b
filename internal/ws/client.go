package ws

import (
	"encoding/json"
	"sync"
	"time"

	"fair_rps/internal/logger"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 30 * time.Second
	pingPeriod = 25 * time.Second

	sendBuffer = 16
)

type Client struct {
	Conn *websocket.Conn
	Send chan []byte
	Hub  *Hub
	Done chan struct{}

	session   *Session
	closeOnce sync.Once
}

func NewClient(conn *websocket.Conn, hub *Hub, session *Session) *Client {
	return &Client{
		Conn:    conn,
		Send:    make(chan []byte, sendBuffer),
		Hub:     hub,
		Done:    make(chan struct{}),
		session: session,
	}
}

// ID is the id of the round played on this connection.
func (c *Client) ID() string {
	return c.session.ID
}

// Run commits to a move, sends the commitment and serves the connection until
// the round ends or the peer leaves.
func (c *Client) Run() {
	go c.writePump()

	c.Hub.Register(c)
	defer c.Hub.Unregister(c)

	commit, err := c.session.Start()
	if err != nil {
		logger.Error("ws commit failed", "round_id", c.ID(), "error", err)
		c.queue(errorMessage("internal error"))
		c.closeSend()
		c.drain()
		return
	}
	c.queue(commit)

	c.readPump()
}

//read
func (c *Client) readPump() {
	defer func() {
		c.closeSend()
		_ = c.Conn.Close()
		close(c.Done)
	}()

	c.Conn.SetReadLimit(4096)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	finished := false
	for {
		_, msg, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Debug("ws read error", "round_id", c.ID(), "error", err)
			}
			return
		}
		// round over; wait for the peer to answer the close frame
		if finished {
			continue
		}

		reply, done := c.session.Handle(msg)
		if reply != nil {
			c.queue(reply)
		}
		if done {
			finished = true
			c.closeSend()
		}
	}
}

// drain waits for the write side to finish when there is nothing to read.
func (c *Client) drain() {
	_ = c.Conn.SetReadDeadline(time.Now().Add(writeWait))
	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			break
		}
	}
	_ = c.Conn.Close()
	close(c.Done)
}

//write
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.Conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				logger.Debug("ws write error", "round_id", c.ID(), "error", err)
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// queue must only be called from the goroutine running Run.
func (c *Client) queue(v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		logger.Error("ws marshal error", "round_id", c.ID(), "error", err)
		return
	}
	select {
	case c.Send <- data:
	default:
		logger.Warn("ws send buffer full, dropping message", "round_id", c.ID())
	}
}

func (c *Client) closeSend() {
	c.closeOnce.Do(func() { close(c.Send) })
}

package ws

import (
	"sync"

	"fair_rps/internal/logger"
	"fair_rps/internal/service"

	"github.com/prometheus/client_golang/prometheus"
)

var ActiveSessions = prometheus.NewGauge(prometheus.GaugeOpts{
	Name: "rps_ws_sessions_active",
	Help: "Open websocket rounds",
})

func init() {
	prometheus.MustRegister(ActiveSessions)
}

// Hub tracks open websocket rounds so the server can close them on shutdown.
type Hub struct {
	Rounds *service.RoundService

	mu      sync.RWMutex
	clients map[string]*Client
}

func NewHub(rounds *service.RoundService) *Hub {
	return &Hub{
		Rounds:  rounds,
		clients: make(map[string]*Client),
	}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	h.clients[c.ID()] = c
	h.mu.Unlock()

	ActiveSessions.Inc()
	logger.Debug("Hub.Register", "round_id", c.ID())
}

func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	_, ok := h.clients[c.ID()]
	delete(h.clients, c.ID())
	h.mu.Unlock()

	if ok {
		ActiveSessions.Dec()
		logger.Debug("Hub.Unregister", "round_id", c.ID())
	}
}

// Count returns the number of open rounds.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// CloseAll drops every open connection. Their rounds end without disclosure.
func (h *Hub) CloseAll() {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for id, c := range h.clients {
		logger.Info("closing ws round on shutdown", "round_id", id)
		_ = c.Conn.Close()
	}
}

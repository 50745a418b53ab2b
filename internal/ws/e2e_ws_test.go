package ws

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fair_rps/internal/commitment"
	"fair_rps/internal/game"

	"github.com/gorilla/websocket"
)

func startServer(t *testing.T, hub *Hub) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		Serve(hub, conn)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	return conn
}

func waitForCount(t *testing.T, hub *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.Count() != want {
		if time.Now().After(deadline) {
			t.Fatalf("hub count = %d; want %d", hub.Count(), want)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestE2E_WS_Round(t *testing.T) {
	hub := NewHub(newTestRounds(t, 0))
	conn := dial(t, startServer(t, hub))

	var commit CommitPayload
	if err := conn.ReadJSON(&commit); err != nil {
		t.Fatalf("read commit: %v", err)
	}
	if commit.Type != MsgCommit || commit.HMAC == "" {
		t.Fatalf("unexpected commit %+v", commit)
	}
	waitForCount(t, hub, 1)

	// a bad move keeps the round open
	if err := conn.WriteJSON(ClientMessage{Type: MsgMove, Move: "lizard"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	var e ErrorPayload
	if err := conn.ReadJSON(&e); err != nil || e.Type != MsgError {
		t.Fatalf("expected error message, got %+v, %v", e, err)
	}

	if err := conn.WriteJSON(ClientMessage{Type: MsgMove, Move: "paper"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	var res ResultPayload
	if err := conn.ReadJSON(&res); err != nil {
		t.Fatalf("read result: %v", err)
	}
	if res.Type != MsgResult || res.ComputerMove != "rock" || res.Outcome != game.OutcomeWin {
		t.Fatalf("unexpected result %+v", res)
	}
	ok, err := commitment.VerifyHex(commitment.HMACSHA256, res.Key, res.ComputerMove, commit.HMAC)
	if err != nil || !ok {
		t.Fatalf("verify = %v, %v", ok, err)
	}

	_, _, err = conn.ReadMessage()
	if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
		t.Fatalf("expected normal close after result, got %v", err)
	}
	waitForCount(t, hub, 0)
}

func TestE2E_WS_ExitDisclosesNothing(t *testing.T) {
	hub := NewHub(newTestRounds(t, 2))
	conn := dial(t, startServer(t, hub))

	var commit CommitPayload
	if err := conn.ReadJSON(&commit); err != nil {
		t.Fatalf("read commit: %v", err)
	}
	if err := conn.WriteJSON(ClientMessage{Type: MsgExit}); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, data, err := conn.ReadMessage()
	if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
		t.Fatalf("expected close, got %q, %v", data, err)
	}
	waitForCount(t, hub, 0)
}

func TestE2E_WS_CloseAll(t *testing.T) {
	hub := NewHub(newTestRounds(t, 0))
	srv := startServer(t, hub)
	a, b := dial(t, srv), dial(t, srv)
	for _, c := range []*websocket.Conn{a, b} {
		var commit CommitPayload
		if err := c.ReadJSON(&commit); err != nil {
			t.Fatalf("read commit: %v", err)
		}
	}
	waitForCount(t, hub, 2)

	hub.CloseAll()
	waitForCount(t, hub, 0)
	if _, _, err := a.ReadMessage(); err == nil {
		t.Fatal("connection still open after CloseAll")
	}
}

package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"fair_rps/internal/commitment"
	"fair_rps/internal/config"
	"fair_rps/internal/logger"
	"fair_rps/internal/ws"

	"github.com/gorilla/websocket"
)

// ws_smoke plays one round against a running server and checks that the
// disclosed key reproduces the HMAC sent before the move.
func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("load config: %v", err)
	}
	logger.Init(cfg.LogLevel, cfg.LogJSON)

	// use 127.0.0.1 to prefer IPv4 (avoid resolving to [::1])
	addr := flag.String("addr", "127.0.0.1:"+cfg.AppPort, "server host:port")
	move := flag.String("move", "", "move to play (default: first move offered)")
	flag.Parse()

	url := fmt.Sprintf("ws://%s/ws", *addr)
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		logger.Fatal("dial", "url", url, "error", err)
	}
	defer conn.Close()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	var commit ws.CommitPayload
	if err := conn.ReadJSON(&commit); err != nil {
		logger.Fatal("read commit", "error", err)
	}
	if commit.Type != ws.MsgCommit || len(commit.Moves) == 0 {
		logger.Fatal("unexpected first message", "type", commit.Type)
	}
	logger.Info("commit received", "round_id", commit.RoundID, "hmac", commit.HMAC, "moves", commit.Moves)

	play := *move
	if play == "" {
		play = commit.Moves[0]
	}
	if err := conn.WriteJSON(ws.ClientMessage{Type: ws.MsgMove, Move: play}); err != nil {
		logger.Fatal("write move", "error", err)
	}

	var res ws.ResultPayload
	if err := conn.ReadJSON(&res); err != nil {
		logger.Fatal("read result", "error", err)
	}
	if res.Type != ws.MsgResult {
		logger.Fatal("unexpected reply", "type", res.Type)
	}

	ok, err := commitment.VerifyHex(commitment.HMACSHA256, res.Key, res.ComputerMove, commit.HMAC)
	if err != nil || !ok {
		logger.Error("HMAC mismatch", "key", res.Key, "move", res.ComputerMove, "hmac", commit.HMAC, "error", err)
		os.Exit(1)
	}

	logger.Info("smoke test finished",
		"player", res.PlayerMove, "computer", res.ComputerMove, "outcome", res.Outcome, "verified", ok)
}

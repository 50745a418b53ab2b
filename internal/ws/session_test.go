package ws

import (
	"bytes"
	"encoding/json"
	"testing"

	"fair_rps/internal/commitment"
	"fair_rps/internal/game"
	"fair_rps/internal/match"
	"fair_rps/internal/repository"
	"fair_rps/internal/service"
)

type fixedSource int

func (s fixedSource) IntN(int) int { return int(s) }

func newTestRounds(t *testing.T, computer int) *service.RoundService {
	t.Helper()
	moves, err := game.Preset("classic")
	if err != nil {
		t.Fatalf("preset: %v", err)
	}
	return service.NewRoundServiceWithConfig(moves, repository.NewMemoryRoundRepository(), service.RoundServiceConfig{
		Keys: func() ([]byte, error) {
			return bytes.Repeat([]byte{0x33}, commitment.MinKeyBytes), nil
		},
		NewSource: func() match.IndexSource { return fixedSource(computer) },
	})
}

func TestSessionRound(t *testing.T) {
	s := NewSession(newTestRounds(t, 1))

	commit, err := s.Start()
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if commit.Type != MsgCommit || len(commit.HMAC) != 64 || len(commit.Moves) != 3 {
		t.Fatalf("unexpected commit %+v", commit)
	}
	if commit.RoundID != s.ID {
		t.Fatalf("round id %s; want %s", commit.RoundID, s.ID)
	}

	reply, done := s.Handle([]byte(`{"type":"help"}`))
	rules, ok := reply.(RulesPayload)
	if !ok || done || rules.Size() != 3 {
		t.Fatalf("help reply = %#v, done=%v", reply, done)
	}

	for _, raw := range []string{`{"type":"move","move":"spock"}`, `{"type":"move","index":9}`, `{"type":"move"}`} {
		reply, done = s.Handle([]byte(raw))
		if e, ok := reply.(ErrorPayload); !ok || done || e.Type != MsgError {
			t.Fatalf("%s: reply = %#v, done=%v", raw, reply, done)
		}
	}

	reply, done = s.Handle([]byte(`{"type":"move","index":3}`))
	res, ok := reply.(ResultPayload)
	if !ok || !done {
		t.Fatalf("move reply = %#v, done=%v", reply, done)
	}
	if res.PlayerMove != "scissors" || res.ComputerMove != "paper" || res.Outcome != game.OutcomeWin {
		t.Fatalf("unexpected result %+v", res)
	}
	if res.HMAC != commit.HMAC {
		t.Fatal("result HMAC differs from the committed one")
	}
	valid, err := commitment.VerifyHex(commitment.HMACSHA256, res.Key, res.ComputerMove, commit.HMAC)
	if err != nil || !valid {
		t.Fatalf("verify = %v, %v", valid, err)
	}
}

func TestSessionExitAndUnknown(t *testing.T) {
	s := NewSession(newTestRounds(t, 0))
	if _, err := s.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}

	if reply, done := s.Handle([]byte(`not json`)); done || reply.(ErrorPayload).Message != "malformed message" {
		t.Fatalf("malformed: %#v %v", reply, done)
	}
	if reply, done := s.Handle([]byte(`{"type":"dance"}`)); done || reply.(ErrorPayload).Type != MsgError {
		t.Fatalf("unknown type: %#v %v", reply, done)
	}
	if reply, done := s.Handle([]byte(`{"type":"ping"}`)); done || reply.(PongPayload).Type != MsgPong {
		t.Fatalf("ping: %#v %v", reply, done)
	}
	if reply, done := s.Handle([]byte(`{"type":"exit"}`)); !done || reply != nil {
		t.Fatalf("exit: %#v %v", reply, done)
	}
}

func TestRulesPayloadJSON(t *testing.T) {
	moves, _ := game.NewMoveSet([]string{"rock", "paper", "scissors"})
	data, err := json.Marshal(RulesPayload{Type: MsgRules, OutcomeMatrix: game.BuildTable(moves)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"type":"rules","moves":["rock","paper","scissors"],"cells":[["draw","lose","win"],["win","draw","lose"],["lose","win","draw"]]}`
	if string(data) != want {
		t.Fatalf("rules json = %s", data)
	}
}

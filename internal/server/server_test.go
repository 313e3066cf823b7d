package server

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
)

func dialTestServer(t *testing.T) *websocket.Conn {
	t.Helper()

	srv := NewServer("", 50*time.Millisecond, 1, 1, log.New(io.Discard))
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	t.Cleanup(func() { _ = srv.Stop() })

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dialing %s: %v", url, err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func request(t *testing.T, conn *websocket.Conn, data AdviseData) Message {
	t.Helper()

	msg, err := NewMessage(MessageAdvise, data)
	if err != nil {
		t.Fatalf("building request: %v", err)
	}
	if err := conn.WriteJSON(msg); err != nil {
		t.Fatalf("writing request: %v", err)
	}

	var reply Message
	if err := conn.ReadJSON(&reply); err != nil {
		t.Fatalf("reading reply: %v", err)
	}
	return reply
}

func TestAdviseRoundTrip(t *testing.T) {
	conn := dialTestServer(t)

	reply := request(t, conn, AdviseData{Hole: "AhAd", BudgetMs: 50})
	if reply.Type != MessageAdvice {
		t.Fatalf("reply type = %s, want %s", reply.Type, MessageAdvice)
	}

	var advice AdviceData
	if err := json.Unmarshal(reply.Data, &advice); err != nil {
		t.Fatalf("decoding advice: %v", err)
	}
	if advice.Phase != "pre-flop" {
		t.Errorf("phase = %q, want pre-flop", advice.Phase)
	}
	if advice.Trials == 0 {
		t.Error("expected at least one trial")
	}
	if advice.WinRate < 0.5 {
		t.Errorf("pocket aces win rate = %v, expected above 0.5", advice.WinRate)
	}
	if advice.Decision != "stay" {
		t.Errorf("decision = %q, want stay", advice.Decision)
	}
}

func TestAdviseWithBoard(t *testing.T) {
	conn := dialTestServer(t)

	reply := request(t, conn, AdviseData{Hole: "2c7d", Board: "AhKsQdJc", BudgetMs: 50})
	if reply.Type != MessageAdvice {
		t.Fatalf("reply type = %s, want %s", reply.Type, MessageAdvice)
	}

	var advice AdviceData
	if err := json.Unmarshal(reply.Data, &advice); err != nil {
		t.Fatalf("decoding advice: %v", err)
	}
	if advice.Phase != "pre-river" {
		t.Errorf("phase = %q, want pre-river", advice.Phase)
	}
	if advice.Decision != "fold" {
		t.Errorf("decision = %q, want fold", advice.Decision)
	}
}

func TestAdviseErrors(t *testing.T) {
	conn := dialTestServer(t)

	tests := []struct {
		name string
		data AdviseData
	}{
		{"malformed hole cards", AdviseData{Hole: "Ax"}},
		{"wrong hole count", AdviseData{Hole: "AhAdAc"}},
		{"bad board size", AdviseData{Hole: "AhAd", Board: "2c3c"}},
		{"duplicate card", AdviseData{Hole: "AhAd", Board: "Ah2c3c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply := request(t, conn, tt.data)
			if reply.Type != MessageError {
				t.Errorf("reply type = %s, want %s", reply.Type, MessageError)
			}
		})
	}
}

func TestUnknownMessageType(t *testing.T) {
	conn := dialTestServer(t)

	msg, err := NewMessage(MessageType("bogus"), struct{}{})
	if err != nil {
		t.Fatal(err)
	}
	if err := conn.WriteJSON(msg); err != nil {
		t.Fatal(err)
	}

	var reply Message
	if err := conn.ReadJSON(&reply); err != nil {
		t.Fatal(err)
	}
	if reply.Type != MessageError {
		t.Errorf("reply type = %s, want %s", reply.Type, MessageError)
	}
}

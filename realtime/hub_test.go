package realtime

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func newTestHub(t *testing.T) *httptest.Server {
	t.Helper()
	hub := NewHub()
	go hub.Run()
	srv := httptest.NewServer(http.HandlerFunc(hub.ServeWS))
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("websocket dial failed: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readEnvelope(t *testing.T, conn *websocket.Conn) Envelope {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("reading envelope: %v", err)
	}
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		t.Fatalf("decoding envelope %q: %v", data, err)
	}
	return env
}

func TestConnectSendsViewerCountThenWelcome(t *testing.T) {
	srv := newTestHub(t)
	conn := dial(t, srv)

	viewers := readEnvelope(t, conn)
	if viewers.Type != "viewers" || viewers.Count != 1 {
		t.Errorf("expected viewers count 1 first, got %+v", viewers)
	}
	if viewers.Timestamp == "" {
		t.Error("expected server-stamped timestamp")
	}

	welcome := readEnvelope(t, conn)
	if welcome.Type != "info" {
		t.Errorf("expected info welcome, got %+v", welcome)
	}
	if welcome.Message != welcomeMessage {
		t.Errorf("unexpected welcome text %q", welcome.Message)
	}
}

func TestSecondConnectionUpdatesViewerCount(t *testing.T) {
	srv := newTestHub(t)
	first := dial(t, srv)
	readEnvelope(t, first) // viewers 1
	readEnvelope(t, first) // welcome

	second := dial(t, srv)
	if env := readEnvelope(t, second); env.Type != "viewers" || env.Count != 2 {
		t.Errorf("new client: expected viewers 2, got %+v", env)
	}
	readEnvelope(t, second) // welcome, new client only

	if env := readEnvelope(t, first); env.Type != "viewers" || env.Count != 2 {
		t.Errorf("existing client: expected viewers 2, got %+v", env)
	}

	// the welcome notice goes to the new connection only
	second.Close()
	if env := readEnvelope(t, first); env.Type != "viewers" || env.Count != 1 {
		t.Errorf("after disconnect: expected viewers 1, got %+v", env)
	}
}

func TestChatRebroadcastIncludesSender(t *testing.T) {
	srv := newTestHub(t)
	sender := dial(t, srv)
	readEnvelope(t, sender)
	readEnvelope(t, sender)
	listener := dial(t, srv)
	readEnvelope(t, listener)
	readEnvelope(t, listener)
	readEnvelope(t, sender) // viewers 2

	err := sender.WriteMessage(websocket.TextMessage, []byte(`{"sender":"hawk","content":"soundcheck"}`))
	if err != nil {
		t.Fatalf("writing chat message: %v", err)
	}

	// everyone gets the rebroadcast, the sender included
	for name, conn := range map[string]*websocket.Conn{"sender": sender, "listener": listener} {
		env := readEnvelope(t, conn)
		if env.Type != "message" {
			t.Errorf("%s: expected default message type, got %+v", name, env)
		}
		if env.Sender != "hawk" || env.Content != "soundcheck" {
			t.Errorf("%s: expected tagged chat payload, got %+v", name, env)
		}
		if env.Timestamp == "" {
			t.Errorf("%s: expected server-stamped timestamp", name)
		}
	}
}

func TestChatDefaultsAnonymousSender(t *testing.T) {
	srv := newTestHub(t)
	conn := dial(t, srv)
	readEnvelope(t, conn)
	readEnvelope(t, conn)

	if err := conn.WriteMessage(websocket.TextMessage, []byte(`{"content":"who am i"}`)); err != nil {
		t.Fatalf("writing chat message: %v", err)
	}
	env := readEnvelope(t, conn)
	if env.Sender != "Anonymous" {
		t.Errorf("expected Anonymous default sender, got %+v", env)
	}
}

func TestMalformedChatDropped(t *testing.T) {
	srv := newTestHub(t)
	conn := dial(t, srv)
	readEnvelope(t, conn)
	readEnvelope(t, conn)

	if err := conn.WriteMessage(websocket.TextMessage, []byte(`{not json`)); err != nil {
		t.Fatalf("writing malformed message: %v", err)
	}
	// the bad message is dropped; a good one still comes through
	if err := conn.WriteMessage(websocket.TextMessage, []byte(`{"content":"still here"}`)); err != nil {
		t.Fatalf("writing follow-up message: %v", err)
	}
	env := readEnvelope(t, conn)
	if env.Content != "still here" {
		t.Errorf("expected the next valid message, got %+v", env)
	}
}

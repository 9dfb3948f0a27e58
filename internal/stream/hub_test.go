package stream

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

// dialTestSocket upgrades one connection through a throwaway server and
// returns both ends.
func dialTestSocket(t *testing.T) (server *websocket.Conn, client *websocket.Conn) {
	t.Helper()
	upgrader := websocket.Upgrader{}
	accepted := make(chan *websocket.Conn, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		accepted <- conn
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	select {
	case server = <-accepted:
	case <-time.After(2 * time.Second):
		t.Fatal("server side never accepted")
	}
	return server, client
}

func TestRunUpdatedDeliversEvent(t *testing.T) {
	hub := NewHub()
	server, client := dialTestSocket(t)
	cancel := hub.Subscribe("run-1", server)
	defer cancel()

	hub.RunUpdated("run-1")

	client.SetReadDeadline(time.Now().Add(2 * time.Second))
	var evt Event
	if err := client.ReadJSON(&evt); err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if evt.Type != "run_updated" || evt.RunID != "run-1" {
		t.Fatalf("event = %+v", evt)
	}
}

func TestRunUpdatedNeverBlocksOnStalledSubscriber(t *testing.T) {
	hub := NewHub()
	server, _ := dialTestSocket(t)
	cancel := hub.Subscribe("run-1", server)
	defer cancel()

	// The client never reads. Publishing far more events than the queue
	// holds must still return promptly: the subscriber is dropped, not
	// waited on.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			hub.RunUpdated("run-1")
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("RunUpdated blocked on a stalled subscriber")
	}
}

func TestUnsubscribeClosesSocket(t *testing.T) {
	hub := NewHub()
	server, client := dialTestSocket(t)
	cancel := hub.Subscribe("run-1", server)

	cancel()
	// Detaching twice is a no-op.
	cancel()

	client.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := client.ReadMessage(); err == nil {
		t.Fatal("expected the socket to be closed after unsubscribe")
	}
	// A publish after detach must not panic or deliver anywhere.
	hub.RunUpdated("run-1")
}

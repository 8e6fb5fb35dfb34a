package services

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestChangeFeedBroadcast(t *testing.T) {
	feed := NewChangeFeed(testLogger())

	// Broadcasting with no subscribers is a no-op.
	feed.Broadcast("tasks", "update")
	if n := feed.Subscribers(); n != 0 {
		t.Fatalf("Subscribers() = %d, want 0", n)
	}

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade failed: %v", err)
			return
		}
		feed.Serve(conn)
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	if resp != nil {
		resp.Body.Close()
	}
	defer conn.Close()

	// Wait for the server side to register the subscriber.
	deadline := time.Now().Add(2 * time.Second)
	for feed.Subscribers() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("subscriber never registered")
		}
		time.Sleep(10 * time.Millisecond)
	}

	feed.Broadcast("notifications", "insert")

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var event ChangeEvent
	if err := conn.ReadJSON(&event); err != nil {
		t.Fatalf("ReadJSON failed: %v", err)
	}
	if event.Table != "notifications" || event.Action != "insert" {
		t.Errorf("event = %+v, want notifications/insert", event)
	}

	// Closing the client eventually drops the subscriber.
	conn.Close()
	deadline = time.Now().Add(2 * time.Second)
	for feed.Subscribers() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("subscriber never removed after close")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestChangeFeedDropsSlowSubscriber(t *testing.T) {
	t.Parallel()

	feed := NewChangeFeed(testLogger())

	// A stalled subscriber: its queue is never drained because no pump
	// is running, so the first broadcast finds it full.
	stalled := &feedClient{send: make(chan ChangeEvent)}
	feed.mu.Lock()
	feed.clients[stalled] = struct{}{}
	feed.mu.Unlock()

	done := make(chan struct{})
	go func() {
		feed.Broadcast("tasks", "update")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Broadcast blocked on a stalled subscriber")
	}

	if n := feed.Subscribers(); n != 0 {
		t.Errorf("Subscribers() = %d after dropping stalled client, want 0", n)
	}
	if _, open := <-stalled.send; open {
		t.Error("stalled client's queue was not closed")
	}
}

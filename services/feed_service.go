package services

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// ChangeEvent tells subscribers that rows in a table changed. It carries
// no row payload: clients are expected to refetch the collection.
type ChangeEvent struct {
	Table  string `json:"table"`
	Action string `json:"action"` // insert, update, delete
}

const (
	feedSendBuffer   = 16
	feedWriteTimeout = 10 * time.Second
)

// feedClient pairs a connection with its buffered outbound queue. A
// dedicated pump goroutine drains the queue, so socket writes never
// happen under the feed lock.
type feedClient struct {
	conn *websocket.Conn
	send chan ChangeEvent
}

// ChangeFeed fans mutation events out to WebSocket subscribers.
type ChangeFeed struct {
	mu      sync.Mutex
	clients map[*feedClient]struct{}
	logger  *zap.SugaredLogger
}

func NewChangeFeed(logger *zap.SugaredLogger) *ChangeFeed {
	return &ChangeFeed{
		clients: make(map[*feedClient]struct{}),
		logger:  logger,
	}
}

// Serve registers the connection and blocks reading it until the peer
// closes. Incoming frames are discarded; the feed is one-way.
func (f *ChangeFeed) Serve(conn *websocket.Conn) {
	client := &feedClient{
		conn: conn,
		send: make(chan ChangeEvent, feedSendBuffer),
	}

	f.mu.Lock()
	f.clients[client] = struct{}{}
	f.mu.Unlock()

	go f.writePump(client)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	f.drop(client)
}

// writePump drains the client's queue until it is closed, then closes
// the connection, which also unblocks the Serve read loop.
func (f *ChangeFeed) writePump(client *feedClient) {
	defer client.conn.Close()
	for event := range client.send {
		client.conn.SetWriteDeadline(time.Now().Add(feedWriteTimeout))
		if err := client.conn.WriteJSON(event); err != nil {
			f.logger.Debugw("feed write failed", "error", err)
			return
		}
	}
}

// Broadcast queues a change event for every subscriber. A subscriber
// whose queue is full is dropped rather than stalling the others.
func (f *ChangeFeed) Broadcast(table, action string) {
	event := ChangeEvent{Table: table, Action: action}

	f.mu.Lock()
	defer f.mu.Unlock()
	for client := range f.clients {
		select {
		case client.send <- event:
		default:
			f.logger.Debugw("dropping slow feed subscriber")
			delete(f.clients, client)
			close(client.send)
		}
	}
}

// Subscribers returns the current subscriber count.
func (f *ChangeFeed) Subscribers() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.clients)
}

// drop unregisters the client. Closing the send channel always happens
// under the lock, so queued Broadcast sends cannot race it.
func (f *ChangeFeed) drop(client *feedClient) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.clients[client]; ok {
		delete(f.clients, client)
		close(client.send)
	}
}

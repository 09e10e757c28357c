package main

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeTimeout = 5 * time.Second
	readTimeout  = 60 * time.Second
	readLimit    = 1 << 16
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// clientConn wraps a websocket with a buffered send queue so the tick
// loop never blocks on a slow reader.
type clientConn struct {
	ws   *websocket.Conn
	send chan []byte
}

func newClientConn(ws *websocket.Conn) *clientConn {
	return &clientConn{ws: ws, send: make(chan []byte, 64)}
}

// enqueue drops the message when the queue is full. Stale state
// snapshots are worthless, so backpressure never reaches the tick.
func (c *clientConn) enqueue(b []byte) {
	select {
	case c.send <- b:
	default:
	}
}

func (c *clientConn) close() {
	if c.send != nil {
		close(c.send)
		c.send = nil
	}
	_ = c.ws.Close()
}

func (c *clientConn) writePump() {
	defer c.ws.Close()
	for msg := range c.send {
		_ = c.ws.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := c.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}

func (c *clientConn) readPump(room *room, id string) {
	defer c.ws.Close()
	defer room.requestLeave(id)
	c.ws.SetReadLimit(readLimit)
	_ = c.ws.SetReadDeadline(time.Now().Add(readTimeout))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(readTimeout))
	})

	for {
		_, payload, err := c.ws.ReadMessage()
		if err != nil {
			return
		}
		var msg inputMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			room.metrics.incRejected()
			continue
		}
		if msg.Type != "input" {
			continue
		}
		room.onInput(id, msg)
	}
}

func handleWS(room *room) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Query().Get("player")
		if id == "" {
			http.Error(w, "missing player query", http.StatusBadRequest)
			return
		}

		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			room.log.Warnf("upgrade: %v", err)
			return
		}

		client := newClientConn(ws)
		room.requestJoin(id, client)

		go client.writePump()
		go client.readPump(room, id)
	}
}

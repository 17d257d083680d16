package server

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gorilla/websocket"
	"github.com/minaorangina/setgame/engine"
	"github.com/minaorangina/setgame/protocol"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 512

	sendBufferSize = 8
)

// wsClient plays one game over one websocket connection
type wsClient struct {
	conn *websocket.Conn
	game engine.GameEngine
	send chan protocol.OutboundMessage
	done chan struct{}
}

func newWSClient(conn *websocket.Conn, game engine.GameEngine) *wsClient {
	c := &wsClient{
		conn: conn,
		game: game,
		send: make(chan protocol.OutboundMessage, sendBufferSize),
		done: make(chan struct{}),
	}
	c.send <- game.Snapshot()
	return c
}

func (c *wsClient) readPump() {
	defer func() {
		close(c.send)
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("game %s: %v", c.game.ID(), err)
			}
			return
		}

		var out protocol.OutboundMessage
		var msg protocol.InboundMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			out = c.game.Snapshot()
			out.Command = protocol.Error
			out.Error = "could not parse message: " + err.Error()
		} else {
			out = c.game.Receive(msg)
		}

		select {
		case c.send <- out:
		case <-c.done:
			return
		}
	}
}

func (c *wsClient) writePump() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		close(c.done)
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// the reader has gone
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteJSON(msg); err != nil {
				log.Printf("game %s: %v", c.game.ID(), err)
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

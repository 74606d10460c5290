// Package realtime streams layout-construction progress to subscribed
// HTTP clients over a websocket. It is presentation only: the build
// itself runs synchronously and produces its crossword.Result before the
// hub ever sends its final message; the hub just gives an external
// observer a play-by-play of the BFS tree edges the placement engine
// traverses as it goes (see pkg/crossword.Config.OnEdge).
package realtime

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// MessageType identifies the kind of progress message sent to a client.
type MessageType string

const (
	// MsgEdge reports one BFS tree edge the placement engine just
	// traversed: an already-placed word and the word it just discovered.
	MsgEdge MessageType = "edge"
	// MsgDone reports that the build finished, successfully or not.
	MsgDone MessageType = "done"
	// MsgError reports that the build failed outright (a contract
	// violation on the input, not "no feasible layout").
	MsgError MessageType = "error"
)

// Message is the envelope sent to a subscribed client.
type Message struct {
	Type    MessageType `json:"type"`
	Payload interface{} `json:"payload"`
}

// EdgePayload mirrors one call to pkg/crossword.Config.OnEdge.
type EdgePayload struct {
	Prev string `json:"prev"`
	Next string `json:"next"`
}

// DonePayload reports the outcome of a finished build.
type DonePayload struct {
	Found bool   `json:"found"`
	Grid  string `json:"grid,omitempty"`
}

// ErrorPayload carries a human-readable build failure.
type ErrorPayload struct {
	Message string `json:"message"`
}

// Client is a single websocket subscriber to one build's progress.
type Client struct {
	BuildID string
	conn    *websocket.Conn
	Send    chan Message
}

// NewClient wraps an already-upgraded websocket connection as a
// subscriber to buildID's progress stream.
func NewClient(buildID string, conn *websocket.Conn) *Client {
	return &Client{
		BuildID: buildID,
		conn:    conn,
		Send:    make(chan Message, 32),
	}
}

// WritePump relays queued messages to the underlying connection until
// Send is closed, the connection errors, or a final (done or error)
// message has been written. Callers run it in its own goroutine per
// client, the gorilla/websocket idiom for a concurrent writer.
func (c *Client) WritePump() {
	defer c.conn.Close()
	for msg := range c.Send {
		if err := c.conn.WriteJSON(msg); err != nil {
			return
		}
		if msg.Type == MsgDone || msg.Type == MsgError {
			break
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// Hub fans out build-progress messages to every client subscribed to a
// given build ID.
type Hub struct {
	mutex      sync.RWMutex
	clients    map[string]map[*Client]bool // buildID -> subscribers
	register   chan *Client
	unregister chan *Client
}

// NewHub creates an empty Hub. Callers must run Run in a goroutine
// before registering clients.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run processes register/unregister events for as long as the process
// lives; it never returns. It owns the clients map, so all mutation goes
// through these two channels.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mutex.Lock()
			if h.clients[client.BuildID] == nil {
				h.clients[client.BuildID] = make(map[*Client]bool)
			}
			h.clients[client.BuildID][client] = true
			h.mutex.Unlock()
			log.Printf("realtime: client subscribed to build %s", client.BuildID)

		case client := <-h.unregister:
			h.mutex.Lock()
			if subs, ok := h.clients[client.BuildID]; ok {
				if _, ok := subs[client]; ok {
					delete(subs, client)
					close(client.Send)
				}
				if len(subs) == 0 {
					delete(h.clients, client.BuildID)
				}
			}
			h.mutex.Unlock()
			log.Printf("realtime: client unsubscribed from build %s", client.BuildID)
		}
	}
}

// Register subscribes client to its BuildID's progress stream.
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Unregister removes client from its BuildID's progress stream.
func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// BroadcastEdge sends an edge progress message to every subscriber of buildID.
func (h *Hub) BroadcastEdge(buildID, prev, next string) {
	h.broadcast(buildID, Message{Type: MsgEdge, Payload: EdgePayload{Prev: prev, Next: next}})
}

// BroadcastDone sends the final outcome to every subscriber of buildID.
func (h *Hub) BroadcastDone(buildID string, found bool, grid string) {
	h.broadcast(buildID, Message{Type: MsgDone, Payload: DonePayload{Found: found, Grid: grid}})
}

// BroadcastError sends a build failure to every subscriber of buildID.
func (h *Hub) BroadcastError(buildID, message string) {
	h.broadcast(buildID, Message{Type: MsgError, Payload: ErrorPayload{Message: message}})
}

func (h *Hub) broadcast(buildID string, msg Message) {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	for client := range h.clients[buildID] {
		select {
		case client.Send <- msg:
		default:
			log.Printf("realtime: dropping message for slow client on build %s", buildID)
		}
	}
}

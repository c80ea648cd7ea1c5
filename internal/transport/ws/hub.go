package ws

import (
	"encoding/json"
	"log"
	"sync"
)

// MessageType defines the type of WebSocket message
type MessageType string

// MsgConnected greets a new connection; review events use the service
// message types (certificate_uploaded, certificate_reviewed, certificate_deleted)
const MsgConnected MessageType = "connected"

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub fans review events out to class (teacher) and user (student) feeds
type Hub struct {
	classConns map[string]map[*Connection]struct{}
	userConns  map[string]map[*Connection]struct{}

	mu sync.RWMutex

	// Channels for coordination
	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *BroadcastMessage
	done       chan struct{}
}

// Connection represents a WebSocket connection on one feed
type Connection struct {
	Class  string // set for a class feed
	UserID string // set for a personal feed
	Send   chan []byte
	Hub    *Hub
}

func (h *Hub) feed(c *Connection) (map[string]map[*Connection]struct{}, string) {
	if c.Class != "" {
		return h.classConns, c.Class
	}
	return h.userConns, c.UserID
}

// BroadcastMessage is a message to broadcast
type BroadcastMessage struct {
	Class   string
	UserID  string
	Message *Message
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	h := &Hub{
		classConns: make(map[string]map[*Connection]struct{}),
		userConns:  make(map[string]map[*Connection]struct{}),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan *BroadcastMessage, 256),
		done:       make(chan struct{}),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case <-h.done:
			return

		case conn := <-h.register:
			h.mu.Lock()
			feeds, key := h.feed(conn)
			if feeds[key] == nil {
				feeds[key] = make(map[*Connection]struct{})
			}
			feeds[key][conn] = struct{}{}
			h.mu.Unlock()
			log.Printf("Feed connected: %s", describe(conn))

		case conn := <-h.unregister:
			h.mu.Lock()
			feeds, key := h.feed(conn)
			if conns, ok := feeds[key]; ok {
				if _, ok := conns[conn]; ok {
					delete(conns, conn)
					close(conn.Send)
					if len(conns) == 0 {
						delete(feeds, key)
					}
					log.Printf("Feed disconnected: %s", describe(conn))
				}
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			data, _ := json.Marshal(msg.Message)
			h.mu.RLock()
			if msg.Class != "" {
				deliver(h.classConns[msg.Class], data)
			}
			if msg.UserID != "" {
				deliver(h.userConns[msg.UserID], data)
			}
			h.mu.RUnlock()
		}
	}
}

func deliver(conns map[*Connection]struct{}, data []byte) {
	for conn := range conns {
		select {
		case conn.Send <- data:
		default:
			// Drop message if buffer full
		}
	}
}

func describe(c *Connection) string {
	if c.Class != "" {
		return "class " + c.Class
	}
	return "user " + c.UserID
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	select {
	case h.register <- conn:
	case <-h.done:
	}
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	select {
	case h.unregister <- conn:
	case <-h.done:
	}
}

// Close stops the hub loop
func (h *Hub) Close() {
	close(h.done)
}

// Connections counts open connections on a class or user feed
func (h *Hub) Connections(class, userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.classConns[class]) + len(h.userConns[userID])
}

// BroadcastToClass sends a message to the class feed (implements service.Broadcaster)
func (h *Hub) BroadcastToClass(class string, msgType string, payload interface{}) {
	h.enqueue(&BroadcastMessage{Class: class, Message: envelope(msgType, payload)})
}

// BroadcastToUser sends a message to a student's feed (implements service.Broadcaster)
func (h *Hub) BroadcastToUser(userID string, msgType string, payload interface{}) {
	h.enqueue(&BroadcastMessage{UserID: userID, Message: envelope(msgType, payload)})
}

// enqueue never blocks the caller; events are dropped when the hub lags
func (h *Hub) enqueue(msg *BroadcastMessage) {
	select {
	case h.broadcast <- msg:
	default:
		log.Printf("Review feed backlog full, dropping %s", msg.Message.Type)
	}
}

func envelope(msgType string, payload interface{}) *Message {
	data, _ := json.Marshal(payload)
	return &Message{Type: MessageType(msgType), Payload: data}
}

package realtime

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const welcomeMessage = "Welcome to Hawk Eye Live Stream"

// Envelope is a message sent to live stream clients
type Envelope struct {
	Type      string `json:"type"`
	Sender    string `json:"sender,omitempty"`
	Message   string `json:"message,omitempty"`
	Content   string `json:"content,omitempty"`
	Count     int    `json:"count,omitempty"`
	Timestamp string `json:"timestamp"`
}

// inboundChat is the shape clients are expected to send
type inboundChat struct {
	Type    string `json:"type"`
	Sender  string `json:"sender"`
	Content string `json:"content"`
}

type Client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans messages out to every open live stream connection. The client set
// is owned exclusively by the Run loop; connect, disconnect and chat events
// all go through its channels. Delivery is best-effort while the process is
// alive: no ordering, retry or persistence guarantees.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	inbound    chan []byte
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		inbound:    make(chan []byte, 256),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			h.broadcastViewerCount()
			h.sendTo(client, Envelope{
				Type:      "info",
				Message:   welcomeMessage,
				Timestamp: timestamp(),
			})
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.broadcastViewerCount()
			}
		case msg := <-h.inbound:
			var chat inboundChat
			if err := json.Unmarshal(msg, &chat); err != nil {
				log.Printf("realtime: dropping malformed message: %v", err)
				continue
			}
			if chat.Type == "" {
				chat.Type = "message"
			}
			if chat.Sender == "" {
				chat.Sender = "Anonymous"
			}
			// rebroadcast to everyone, the sender included
			h.broadcast(Envelope{
				Type:      chat.Type,
				Sender:    chat.Sender,
				Content:   chat.Content,
				Timestamp: timestamp(),
			})
		}
	}
}

// broadcastViewerCount tells every open connection how many viewers there are
func (h *Hub) broadcastViewerCount() {
	h.broadcast(Envelope{
		Type:      "viewers",
		Count:     len(h.clients),
		Timestamp: timestamp(),
	})
}

// broadcast sends an envelope to every open client; a client whose send
// buffer is full is dropped. Only called from the Run loop.
func (h *Hub) broadcast(event Envelope) {
	encoded, err := json.Marshal(event)
	if err != nil {
		log.Printf("realtime: failed to marshal event: %v", err)
		return
	}
	for client := range h.clients {
		select {
		case client.send <- encoded:
		default:
			close(client.send)
			delete(h.clients, client)
		}
	}
}

// sendTo queues an envelope for a single client
func (h *Hub) sendTo(client *Client, event Envelope) {
	encoded, err := json.Marshal(event)
	if err != nil {
		log.Printf("realtime: failed to marshal event: %v", err)
		return
	}
	select {
	case client.send <- encoded:
	default:
		close(client.send)
		delete(h.clients, client)
	}
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWS upgrades the connection and registers a client
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("realtime: websocket upgrade error: %v", err)
		return
	}
	client := &Client{conn: conn, send: make(chan []byte, 256)}
	h.register <- client

	// writer
	go func() {
		for msg := range client.send {
			if err := client.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				break
			}
		}
		client.conn.Close()
	}()

	// reader
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			break
		}
		h.inbound <- data
	}
	h.unregister <- client
}

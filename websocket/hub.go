package websocket

import (
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

type Client struct {
	UserID uuid.UUID
	Conn   *websocket.Conn
}

// TourEvent is pushed to both negotiation participants whenever a tour
// request changes: a new offer, a confirmation, a cancellation or a payment.
type TourEvent struct {
	TourRequestID uuid.UUID   `json:"tour_request_id"`
	Type          string      `json:"type"`
	Status        string      `json:"status"`
	Recipients    []uuid.UUID `json:"-"`
}

var clients = make(map[uuid.UUID]*websocket.Conn)
var clientsMu sync.RWMutex
var Register = make(chan *Client)
var Unregister = make(chan *Client)
var Broadcast = make(chan *TourEvent)

func RunHub() {
	for {
		select {
		case client := <-Register:
			log.Printf("Client registered: %s", client.UserID)
			clientsMu.Lock()
			clients[client.UserID] = client.Conn
			clientsMu.Unlock()
		case client := <-Unregister:
			log.Printf("Client unregistered: %s", client.UserID)
			clientsMu.Lock()
			if conn, ok := clients[client.UserID]; ok && conn == client.Conn {
				delete(clients, client.UserID)
			}
			clientsMu.Unlock()
		case event := <-Broadcast:
			clientsMu.RLock()
			conns := make(map[uuid.UUID]*websocket.Conn, len(event.Recipients))
			for _, recipientID := range event.Recipients {
				if conn, ok := clients[recipientID]; ok {
					conns[recipientID] = conn
				}
			}
			clientsMu.RUnlock()

			for recipientID, conn := range conns {
				if err := conn.WriteJSON(event); err != nil {
					log.Printf("Error sending tour event to client %s: %v", recipientID, err)
					conn.Close()
					clientsMu.Lock()
					delete(clients, recipientID)
					clientsMu.Unlock()
				}
			}
		}
	}
}

// Notify pushes a tour event without blocking the calling handler when the
// hub is saturated.
func Notify(event *TourEvent) {
	select {
	case Broadcast <- event:
	default:
		log.Printf("Notification hub busy, dropping event for tour request %s", event.TourRequestID)
	}
}

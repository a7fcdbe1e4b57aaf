package feed

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"ridepool/internal/models"
	"ridepool/internal/observability"
)

// Event is a listing change pushed to connected browse pages. ride_booked
// events let a page drop the ride locally instead of re-querying the store.
type Event struct {
	Type      string             `json:"type"` // ride_posted, ride_booked
	Vehicle   models.VehicleType `json:"vehicle,omitempty"`
	RideID    string             `json:"ride_id,omitempty"`
	Ride      *models.Ride       `json:"ride,omitempty"`
	Timestamp int64              `json:"timestamp"`
}

type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	mutex      sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case message := <-h.broadcast:
			h.broadcastMessage(message)
		}
	}
}

func (h *Hub) PublishRidePosted(ride *models.Ride) {
	h.publish(Event{
		Type:      "ride_posted",
		Vehicle:   ride.Vehicle,
		RideID:    ride.ID.Hex(),
		Ride:      ride,
		Timestamp: time.Now().Unix(),
	})
}

func (h *Hub) PublishRideBooked(vehicle models.VehicleType, rideID string) {
	h.publish(Event{
		Type:      "ride_booked",
		Vehicle:   vehicle,
		RideID:    rideID,
		Timestamp: time.Now().Unix(),
	})
}

func (h *Hub) publish(event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("Error marshaling feed event: %v", err)
		return
	}

	// Never block a booking on slow feed consumers.
	select {
	case h.broadcast <- data:
	default:
		log.Printf("Feed broadcast buffer full, dropping %s event", event.Type)
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.clients[client] = true
	observability.FeedClients.Set(float64(len(h.clients)))
}

func (h *Hub) unregisterClient(client *Client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
		observability.FeedClients.Set(float64(len(h.clients)))
	}
}

func (h *Hub) broadcastMessage(message []byte) {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	for client := range h.clients {
		select {
		case client.send <- message:
		default:
			// Slow client, drop the event for it.
		}
	}
}

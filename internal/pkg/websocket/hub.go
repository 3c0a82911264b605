package websocket

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"
	"github.com/yigit/studentroster/internal/app/models"
)

// broadcastBuffer bounds the events waiting for the hub loop
const broadcastBuffer = 64

// Hub maintains the set of subscribed clients and broadcasts roster events to them
type Hub struct {
	// Registered clients
	clients map[*Client]bool

	// Encoded events waiting to be fanned out
	broadcast chan []byte

	// Register requests from the clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client

	// Closed by Stop, then done is closed once Run returns
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once

	// Guards clients for readers outside the Run loop
	mu sync.RWMutex

	// Logger for Hub operations
	logger zerolog.Logger
}

// NewHub creates a new Hub instance
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, broadcastBuffer),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run handles client registrations and broadcasts until Stop is called
func (h *Hub) Run() {
	defer close(h.done)

	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case message := <-h.broadcast:
			h.broadcastMessage(message)

		case <-h.stop:
			h.closeAll()
			return
		}
	}
}

// Stop disconnects every client and waits for Run to return
func (h *Hub) Stop() {
	h.stopOnce.Do(func() { close(h.stop) })
	<-h.done
}

// Publish queues an event for every subscribed client. It never blocks; when
// the queue is full or the hub is stopped the event is dropped.
func (h *Hub) Publish(event models.Event) {
	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Error().Err(err).Str("type", string(event.Type)).Msg("Failed to marshal event for broadcast")
		return
	}

	select {
	case <-h.stop:
		h.logger.Debug().Str("type", string(event.Type)).Msg("Hub stopped, event dropped")
	case h.broadcast <- data:
	default:
		h.logger.Warn().
			Str("type", string(event.Type)).
			Int64("studentID", event.StudentID).
			Msg("Event queue full, event dropped")
	}
}

// ClientsCount returns the number of connected clients
func (h *Hub) ClientsCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// subscribe hands a client to the Run loop. It reports false once the hub is stopped.
func (h *Hub) subscribe(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

// unsubscribe hands a client back to the Run loop unless the hub is already gone
func (h *Hub) unsubscribe(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client] = true

	h.logger.Info().
		Str("addr", client.addr).
		Int("clientCount", len(h.clients)).
		Msg("Client registered")
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.removeLocked(client)
}

// removeLocked drops a client and closes its send channel. h.mu must be held.
func (h *Hub) removeLocked(client *Client) {
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	close(client.send)

	h.logger.Info().
		Str("addr", client.addr).
		Int("clientCount", len(h.clients)).
		Msg("Client unregistered")
}

// broadcastMessage fans a message out to all clients, dropping the ones whose
// send buffer is full
func (h *Hub) broadcastMessage(message []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		select {
		case client.send <- message:
		default:
			h.logger.Warn().Str("addr", client.addr).Msg("Client too slow, disconnecting")
			h.removeLocked(client)
		}
	}

	h.logger.Debug().
		Int("clientCount", len(h.clients)).
		Msg("Event broadcasted")
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		h.removeLocked(client)
	}
}

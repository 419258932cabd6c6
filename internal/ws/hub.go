package ws

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"
)

// Event represents a WebSocket message to be broadcast
type Event struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// boardEvent routes an event to a single board's room
type boardEvent struct {
	Board string
	Event Event
}

// Hub maintains the set of active clients and broadcasts messages to them
type Hub struct {
	// Registered clients by board name
	rooms map[string]map[*Client]bool

	register   chan *Client
	unregister chan *Client

	// Outbound messages to broadcast
	broadcast chan *boardEvent

	// Closed when Run returns
	done chan struct{}

	mu     sync.RWMutex
	logger zerolog.Logger
}

// NewHub creates a new Hub instance
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *boardEvent, 256),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run starts the hub's main loop and returns when ctx is done.
// This should be called as a goroutine: go hub.Run(ctx)
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			close(h.done)
			return

		case client := <-h.register:
			h.mu.Lock()
			if h.rooms[client.board] == nil {
				h.rooms[client.board] = make(map[*Client]bool)
			}
			h.rooms[client.board][client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			h.remove(client)
			h.mu.Unlock()

		case event := <-h.broadcast:
			// Marshal event to JSON once
			message, err := json.Marshal(event.Event)
			if err != nil {
				h.logger.Error().Err(err).Str("type", event.Event.Type).Msg("marshal board event")
				continue
			}

			h.mu.Lock()
			for client := range h.rooms[event.Board] {
				select {
				case client.send <- message:
				default:
					// Send buffer full: drop the slow client
					h.remove(client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// remove unregisters client and closes its send channel. Callers hold h.mu.
func (h *Hub) remove(client *Client) {
	clients, ok := h.rooms[client.board]
	if !ok {
		return
	}
	if _, exists := clients[client]; !exists {
		return
	}
	delete(clients, client)
	close(client.send)
	if len(clients) == 0 {
		delete(h.rooms, client.board)
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, clients := range h.rooms {
		for client := range clients {
			h.remove(client)
		}
	}
}

// BroadcastToBoard sends an event to every client watching board.
func (h *Hub) BroadcastToBoard(board string, event Event) {
	h.broadcast <- &boardEvent{
		Board: board,
		Event: event,
	}
}

// Publish marshals payload and broadcasts it as an event of the given type.
func (h *Hub) Publish(board, eventType string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	h.BroadcastToBoard(board, Event{Type: eventType, Payload: raw})
	return nil
}

// ClientCount returns the number of clients watching board.
func (h *Hub) ClientCount(board string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[board])
}

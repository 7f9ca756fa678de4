package server

import (
	"encoding/json"
	"sync"
)

// RoomEvent is the payload published to room subscribers.
type RoomEvent struct {
	Type       string `json:"type"`
	PlayerID   string `json:"playerId,omitempty"`
	PlayerName string `json:"playerName,omitempty"`
	Letter     string `json:"letter,omitempty"`
	Points     int    `json:"points,omitempty"`
	MaskedWord string `json:"maskedWord,omitempty"`
	HasWinner  bool   `json:"hasWinner,omitempty"`
	WinnerName string `json:"winnerName,omitempty"`
}

// Broker is an in-process pub/sub for room events, keyed by room ID.
type Broker struct {
	mu   sync.RWMutex
	subs map[string]map[chan []byte]struct{}
}

func NewBroker() *Broker {
	return &Broker{
		subs: make(map[string]map[chan []byte]struct{}),
	}
}

// Subscribe returns a channel that receives JSON-encoded events for the given room.
func (b *Broker) Subscribe(roomID string) chan []byte {
	ch := make(chan []byte, 16)
	b.mu.Lock()
	if b.subs[roomID] == nil {
		b.subs[roomID] = make(map[chan []byte]struct{})
	}
	b.subs[roomID][ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

// Unsubscribe removes a channel from the room's subscribers.
func (b *Broker) Unsubscribe(roomID string, ch chan []byte) {
	b.mu.Lock()
	delete(b.subs[roomID], ch)
	if len(b.subs[roomID]) == 0 {
		delete(b.subs, roomID)
	}
	b.mu.Unlock()
}

// Publish sends an event to all subscribers of the given room.
func (b *Broker) Publish(roomID string, event RoomEvent) {
	data, _ := json.Marshal(event)
	b.mu.RLock()
	for ch := range b.subs[roomID] {
		select {
		case ch <- data:
		default:
			// Drop if subscriber is slow.
		}
	}
	b.mu.RUnlock()
}

package hub

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/soar/ControllerMapDB/internal/gamepad"
)

const (
	fullSyncInterval = 5 * time.Second
	deltaCountSync   = 100
)

// Broadcaster listens for gamepad state changes and broadcasts them to
// the hub, sending deltas with periodic full syncs.
type Broadcaster struct {
	hub     *Hub
	changes <-chan gamepad.GamepadState

	mu        sync.Mutex
	lastState gamepad.GamepadState
	seq       int64
}

func NewBroadcaster(h *Hub, changes <-chan gamepad.GamepadState) *Broadcaster {
	return &Broadcaster{
		hub:     h,
		changes: changes,
	}
}

// Run starts the broadcaster loop. Should be run in a goroutine.
func (b *Broadcaster) Run() {
	ticker := time.NewTicker(fullSyncInterval)
	defer ticker.Stop()

	var deltaCount int64

	for {
		select {
		case state, ok := <-b.changes:
			if !ok {
				return
			}

			b.mu.Lock()
			delta := gamepad.ComputeDelta(b.lastState, state)
			b.lastState = state

			if delta.IsEmpty() {
				b.mu.Unlock()
				continue
			}

			b.seq++
			seq := b.seq
			b.mu.Unlock()

			deltaCount++

			// Send full sync periodically
			if deltaCount >= deltaCountSync {
				b.broadcast(NewFullMessage(seq, &state))
				deltaCount = 0
			} else {
				b.broadcast(NewDeltaMessage(seq, delta))
			}

		case <-ticker.C:
			b.mu.Lock()
			state := b.lastState
			connected := state.Connected
			if connected {
				b.seq++
			}
			seq := b.seq
			b.mu.Unlock()

			if connected {
				b.broadcast(NewFullMessage(seq, &state))
			}
		}
	}
}

// SendInitialState sends the current full state to a newly connected client.
func (b *Broadcaster) SendInitialState(c *Client) {
	b.mu.Lock()
	b.seq++
	msg := NewFullMessage(b.seq, &b.lastState)
	b.mu.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Error marshaling initial state: %v", err)
		return
	}
	select {
	case c.send <- data:
	default:
	}
}

// NotifyDBReloaded tells every client the mapping database was re-read.
func (b *Broadcaster) NotifyDBReloaded(entries int) {
	b.mu.Lock()
	b.seq++
	msg := NewDBReloadedMessage(b.seq, entries)
	b.mu.Unlock()

	b.broadcast(msg)
}

func (b *Broadcaster) broadcast(msg *WSMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Error marshaling %s message: %v", msg.Type, err)
		return
	}
	b.hub.Broadcast(data)
}

package hub

import (
	"time"

	"github.com/soar/ControllerMapDB/internal/gamepad"
)

// WSMessage represents a WebSocket message sent from server to client.
type WSMessage struct {
	Type      string                `json:"type"`              // "full", "delta", "db_reloaded"
	Seq       int64                 `json:"seq"`               // Sequence number for ordering
	Timestamp int64                 `json:"timestamp"`         // Unix timestamp in milliseconds
	Data      *gamepad.GamepadState `json:"data,omitempty"`    // Full gamepad state for type "full"
	Changes   *gamepad.DeltaChanges `json:"changes,omitempty"` // Delta changes for type "delta"
	Entries   int                   `json:"entries,omitempty"` // Database size for type "db_reloaded"
}

// NewFullMessage creates a "full" type message containing complete gamepad state.
func NewFullMessage(seq int64, state *gamepad.GamepadState) *WSMessage {
	return &WSMessage{
		Type:      "full",
		Seq:       seq,
		Timestamp: time.Now().UnixMilli(),
		Data:      state,
	}
}

// NewDeltaMessage creates a "delta" type message containing only changed fields.
func NewDeltaMessage(seq int64, changes *gamepad.DeltaChanges) *WSMessage {
	return &WSMessage{
		Type:      "delta",
		Seq:       seq,
		Timestamp: time.Now().UnixMilli(),
		Changes:   changes,
	}
}

// NewDBReloadedMessage announces that the mapping database was re-read.
func NewDBReloadedMessage(seq int64, entries int) *WSMessage {
	return &WSMessage{
		Type:      "db_reloaded",
		Seq:       seq,
		Timestamp: time.Now().UnixMilli(),
		Entries:   entries,
	}
}

// ClientMessage represents a message sent from the client to the server.
type ClientMessage struct {
	Type string `json:"type"` // "full_sync" requests a full state message
}

// Package messenger keeps one-shot flash messages per browser session.
package messenger

import "context"

// Type classifies a flash message.
type Type string

const (
	TypeStatus  Type = "status"
	TypeWarning Type = "warning"
	TypeError   Type = "error"
)

type Message struct {
	Type Type   `json:"type"`
	Text string `json:"text"`
}

// Store persists messages until they are popped.
type Store interface {
	Add(ctx context.Context, sessionID string, msg Message) error
	// Pop returns the queued messages in insertion order and forgets them.
	Pop(ctx context.Context, sessionID string) ([]Message, error)
}

// Status is shorthand for a status message.
func Status(text string) Message { return Message{Type: TypeStatus, Text: text} }

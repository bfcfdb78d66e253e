package models

import (
	"time"
)

// Reaction is a single (emoji, count) tally on a message, kept in the order
// the upstream reported it.
type Reaction struct {
	Emoji string
	Count int
}

// Message is a single channel message. Immutable once created upstream; this
// system only reads messages and appends new ones, never mutates or deletes.
type Message struct {
	ID        string
	Author    string
	AvatarURL string
	Content   string
	CreatedAt time.Time
	Reactions []Reaction
}

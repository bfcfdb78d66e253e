package models

// SendCommand is the ephemeral input for an outbound send. Validated by the
// dispatcher, never persisted.
type SendCommand struct {
	ChannelID string
	Content   string
	Embed     bool
	Color     string
}

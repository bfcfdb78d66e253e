package models

// Guild is a Discord guild visible to the bot's gateway session.
// Read-only from this system's perspective and never cached across requests.
type Guild struct {
	ID   string
	Name string
}

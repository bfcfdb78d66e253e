package models

// Channel is a text channel within a guild. Non-text channels (voice,
// category, announcement, threads) are filtered out before this type is built.
type Channel struct {
	ID      string
	GuildID string
	Name    string
}

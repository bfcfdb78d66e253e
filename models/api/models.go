package api

// GuildModel represents the guild data returned by the API
type GuildModel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ChannelModel represents the channel data returned by the API
type ChannelModel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ReactionModel represents a single reaction tally returned by the API
type ReactionModel struct {
	Emoji string `json:"emoji"`
	Count int    `json:"count"`
}

// MessageModel represents the message data returned by the API.
// Time is pre-formatted for display; ordering is oldest first.
type MessageModel struct {
	ID        string          `json:"id"`
	Author    string          `json:"author"`
	Avatar    string          `json:"avatar,omitempty"`
	Content   string          `json:"content"`
	Time      string          `json:"time"`
	Reactions []ReactionModel `json:"reactions,omitempty"`
}

package api

import (
	"guilddash/models"
)

// messageTimeFormat is the display format for message timestamps.
const messageTimeFormat = "2006-01-02 15:04"

// DomainGuildsToAPIGuilds converts domain Guild models to API GuildModels
func DomainGuildsToAPIGuilds(guilds []*models.Guild) []GuildModel {
	apiGuilds := make([]GuildModel, 0, len(guilds))
	for _, g := range guilds {
		apiGuilds = append(apiGuilds, GuildModel{ID: g.ID, Name: g.Name})
	}
	return apiGuilds
}

// DomainChannelsToAPIChannels converts domain Channel models to API ChannelModels
func DomainChannelsToAPIChannels(channels []*models.Channel) []ChannelModel {
	apiChannels := make([]ChannelModel, 0, len(channels))
	for _, c := range channels {
		apiChannels = append(apiChannels, ChannelModel{ID: c.ID, Name: c.Name})
	}
	return apiChannels
}

// DomainMessageToAPIMessage converts a domain Message model to an API MessageModel
func DomainMessageToAPIMessage(msg *models.Message) MessageModel {
	if msg == nil {
		return MessageModel{}
	}

	var reactions []ReactionModel
	for _, r := range msg.Reactions {
		reactions = append(reactions, ReactionModel{Emoji: r.Emoji, Count: r.Count})
	}

	return MessageModel{
		ID:        msg.ID,
		Author:    msg.Author,
		Avatar:    msg.AvatarURL,
		Content:   msg.Content,
		Time:      msg.CreatedAt.Format(messageTimeFormat),
		Reactions: reactions,
	}
}

// DomainMessagesToAPIMessages converts domain Message models to API MessageModels
func DomainMessagesToAPIMessages(msgs []*models.Message) []MessageModel {
	apiMessages := make([]MessageModel, 0, len(msgs))
	for _, m := range msgs {
		apiMessages = append(apiMessages, DomainMessageToAPIMessage(m))
	}
	return apiMessages
}

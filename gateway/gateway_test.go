package gateway

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()

	m, err := NewManager("test-token")
	require.NoError(t, err)
	return m
}

func TestManager_StartsConnecting(t *testing.T) {
	m := newTestManager(t)

	assert.Equal(t, StateConnecting, m.State())
	assert.False(t, m.IsReady())
}

func TestManager_ReadyLatch(t *testing.T) {
	m := newTestManager(t)

	m.handleReady(nil, &discordgo.Ready{User: &discordgo.User{Username: "bot", Discriminator: "0001"}})

	assert.Equal(t, StateReady, m.State())
	assert.True(t, m.IsReady())
}

func TestManager_ReadyWithoutUser(t *testing.T) {
	m := newTestManager(t)

	// Ready events without a user payload must still flip the latch
	m.handleReady(nil, &discordgo.Ready{})

	assert.True(t, m.IsReady())
}

func TestManager_DisconnectAfterReady(t *testing.T) {
	m := newTestManager(t)

	m.handleReady(nil, &discordgo.Ready{})
	m.handleDisconnect(nil, &discordgo.Disconnect{})

	assert.Equal(t, StateUnavailable, m.State())
	assert.False(t, m.IsReady(), "a dropped connection must not be treated as ready")
}

func TestManager_DisconnectBeforeReady(t *testing.T) {
	m := newTestManager(t)

	// A failed dial before the first Ready keeps the state at Connecting
	m.handleDisconnect(nil, &discordgo.Disconnect{})

	assert.Equal(t, StateConnecting, m.State())
}

func TestManager_ResumeRestoresReady(t *testing.T) {
	m := newTestManager(t)

	m.handleReady(nil, &discordgo.Ready{})
	m.handleDisconnect(nil, &discordgo.Disconnect{})
	m.handleResumed(nil, &discordgo.Resumed{})

	assert.Equal(t, StateReady, m.State())
	assert.True(t, m.IsReady())
}

func TestManager_IntentsCoverResourceGraph(t *testing.T) {
	m := newTestManager(t)

	intents := m.Session().Identify.Intents
	assert.NotZero(t, intents&discordgo.IntentsGuilds)
	assert.NotZero(t, intents&discordgo.IntentsGuildMessages)
	assert.NotZero(t, intents&discordgo.IntentsMessageContent)
	assert.NotZero(t, intents&discordgo.IntentsGuildMessageReactions)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "connecting", StateConnecting.String())
	assert.Equal(t, "ready", StateReady.String())
	assert.Equal(t, "unavailable", StateUnavailable.String())
}

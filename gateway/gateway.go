package gateway

import (
	"fmt"
	"log"
	"sync/atomic"

	"github.com/bwmarrin/discordgo"
)

// State is the connection state of the shared gateway session.
type State int32

const (
	// StateConnecting is the initial state, before the first Ready event.
	StateConnecting State = iota
	// StateReady means the gateway session is established and usable.
	StateReady
	// StateUnavailable means the connection dropped. discordgo keeps
	// reconnecting in the background; Ready/Resumed flips the state back.
	StateUnavailable
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateReady:
		return "ready"
	case StateUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// Manager owns the single process-wide Discord gateway session and exposes
// its readiness to concurrent request handlers. The state transitions at most
// from Connecting to Ready on the first Ready event; disconnects are surfaced
// as Unavailable instead of silently pretending the session is live.
type Manager struct {
	session *discordgo.Session
	state   atomic.Int32
}

// NewManager creates a gateway manager for the given bot token. The session
// is not opened yet; call Start.
func NewManager(botToken string) (*Manager, error) {
	session, err := discordgo.New("Bot " + botToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	m := &Manager{session: session}

	// Register lifecycle handlers before opening the connection
	session.AddHandler(m.handleReady)
	session.AddHandler(m.handleResumed)
	session.AddHandler(m.handleDisconnect)

	// Guilds for the community/channel graph, messages + reactions for history
	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsMessageContent |
		discordgo.IntentsGuildMessageReactions

	return m, nil
}

// Session returns the underlying discordgo session.
func (m *Manager) Session() *discordgo.Session {
	return m.session
}

// Start opens the gateway connection and begins listening for lifecycle events.
// Readiness arrives asynchronously via the Ready event; callers must consult
// IsReady before depending on the session.
func (m *Manager) Start() error {
	if err := m.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}

	log.Printf("🤖 Discord gateway connection opened, waiting for ready event")
	return nil
}

// Stop gracefully closes the gateway connection.
func (m *Manager) Stop() {
	m.state.Store(int32(StateUnavailable))
	if err := m.session.Close(); err != nil {
		log.Printf("⚠️ Failed to close Discord session: %v", err)
	}
}

// State returns the current connection state.
func (m *Manager) State() State {
	return State(m.state.Load())
}

// IsReady reports whether the gateway session is established and usable.
func (m *Manager) IsReady() bool {
	return m.State() == StateReady
}

func (m *Manager) handleReady(s *discordgo.Session, r *discordgo.Ready) {
	m.state.Store(int32(StateReady))
	if r.User != nil {
		log.Printf("✅ Bot logged in as %s#%s", r.User.Username, r.User.Discriminator)
	} else {
		log.Printf("✅ Gateway session ready")
	}
}

func (m *Manager) handleResumed(s *discordgo.Session, r *discordgo.Resumed) {
	m.state.Store(int32(StateReady))
	log.Printf("✅ Gateway session resumed")
}

func (m *Manager) handleDisconnect(s *discordgo.Session, d *discordgo.Disconnect) {
	// Only degrade a live session; a disconnect before the first Ready
	// keeps the state at Connecting.
	if m.state.CompareAndSwap(int32(StateReady), int32(StateUnavailable)) {
		log.Printf("⚠️ Gateway connection dropped - marking unavailable until resumed")
	}
}

package sessions

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/samber/mo"

	"guilddash/core"
	"guilddash/models"
)

// sessionTTL is the absolute lifetime of a login session. Possession of a
// live session is the sole authorization signal after the OAuth exchange, so
// the bound is deliberately absolute rather than sliding.
const sessionTTL = 24 * time.Hour

// SessionsService is an in-memory session store. Sessions are ephemeral by
// design - a process restart logs the owner out, nothing is persisted.
type SessionsService struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
	now      func() time.Time
}

func NewSessionsService() *SessionsService {
	return &SessionsService{
		sessions: make(map[string]*models.Session),
		now:      time.Now,
	}
}

func (s *SessionsService) CreateSession(ctx context.Context, identity models.Identity) (*models.Session, error) {
	log.Printf("📋 Starting to create session for identity: %s", identity.ID)

	if identity.ID == "" {
		return nil, fmt.Errorf("identity id cannot be empty")
	}

	now := s.now()
	session := &models.Session{
		ID:        core.NewID("sess"),
		Identity:  identity,
		CreatedAt: now,
		ExpiresAt: now.Add(sessionTTL),
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	log.Printf("📋 Completed successfully - created session %s for identity %s", session.ID, identity.ID)
	return session, nil
}

func (s *SessionsService) GetSession(ctx context.Context, sessionID string) (mo.Option[*models.Session], error) {
	if sessionID == "" {
		return mo.None[*models.Session](), fmt.Errorf("session id cannot be empty")
	}

	s.mu.RLock()
	session, ok := s.sessions[sessionID]
	s.mu.RUnlock()

	if !ok {
		return mo.None[*models.Session](), nil
	}

	if session.IsExpired(s.now()) {
		log.Printf("🗑️ Session %s expired - removing", sessionID)
		s.mu.Lock()
		delete(s.sessions, sessionID)
		s.mu.Unlock()
		return mo.None[*models.Session](), nil
	}

	return mo.Some(session), nil
}

func (s *SessionsService) DeleteSession(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return fmt.Errorf("session id cannot be empty")
	}

	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	log.Printf("🗑️ Session deleted: %s", sessionID)
	return nil
}

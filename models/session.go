package models

import (
	"time"
)

// Session is a server-side login session. Possession of the session cookie is
// the sole authorization signal after the initial OAuth exchange; sessions
// expire absolutely at ExpiresAt (no sliding renewal).
type Session struct {
	ID        string
	Identity  Identity
	CreatedAt time.Time
	ExpiresAt time.Time
}

// IsExpired reports whether the session has passed its absolute expiry.
func (s *Session) IsExpired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

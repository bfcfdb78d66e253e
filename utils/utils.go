package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DefaultAccentColor is the embed accent used when no color is supplied
// (Discord blurple).
const DefaultAccentColor = 0x5865F2

var hexColorRegex = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

// ParseAccentColor parses a "#RRGGBB" style string into a 24-bit integer.
// An empty string yields the default accent color; a malformed string is an
// error rather than a silent default, so callers can reject it as bad input.
func ParseAccentColor(color string) (int, error) {
	if strings.TrimSpace(color) == "" {
		return DefaultAccentColor, nil
	}

	if !hexColorRegex.MatchString(color) {
		return 0, fmt.Errorf("invalid color %q: expected #RRGGBB", color)
	}

	value, err := strconv.ParseInt(strings.TrimPrefix(color, "#"), 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", color, err)
	}

	return int(value), nil
}

// SignSessionID produces the cookie value for a session id:
// "<id>.<hex hmac-sha256 of id>". The signature binds the cookie to the
// server's session secret so a forged id cannot probe the session store.
func SignSessionID(sessionID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(sessionID))
	return sessionID + "." + hex.EncodeToString(mac.Sum(nil))
}

// VerifySignedSessionID validates a cookie value produced by SignSessionID
// and returns the embedded session id.
func VerifySignedSessionID(cookieValue, secret string) (string, bool) {
	idx := strings.LastIndex(cookieValue, ".")
	if idx <= 0 {
		return "", false
	}

	sessionID := cookieValue[:idx]
	if !hmac.Equal([]byte(SignSessionID(sessionID, secret)), []byte(cookieValue)) {
		return "", false
	}

	return sessionID, true
}

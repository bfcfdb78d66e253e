package core

import (
	"errors"
	"regexp"
)

// ErrNotReady signals that the gateway connection is not established yet
// (or has dropped). Handlers surface it as 503 rather than an empty list,
// so the dashboard can distinguish "no guilds" from "not connected".
var ErrNotReady = errors.New("gateway not ready")

// ErrBadRequest signals malformed or missing caller input.
var ErrBadRequest = errors.New("bad request")

// ErrInvalidChannel signals a channel id that does not resolve to a text channel.
var ErrInvalidChannel = errors.New("invalid channel")

// ErrNotFound is a sentinel error for "not found" cases
var ErrNotFound = errors.New("not found")

// IsNotFoundError checks if an error is a "not found" error
// This function handles both the ErrNotFound sentinel error and
// upstream string-based errors (the Discord API reports unknown ids
// as "Unknown Guild"/"Unknown Channel" inside the error message).
func IsNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrNotFound) {
		return true
	}
	return containsNotFound(err.Error())
}

// containsNotFound checks if an error message indicates a missing resource
func containsNotFound(errMsg string) bool {
	return len(errMsg) > 0 &&
		regexp.MustCompile(`(?i)(not found|unknown (guild|channel|message))`).MatchString(errMsg)
}

package models

// Identity is the authenticated dashboard caller, as reported by the
// Discord OAuth /users/@me endpoint.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

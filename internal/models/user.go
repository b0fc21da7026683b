package models

// User represents the authenticated account as returned by /api/users/me.
// Login is passwordless (magic link), so there is no credential material
// client-side beyond the session token.
type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

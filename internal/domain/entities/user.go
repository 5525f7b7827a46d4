package entities

import "time"

// User is an authenticated operator of the dashboard.
type User struct {
	Username string
	Name     string
	Role     string
}

// Session is a live bearer-token session for a logged-in user.
type Session struct {
	Token     string
	Username  string
	Name      string
	Role      string
	ExpiresAt time.Time
}

// Expired reports whether the session is past its expiry at now.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

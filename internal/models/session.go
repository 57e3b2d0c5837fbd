package models

// Session is the identity claim carried by the session cookie.
type Session struct {
	User string `json:"user"`
}

// IsZero reports whether the session carries no user.
func (s Session) IsZero() bool { return s.User == "" }

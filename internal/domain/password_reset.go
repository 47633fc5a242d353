package domain

import "time"

// PasswordReset is a single-use token that lets UID choose a new password.
type PasswordReset struct {
	ID        string
	UID       string
	Token     string
	ExpiresAt time.Time
	UsedAt    *time.Time
	CreatedAt time.Time
}

// Usable reports whether the token can still be redeemed at now.
func (r *PasswordReset) Usable(now time.Time) bool {
	return r != nil && r.UsedAt == nil && now.Before(r.ExpiresAt)
}

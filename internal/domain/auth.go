package domain

import "time"

// ClaimSet is the decoded payload of a verified credential.
type ClaimSet struct {
	ID        string
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Principal is the authenticated caller of a request.
type Principal struct {
	ID     string
	Claims ClaimSet
}

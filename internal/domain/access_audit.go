package domain

import "time"

// AccessDenial is an audit record of a rejected request.
type AccessDenial struct {
	ID          string
	Reason      string
	Status      int
	Method      string
	Path        string
	PrincipalID string
	RemoteIP    string
	OccurredAt  time.Time
}

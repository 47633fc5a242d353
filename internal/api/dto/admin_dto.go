package dto

import (
	"time"

	"github.com/ashtabanjan/restaurant-api/internal/domain"
)

// AccessDenialResponse is an audit row as shown to administrators.
type AccessDenialResponse struct {
	ID          string    `json:"id"`
	Reason      string    `json:"reason"`
	Status      int       `json:"status"`
	Method      string    `json:"method"`
	Path        string    `json:"path"`
	PrincipalID string    `json:"principal_id,omitempty"`
	RemoteIP    string    `json:"remote_ip"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// NewAccessDenialResponses maps audit rows.
func NewAccessDenialResponses(rows []domain.AccessDenial) []AccessDenialResponse {
	out := make([]AccessDenialResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, AccessDenialResponse(r))
	}
	return out
}

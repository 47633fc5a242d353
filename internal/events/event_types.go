package events

import (
	"time"

	"github.com/ashtabanjan/restaurant-api/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventAccessDenied    EventType = "access_denied"
	EventUserRegistered  EventType = "user_registered"
	EventPaymentRecorded EventType = "payment_recorded"
	EventPasswordReset   EventType = "password_reset_requested"
)

// Actor identifies who caused an event. UID is empty for anonymous callers.
type Actor struct {
	UID string `json:"uid,omitempty"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Subject   string      `json:"subject"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// AccessDeniedPayload payload.
type AccessDeniedPayload struct {
	Denial domain.AccessDenial `json:"denial"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// PaymentRecordedPayload payload.
type PaymentRecordedPayload struct {
	Reference     string  `json:"reference"`
	TransactionID string  `json:"transaction_id"`
	Email         string  `json:"email"`
	Amount        float64 `json:"amount"`
	ItemCount     int     `json:"item_count"`
}

// PasswordResetPayload carries the token to deliver to the account owner.
type PasswordResetPayload struct {
	Email     string    `json:"email"`
	Token     string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
}

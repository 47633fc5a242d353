package domain

import "time"

// PaymentStatus tracks order fulfilment after a successful charge.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusDelivered PaymentStatus = "delivered"
)

// Payment records a settled order. The charge itself is performed by an
// external gateway; TransactionID is its reference.
type Payment struct {
	ID            string
	Reference     string
	UID           string
	Email         string
	TransactionID string
	Amount        float64
	CartItemIDs   []string
	MenuItemIDs   []string
	Status        PaymentStatus
	CreatedAt     time.Time
}

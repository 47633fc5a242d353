package dto

import (
	"time"

	"github.com/ashtabanjan/restaurant-api/internal/domain"
)

// CartItemRequest payload for adding to the cart.
type CartItemRequest struct {
	MenuItemID string `json:"menu_item_id" validate:"required,mongodb"`
	Quantity   int    `json:"quantity" validate:"omitempty,min=1,max=50"`
}

// CartItemResponse is the public view of a cart entry.
type CartItemResponse struct {
	ID         string    `json:"id"`
	UID        string    `json:"uid"`
	Email      string    `json:"email"`
	MenuItemID string    `json:"menu_item_id"`
	Name       string    `json:"name"`
	Image      string    `json:"image"`
	Price      float64   `json:"price"`
	Quantity   int       `json:"quantity"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewCartItemResponse maps a cart entry.
func NewCartItemResponse(c *domain.CartItem) CartItemResponse {
	return CartItemResponse{
		ID:         c.ID,
		UID:        c.UID,
		Email:      c.Email,
		MenuItemID: c.MenuItemID,
		Name:       c.Name,
		Image:      c.Image,
		Price:      c.Price,
		Quantity:   c.Quantity,
		CreatedAt:  c.CreatedAt,
	}
}

// NewCartItemResponses maps a cart.
func NewCartItemResponses(items []domain.CartItem) []CartItemResponse {
	out := make([]CartItemResponse, 0, len(items))
	for i := range items {
		out = append(out, NewCartItemResponse(&items[i]))
	}
	return out
}

// PaymentRequest payload reporting a completed gateway charge.
type PaymentRequest struct {
	TransactionID string   `json:"transaction_id" validate:"required,max=200"`
	Amount        float64  `json:"amount" validate:"gt=0"`
	CartItemIDs   []string `json:"cart_item_ids" validate:"dive,mongodb"`
	MenuItemIDs   []string `json:"menu_item_ids" validate:"required,min=1,dive,mongodb"`
}

// PaymentResponse is the public view of a payment.
type PaymentResponse struct {
	ID            string               `json:"id"`
	Reference     string               `json:"reference"`
	UID           string               `json:"uid"`
	Email         string               `json:"email"`
	TransactionID string               `json:"transaction_id"`
	Amount        float64              `json:"amount"`
	CartItemIDs   []string             `json:"cart_item_ids"`
	MenuItemIDs   []string             `json:"menu_item_ids"`
	Status        domain.PaymentStatus `json:"status"`
	CreatedAt     time.Time            `json:"created_at"`
}

// NewPaymentResponse maps a payment.
func NewPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		Reference:     p.Reference,
		UID:           p.UID,
		Email:         p.Email,
		TransactionID: p.TransactionID,
		Amount:        p.Amount,
		CartItemIDs:   p.CartItemIDs,
		MenuItemIDs:   p.MenuItemIDs,
		Status:        p.Status,
		CreatedAt:     p.CreatedAt,
	}
}

// NewPaymentResponses maps a list of payments.
func NewPaymentResponses(payments []domain.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for i := range payments {
		out = append(out, NewPaymentResponse(&payments[i]))
	}
	return out
}

// ReviewRequest payload for leaving feedback.
type ReviewRequest struct {
	Details string `json:"details" validate:"required,max=2000"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
}

// ReviewResponse is the public view of a review.
type ReviewResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Details   string    `json:"details"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

// NewReviewResponse maps a review.
func NewReviewResponse(r *domain.Review) ReviewResponse {
	return ReviewResponse{ID: r.ID, Name: r.Name, Details: r.Details, Rating: r.Rating, CreatedAt: r.CreatedAt}
}

// NewReviewResponses maps a list of reviews.
func NewReviewResponses(reviews []domain.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for i := range reviews {
		out = append(out, NewReviewResponse(&reviews[i]))
	}
	return out
}

package domain

import "time"

// CartItem is a menu item placed in a user's cart. UID is the owner.
type CartItem struct {
	ID         string
	UID        string
	Email      string
	MenuItemID string
	Name       string
	Image      string
	Price      float64
	Quantity   int
	CreatedAt  time.Time
}

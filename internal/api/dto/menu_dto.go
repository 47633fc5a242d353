package dto

import (
	"time"

	"github.com/ashtabanjan/restaurant-api/internal/domain"
)

// MenuItemRequest payload for creating a dish.
type MenuItemRequest struct {
	Name     string  `json:"name" validate:"required,max=200"`
	Recipe   string  `json:"recipe" validate:"max=4000"`
	Image    string  `json:"image" validate:"omitempty,url"`
	Category string  `json:"category" validate:"required,max=60"`
	Price    float64 `json:"price" validate:"gte=0"`
}

// ToDomain builds the menu item to store.
func (r MenuItemRequest) ToDomain() *domain.MenuItem {
	return &domain.MenuItem{
		Name:     r.Name,
		Recipe:   r.Recipe,
		Image:    r.Image,
		Category: r.Category,
		Price:    r.Price,
	}
}

// MenuItemPatchRequest payload for partial dish updates.
type MenuItemPatchRequest struct {
	Name     *string  `json:"name" validate:"omitempty,min=1,max=200"`
	Recipe   *string  `json:"recipe" validate:"omitempty,max=4000"`
	Image    *string  `json:"image" validate:"omitempty,url"`
	Category *string  `json:"category" validate:"omitempty,min=1,max=60"`
	Price    *float64 `json:"price" validate:"omitempty,gte=0"`
}

// ToDomain converts the request to a patch.
func (r MenuItemPatchRequest) ToDomain() domain.MenuItemPatch {
	return domain.MenuItemPatch{
		Name:     r.Name,
		Recipe:   r.Recipe,
		Image:    r.Image,
		Category: r.Category,
		Price:    r.Price,
	}
}

// MenuItemResponse is the public view of a dish.
type MenuItemResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Recipe    string    `json:"recipe"`
	Image     string    `json:"image"`
	Category  string    `json:"category"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}

// NewMenuItemResponse maps a dish.
func NewMenuItemResponse(m *domain.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:        m.ID,
		Name:      m.Name,
		Recipe:    m.Recipe,
		Image:     m.Image,
		Category:  m.Category,
		Price:     m.Price,
		CreatedAt: m.CreatedAt,
	}
}

// NewMenuItemResponses maps a list of dishes.
func NewMenuItemResponses(items []domain.MenuItem) []MenuItemResponse {
	out := make([]MenuItemResponse, 0, len(items))
	for i := range items {
		out = append(out, NewMenuItemResponse(&items[i]))
	}
	return out
}

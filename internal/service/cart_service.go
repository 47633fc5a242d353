package service

import (
	"context"

	"github.com/ashtabanjan/restaurant-api/internal/domain"
	"github.com/ashtabanjan/restaurant-api/internal/repository"
)

// CartService manages per-user carts. Items always belong to the caller.
type CartService struct {
	carts repository.CartRepository
	menu  repository.MenuRepository
	users repository.UserRepository
}

// CartDependencies bundles repositories for the cart service.
type CartDependencies struct {
	CartRepo repository.CartRepository
	MenuRepo repository.MenuRepository
	UserRepo repository.UserRepository
}

// CartAddInput describes an item placed in the cart.
type CartAddInput struct {
	MenuItemID string
	Quantity   int
}

// NewCartService constructs the service.
func NewCartService(deps CartDependencies) *CartService {
	return &CartService{carts: deps.CartRepo, menu: deps.MenuRepo, users: deps.UserRepo}
}

// Add places a menu item in uid's cart. Name, image and price are copied from
// the catalogue rather than trusted from the client.
func (s *CartService) Add(ctx context.Context, uid string, in CartAddInput) (*domain.CartItem, error) {
	user, err := s.users.GetByUID(ctx, uid)
	if err != nil {
		return nil, mapRepoError(err, "user")
	}
	dish, err := s.menu.GetByID(ctx, in.MenuItemID)
	if err != nil {
		return nil, mapRepoError(err, "menu item")
	}
	quantity := in.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	item := &domain.CartItem{
		UID:        uid,
		Email:      user.Email,
		MenuItemID: dish.ID,
		Name:       dish.Name,
		Image:      dish.Image,
		Price:      dish.Price,
		Quantity:   quantity,
	}
	if err := s.carts.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// ListForOwner returns uid's cart, newest first.
func (s *CartService) ListForOwner(ctx context.Context, uid string) ([]domain.CartItem, error) {
	return s.carts.ListByUID(ctx, uid)
}

// Remove deletes one of uid's items. Items owned by someone else are reported
// as missing.
func (s *CartService) Remove(ctx context.Context, id, uid string) error {
	return mapRepoError(s.carts.DeleteOwned(ctx, id, uid), "cart item")
}

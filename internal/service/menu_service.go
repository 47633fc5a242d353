package service

import (
	"context"
	"math"

	"github.com/ashtabanjan/restaurant-api/internal/domain"
	"github.com/ashtabanjan/restaurant-api/internal/repository"
	apperrors "github.com/ashtabanjan/restaurant-api/pkg/util"
)

// Category paging sizes.
const (
	DefaultPageSize = 6
	MaxPageSize     = 100
)

// MenuPage is one page of a category together with the paging actually applied.
type MenuPage struct {
	Items []domain.MenuItem
	Page  int
	Limit int
}

// MenuService manages the dish catalogue.
type MenuService struct {
	menu repository.MenuRepository
}

// NewMenuService constructs the service.
func NewMenuService(menu repository.MenuRepository) *MenuService {
	return &MenuService{menu: menu}
}

// List returns the whole menu.
func (s *MenuService) List(ctx context.Context) ([]domain.MenuItem, error) {
	return s.menu.List(ctx, repository.MenuFilter{})
}

// Get fetches a single dish.
func (s *MenuService) Get(ctx context.Context, id string) (*domain.MenuItem, error) {
	item, err := s.menu.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "menu item")
	}
	return item, nil
}

// Count returns the number of dishes, optionally within one category.
func (s *MenuService) Count(ctx context.Context, category string) (int64, error) {
	return s.menu.Count(ctx, category)
}

// Page returns one page of a category. Pages are zero based; a non-positive
// limit falls back to DefaultPageSize and larger limits are capped at MaxPageSize.
func (s *MenuService) Page(ctx context.Context, category string, page, limit int) (*MenuPage, error) {
	if page < 0 {
		return nil, apperrors.NewValidationError("page must not be negative", map[string]any{"page": page})
	}
	switch {
	case limit <= 0:
		limit = DefaultPageSize
	case limit > MaxPageSize:
		limit = MaxPageSize
	}
	if int64(page) > math.MaxInt64/int64(limit) {
		return nil, apperrors.NewValidationError("page is out of range", map[string]any{"page": page})
	}

	items, err := s.menu.List(ctx, repository.MenuFilter{
		Category: category,
		Skip:     int64(page) * int64(limit),
		Limit:    int64(limit),
	})
	if err != nil {
		return nil, err
	}
	return &MenuPage{Items: items, Page: page, Limit: limit}, nil
}

// Create adds a dish.
func (s *MenuService) Create(ctx context.Context, item *domain.MenuItem) error {
	return s.menu.Create(ctx, item)
}

// Update applies patch and returns the stored dish.
func (s *MenuService) Update(ctx context.Context, id string, patch domain.MenuItemPatch) (*domain.MenuItem, error) {
	if patch.Empty() {
		return nil, apperrors.NewValidationError("no fields to update", nil)
	}
	if err := s.menu.Update(ctx, id, patch); err != nil {
		return nil, mapRepoError(err, "menu item")
	}
	return s.Get(ctx, id)
}

// Delete removes a dish.
func (s *MenuService) Delete(ctx context.Context, id string) error {
	return mapRepoError(s.menu.Delete(ctx, id), "menu item")
}

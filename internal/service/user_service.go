package service

import (
	"context"
	"errors"

	"github.com/ashtabanjan/restaurant-api/internal/domain"
	"github.com/ashtabanjan/restaurant-api/internal/repository"
	apperrors "github.com/ashtabanjan/restaurant-api/pkg/util"
)

// UserService backs the account administration routes.
type UserService struct {
	users repository.UserRepository
}

// NewUserService constructs the service.
func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// List returns every registered account.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// SetRole changes the role of the account with document id.
func (s *UserService) SetRole(ctx context.Context, id string, role domain.Role) error {
	if !role.Valid() {
		return apperrors.NewValidationError("unknown role", map[string]any{"role": role})
	}
	return mapRepoError(s.users.UpdateRole(ctx, id, role), "user")
}

// Delete removes the account with document id.
func (s *UserService) Delete(ctx context.Context, id string) error {
	return mapRepoError(s.users.Delete(ctx, id), "user")
}

// IsAdmin reports whether uid holds the admin role. Unknown accounts are not admins.
func (s *UserService) IsAdmin(ctx context.Context, uid string) (bool, error) {
	user, err := s.users.GetByUID(ctx, uid)
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return user.IsAdmin(), nil
}

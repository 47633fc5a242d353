package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/ashtabanjan/restaurant-api/internal/domain"
	"github.com/ashtabanjan/restaurant-api/internal/repository"
	apperrors "github.com/ashtabanjan/restaurant-api/pkg/util"
)

// UserFinder is the slice of the user store the role gate reads.
type UserFinder interface {
	GetByUID(ctx context.Context, uid string) (*domain.User, error)
}

// RoleGate allows a principal through only when its stored role equals the required one.
// Roles are read fresh on every call so a demotion takes effect on the next request.
type RoleGate struct {
	users UserFinder
}

// NewRoleGate constructs a gate over the user store.
func NewRoleGate(users UserFinder) *RoleGate {
	return &RoleGate{users: users}
}

// Authorize returns nil when principalID holds exactly the required role.
func (g *RoleGate) Authorize(ctx context.Context, principalID string, required domain.Role) error {
	if principalID == "" {
		return ErrUnknownPrincipal
	}
	user, err := g.users.GetByUID(ctx, principalID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUnknownPrincipal
		}
		return apperrors.NewInternalError(fmt.Errorf("role lookup: %w", err))
	}
	if user.Role != required {
		return ErrInsufficientRole
	}
	return nil
}

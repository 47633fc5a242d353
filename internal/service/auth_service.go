package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ashtabanjan/restaurant-api/internal/auth"
	"github.com/ashtabanjan/restaurant-api/internal/config"
	"github.com/ashtabanjan/restaurant-api/internal/domain"
	"github.com/ashtabanjan/restaurant-api/internal/events"
	"github.com/ashtabanjan/restaurant-api/internal/repository"
	apperrors "github.com/ashtabanjan/restaurant-api/pkg/util"
)

var (
	errBadLogin = apperrors.NewUnauthorized("invalid email or password")
	errBadReset = apperrors.NewValidationError("invalid or expired reset token", nil)
)

// AuthService coordinates registration and login flows.
type AuthService struct {
	users       repository.UserRepository
	resets      repository.PasswordResetRepository
	tokenMgr    *auth.TokenManager
	dispatcher  events.Dispatcher
	logger      *zap.Logger
	bcryptCost  int
	bootstrapTo string
	resetTTL    time.Duration
	now         func() time.Time
}

// AuthDependencies encapsulates repo requirements for auth service.
type AuthDependencies struct {
	UserRepo          repository.UserRepository
	PasswordResetRepo repository.PasswordResetRepository
	Dispatcher        events.Dispatcher
	Logger            *zap.Logger
}

// RegisterInput describes a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	PhotoURL string
}

// Session is an issued credential together with the account it belongs to.
type Session struct {
	User   *domain.User
	Token  string
	Claims *domain.ClaimSet
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, deps AuthDependencies) *AuthService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		users:       deps.UserRepo,
		resets:      deps.PasswordResetRepo,
		tokenMgr:    auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTL()),
		dispatcher:  deps.Dispatcher,
		logger:      logger,
		bcryptCost:  cfg.BcryptCost,
		bootstrapTo: cfg.BootstrapAdminEmail,
		resetTTL:    cfg.PasswordResetTTL(),
		now:         time.Now,
	}
}

// RegisterUser creates a new account and signs it in. The account whose email
// matches the bootstrap admin address is created with the admin role.
func (s *AuthService) RegisterUser(ctx context.Context, in RegisterInput) (*Session, error) {
	email := normalizeEmail(in.Email)
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewConflict("email already registered", nil)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	role := domain.RoleUser
	if s.bootstrapTo != "" && email == s.bootstrapTo {
		role = domain.RoleAdmin
	}
	user := &domain.User{
		UID:          uuid.NewString(),
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PhotoURL:     strings.TrimSpace(in.PhotoURL),
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.NewConflict("email already registered", nil)
		}
		return nil, err
	}

	publish(ctx, s.dispatcher, s.logger, events.Event{
		Type:    events.EventUserRegistered,
		Subject: user.UID,
		Actor:   events.Actor{UID: user.UID},
		Payload: events.UserRegisteredPayload{Name: user.Name, Email: user.Email},
	})
	return s.issue(user)
}

// LoginUser authenticates an end-user. Unknown emails and wrong passwords are
// reported identically.
func (s *AuthService) LoginUser(ctx context.Context, email, password string) (*Session, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errBadLogin
		}
		return nil, err
	}
	if !auth.PasswordMatches(user.PasswordHash, password) {
		return nil, errBadLogin
	}
	return s.issue(user)
}

// Me returns the account behind the principal.
func (s *AuthService) Me(ctx context.Context, uid string) (*domain.User, error) {
	user, err := s.users.GetByUID(ctx, uid)
	if err != nil {
		return nil, mapRepoError(err, "user")
	}
	return user, nil
}

// ChangePassword verifies current password before updating to new hash.
func (s *AuthService) ChangePassword(ctx context.Context, uid, currentPassword, newPassword string) error {
	user, err := s.users.GetByUID(ctx, uid)
	if err != nil {
		return mapRepoError(err, "user")
	}
	if !auth.PasswordMatches(user.PasswordHash, currentPassword) {
		return apperrors.NewUnauthorized("current password is incorrect")
	}
	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	return mapRepoError(s.users.UpdatePassword(ctx, uid, hash), "user")
}

// RequestPasswordReset stores a reset token for the account with email and
// publishes it for delivery. Unknown emails succeed silently so the endpoint
// cannot be used to probe for accounts.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	reset := &domain.PasswordReset{
		UID:       user.UID,
		Token:     uuid.NewString(),
		ExpiresAt: s.now().Add(s.resetTTL),
	}
	if err := s.resets.Create(ctx, reset); err != nil {
		return mapRepoError(err, "password reset")
	}

	publish(ctx, s.dispatcher, s.logger, events.Event{
		Type:    events.EventPasswordReset,
		Subject: user.UID,
		Actor:   events.Actor{UID: user.UID},
		Payload: events.PasswordResetPayload{Email: user.Email, Token: reset.Token, ExpiresAt: reset.ExpiresAt},
	})
	return nil
}

// ConfirmPasswordReset redeems a reset token and sets the new password.
func (s *AuthService) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	reset, err := s.resets.GetByToken(ctx, token)
	if errors.Is(err, repository.ErrNotFound) {
		return errBadReset
	}
	if err != nil {
		return mapRepoError(err, "password reset")
	}
	if !reset.Usable(s.now()) {
		return errBadReset
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	if err := s.resets.MarkUsed(ctx, reset.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errBadReset
		}
		return err
	}
	if err := s.users.UpdatePassword(ctx, reset.UID, hash); err != nil {
		// Give the token back so the user can retry with the same link.
		if releaseErr := s.resets.Release(ctx, reset.ID); releaseErr != nil {
			return errors.Join(mapRepoError(err, "user"), fmt.Errorf("release reset token: %w", releaseErr))
		}
		return mapRepoError(err, "user")
	}
	return nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) issue(user *domain.User) (*Session, error) {
	token, claims, err := s.tokenMgr.GenerateToken(user.UID)
	if err != nil {
		return nil, err
	}
	return &Session{User: user, Token: token, Claims: claims}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

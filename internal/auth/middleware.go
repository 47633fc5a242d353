package auth

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ashtabanjan/restaurant-api/internal/domain"
	"github.com/ashtabanjan/restaurant-api/internal/events"
	"github.com/ashtabanjan/restaurant-api/internal/observability"
	apperrors "github.com/ashtabanjan/restaurant-api/pkg/util"
)

const principalKey = "auth_principal"

// Interceptor inspects a request before its handler runs. Returning nil lets
// the request continue; any error rejects it.
type Interceptor func(c *fiber.Ctx) error

// RoleAuthorizer decides whether a principal holds a role.
type RoleAuthorizer interface {
	Authorize(ctx context.Context, principalID string, required domain.Role) error
}

// Pipeline composes the authorization stages in front of route handlers.
type Pipeline struct {
	verifier   TokenVerifier
	roles      RoleAuthorizer
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewPipeline constructs the pipeline. dispatcher may be nil.
func NewPipeline(verifier TokenVerifier, roles RoleAuthorizer, dispatcher events.Dispatcher, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{verifier: verifier, roles: roles, dispatcher: dispatcher, logger: logger}
}

// Public leaves the handler unguarded.
func (p *Pipeline) Public(handler fiber.Handler) fiber.Handler {
	return handler
}

// Authenticated requires a valid credential.
func (p *Pipeline) Authenticated(handler fiber.Handler) fiber.Handler {
	return p.Chain(handler, p.Authenticate)
}

// Admin requires a valid credential whose subject holds the admin role.
func (p *Pipeline) Admin(handler fiber.Handler) fiber.Handler {
	return p.Chain(handler, p.Authenticate, p.RequireRole(domain.RoleAdmin))
}

// Owner requires a valid credential whose subject is the owner named by the request.
func (p *Pipeline) Owner(owner OwnerExtractor, handler fiber.Handler) fiber.Handler {
	return p.Chain(handler, p.Authenticate, RequireOwner(owner))
}

// Chain runs interceptors in order and calls handler only if all of them allow
// the request. The first rejection ends the request.
func (p *Pipeline) Chain(handler fiber.Handler, interceptors ...Interceptor) fiber.Handler {
	stages := append([]Interceptor(nil), interceptors...)
	return func(c *fiber.Ctx) error {
		for _, stage := range stages {
			if err := stage(c); err != nil {
				p.reject(c, err)
				return err
			}
		}
		return handler(c)
	}
}

// Authenticate verifies the bearer credential and stores the principal on the request.
func (p *Pipeline) Authenticate(c *fiber.Ctx) error {
	credential, err := credentialFromHeader(c.Get(fiber.HeaderAuthorization))
	if err != nil {
		return err
	}
	claims, err := p.verifier.Verify(credential)
	if err != nil {
		return err
	}

	principal := &domain.Principal{ID: claims.Subject, Claims: *claims}
	c.Locals(principalKey, principal)
	c.Locals(observability.PrincipalLocal, principal.ID)
	return nil
}

// RequireRole checks the authenticated principal against the user store.
func (p *Pipeline) RequireRole(role domain.Role) Interceptor {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return ErrMissingCredential
		}
		return p.roles.Authorize(c.UserContext(), principal.ID, role)
	}
}

// RequireOwner checks the owner named by the request against the authenticated principal.
func RequireOwner(owner OwnerExtractor) Interceptor {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return ErrMissingCredential
		}
		return CheckOwnership(owner(c), principal.ID)
	}
}

// PrincipalFromContext retrieves the authenticated caller.
func PrincipalFromContext(c *fiber.Ctx) (*domain.Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*domain.Principal)
	return principal, ok
}

// credentialFromHeader accepts "Bearer <token>" and, for older web clients, a bare token.
func credentialFromHeader(header string) (string, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", ErrMissingCredential
	}
	if strings.EqualFold(header, "Bearer") {
		return "", ErrMissingCredential
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found {
		return header, nil
	}
	if !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidCredential
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrMissingCredential
	}
	return token, nil
}

func (p *Pipeline) reject(c *fiber.Ctx, err error) {
	domainErr := apperrors.ToDomainError(err)
	if domainErr.HTTPStatus != http.StatusUnauthorized && domainErr.HTTPStatus != http.StatusForbidden {
		return
	}

	denial := domain.AccessDenial{
		ID:         uuid.NewString(),
		Reason:     domainErr.Code,
		Status:     domainErr.HTTPStatus,
		Method:     strings.Clone(c.Method()),
		Path:       strings.Clone(c.Path()),
		RemoteIP:   strings.Clone(c.IP()),
		OccurredAt: time.Now().UTC(),
	}
	if principal, ok := PrincipalFromContext(c); ok {
		denial.PrincipalID = principal.ID
	}

	p.logger.Info("request rejected",
		zap.String("reason", denial.Reason),
		zap.Int("status", denial.Status),
		zap.String("method", denial.Method),
		zap.String("path", denial.Path),
		zap.String("principal", denial.PrincipalID))

	if p.dispatcher == nil {
		return
	}
	event := events.Event{
		ID:        denial.ID,
		Type:      events.EventAccessDenied,
		Subject:   denial.Path,
		Actor:     events.Actor{UID: denial.PrincipalID},
		Timestamp: denial.OccurredAt,
		Payload:   events.AccessDeniedPayload{Denial: denial},
	}
	if err := p.dispatcher.Publish(c.UserContext(), event); err != nil {
		p.logger.Warn("access denied event not fully handled", zap.Error(err))
	}
}

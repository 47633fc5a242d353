package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ashtabanjan/restaurant-api/internal/api/dto"
	"github.com/ashtabanjan/restaurant-api/internal/auth"
	apperrors "github.com/ashtabanjan/restaurant-api/pkg/util"
)

// bindJSON parses and validates a request body.
func bindJSON(c *fiber.Ctx, dst interface{}) error {
	if err := c.BodyParser(dst); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	return dto.Validate(dst)
}

// principalID returns the authenticated caller. Routes using it sit behind the
// authentication interceptor, so a missing principal means the route is miswired.
func principalID(c *fiber.Ctx) (string, error) {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return "", auth.ErrMissingCredential
	}
	return principal.ID, nil
}

func data(v interface{}) fiber.Map {
	return fiber.Map{"data": v}
}

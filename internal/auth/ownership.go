package auth

import "github.com/gofiber/fiber/v2"

// OwnerExtractor reads the owner identifier a request claims to act for.
type OwnerExtractor func(c *fiber.Ctx) string

// OwnerFromQuery reads the claimed owner from a query parameter.
func OwnerFromQuery(name string) OwnerExtractor {
	return func(c *fiber.Ctx) string {
		return c.Query(name)
	}
}

// OwnerFromParam reads the claimed owner from a route parameter.
func OwnerFromParam(name string) OwnerExtractor {
	return func(c *fiber.Ctx) string {
		return c.Params(name)
	}
}

// CheckOwnership allows access only when the claimed owner is the principal itself.
// Roles play no part: an admin reading another user's cart goes through admin routes.
func CheckOwnership(claimedOwnerID, principalID string) error {
	if claimedOwnerID == "" || claimedOwnerID != principalID {
		return ErrOwnershipMismatch
	}
	return nil
}

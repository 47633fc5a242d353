package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/ashtabanjan/restaurant-api/internal/api/dto"
	"github.com/ashtabanjan/restaurant-api/internal/service"
)

// UsersHandler exposes account administration.
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(users *service.UserService) *UsersHandler {
	return &UsersHandler{users: users}
}

// List handles GET /users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.users.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(data(dto.NewUserResponses(users)))
}

// SetRole handles PATCH /users/:id/role.
func (h *UsersHandler) SetRole(c *fiber.Ctx) error {
	var req dto.RoleRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	if err := h.users.SetRole(c.UserContext(), c.Params("id"), req.Role); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// Delete handles DELETE /users/:id.
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	if err := h.users.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// IsAdmin handles GET /users/:uid/admin.
func (h *UsersHandler) IsAdmin(c *fiber.Ctx) error {
	admin, err := h.users.IsAdmin(c.UserContext(), c.Params("uid"))
	if err != nil {
		return err
	}
	return c.JSON(data(fiber.Map{"admin": admin}))
}

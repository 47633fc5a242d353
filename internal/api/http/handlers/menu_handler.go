package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/ashtabanjan/restaurant-api/internal/api/dto"
	"github.com/ashtabanjan/restaurant-api/internal/service"
)

// MenuHandler exposes the dish catalogue.
type MenuHandler struct {
	menu *service.MenuService
}

// NewMenuHandler constructs handler.
func NewMenuHandler(menu *service.MenuService) *MenuHandler {
	return &MenuHandler{menu: menu}
}

// List handles GET /menu.
func (h *MenuHandler) List(c *fiber.Ctx) error {
	items, err := h.menu.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(data(dto.NewMenuItemResponses(items)))
}

// Get handles GET /menu/:id.
func (h *MenuHandler) Get(c *fiber.Ctx) error {
	item, err := h.menu.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(data(dto.NewMenuItemResponse(item)))
}

// Count handles GET /menu/count?category=.
func (h *MenuHandler) Count(c *fiber.Ctx) error {
	total, err := h.menu.Count(c.UserContext(), c.Query("category"))
	if err != nil {
		return err
	}
	return c.JSON(data(fiber.Map{"total": total}))
}

// ByCategory handles GET /menu/category?category=&page=&limit=.
func (h *MenuHandler) ByCategory(c *fiber.Ctx) error {
	result, err := h.menu.Page(c.UserContext(), c.Query("category"), c.QueryInt("page", 0), c.QueryInt("limit", 0))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": dto.NewMenuItemResponses(result.Items),
		"meta": fiber.Map{"page": result.Page, "limit": result.Limit},
	})
}

// Create handles POST /menu.
func (h *MenuHandler) Create(c *fiber.Ctx) error {
	var req dto.MenuItemRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	item := req.ToDomain()
	if err := h.menu.Create(c.UserContext(), item); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(data(dto.NewMenuItemResponse(item)))
}

// Update handles PATCH /menu/:id.
func (h *MenuHandler) Update(c *fiber.Ctx) error {
	var req dto.MenuItemPatchRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	item, err := h.menu.Update(c.UserContext(), c.Params("id"), req.ToDomain())
	if err != nil {
		return err
	}
	return c.JSON(data(dto.NewMenuItemResponse(item)))
}

// Delete handles DELETE /menu/:id.
func (h *MenuHandler) Delete(c *fiber.Ctx) error {
	if err := h.menu.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/ashtabanjan/restaurant-api/internal/api/dto"
	"github.com/ashtabanjan/restaurant-api/internal/service"
)

// OrdersHandler exposes carts, payments and reviews.
type OrdersHandler struct {
	carts    *service.CartService
	payments *service.PaymentService
	reviews  *service.ReviewService
}

// OrdersDependencies bundles services for the orders handler.
type OrdersDependencies struct {
	Carts    *service.CartService
	Payments *service.PaymentService
	Reviews  *service.ReviewService
}

// NewOrdersHandler constructs handler.
func NewOrdersHandler(deps OrdersDependencies) *OrdersHandler {
	return &OrdersHandler{carts: deps.Carts, payments: deps.Payments, reviews: deps.Reviews}
}

// AddToCart handles POST /carts.
func (h *OrdersHandler) AddToCart(c *fiber.Ctx) error {
	uid, err := principalID(c)
	if err != nil {
		return err
	}
	var req dto.CartItemRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	item, err := h.carts.Add(c.UserContext(), uid, service.CartAddInput{MenuItemID: req.MenuItemID, Quantity: req.Quantity})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(data(dto.NewCartItemResponse(item)))
}

// ListCart handles GET /carts?uid=. Ownership is enforced by the route.
func (h *OrdersHandler) ListCart(c *fiber.Ctx) error {
	items, err := h.carts.ListForOwner(c.UserContext(), c.Query("uid"))
	if err != nil {
		return err
	}
	return c.JSON(data(dto.NewCartItemResponses(items)))
}

// RemoveFromCart handles DELETE /carts/:id.
func (h *OrdersHandler) RemoveFromCart(c *fiber.Ctx) error {
	uid, err := principalID(c)
	if err != nil {
		return err
	}
	if err := h.carts.Remove(c.UserContext(), c.Params("id"), uid); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// RecordPayment handles POST /payments.
func (h *OrdersHandler) RecordPayment(c *fiber.Ctx) error {
	uid, err := principalID(c)
	if err != nil {
		return err
	}
	var req dto.PaymentRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	receipt, err := h.payments.Record(c.UserContext(), uid, service.PaymentInput{
		TransactionID: req.TransactionID,
		Amount:        req.Amount,
		CartItemIDs:   req.CartItemIDs,
		MenuItemIDs:   req.MenuItemIDs,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(data(fiber.Map{
		"payment":       dto.NewPaymentResponse(receipt.Payment),
		"carts_cleared": receipt.CartsCleared,
	}))
}

// ListPayments handles GET /payments?uid=. Ownership is enforced by the route.
func (h *OrdersHandler) ListPayments(c *fiber.Ctx) error {
	payments, err := h.payments.ListForOwner(c.UserContext(), c.Query("uid"))
	if err != nil {
		return err
	}
	return c.JSON(data(dto.NewPaymentResponses(payments)))
}

// ListReviews handles GET /reviews.
func (h *OrdersHandler) ListReviews(c *fiber.Ctx) error {
	reviews, err := h.reviews.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(data(dto.NewReviewResponses(reviews)))
}

// CreateReview handles POST /reviews.
func (h *OrdersHandler) CreateReview(c *fiber.Ctx) error {
	uid, err := principalID(c)
	if err != nil {
		return err
	}
	var req dto.ReviewRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	review, err := h.reviews.Create(c.UserContext(), uid, service.ReviewInput{Details: req.Details, Rating: req.Rating})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(data(dto.NewReviewResponse(review)))
}

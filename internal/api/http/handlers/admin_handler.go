package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ashtabanjan/restaurant-api/internal/api/dto"
	"github.com/ashtabanjan/restaurant-api/internal/observability"
	"github.com/ashtabanjan/restaurant-api/internal/service"
)

// AdminHandler serves the dashboard and operational views.
type AdminHandler struct {
	stats   *service.StatsService
	audit   *service.AuditService
	metrics *observability.Metrics
}

// NewAdminHandler constructs handler.
func NewAdminHandler(stats *service.StatsService, audit *service.AuditService, metrics *observability.Metrics) *AdminHandler {
	return &AdminHandler{stats: stats, audit: audit, metrics: metrics}
}

// Stats handles GET /admin/stats.
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	summary, err := h.stats.Summary(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(data(summary))
}

// CategoryStats handles GET /admin/stats/categories.
func (h *AdminHandler) CategoryStats(c *fiber.Ctx) error {
	sales, err := h.stats.SalesByCategory(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(data(sales))
}

// AccessDenials handles GET /admin/access-denials?limit=.
func (h *AdminHandler) AccessDenials(c *fiber.Ctx) error {
	rows, err := h.audit.Recent(c.UserContext(), c.QueryInt("limit", 100))
	if err != nil {
		return err
	}
	return c.JSON(data(dto.NewAccessDenialResponses(rows)))
}

// Metrics handles GET /metrics.
func (h *AdminHandler) Metrics(c *fiber.Ctx) error {
	return c.JSON(data(h.metrics.Snapshot()))
}

package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/example/cleandrop/internal/catalog"
	"github.com/example/cleandrop/internal/models"
	"github.com/example/cleandrop/internal/session"
	"github.com/example/cleandrop/internal/utils"
)

// AdminHandler manages admin-only endpoints.
type AdminHandler struct {
	store    *catalog.Store
	editor   *catalog.Editor
	sessions *session.Manager
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(store *catalog.Store, editor *catalog.Editor, sessions *session.Manager) *AdminHandler {
	return &AdminHandler{store: store, editor: editor, sessions: sessions}
}

// DashboardStats returns aggregate statistics for the admin dashboard.
func (h *AdminHandler) DashboardStats(c *fiber.Ctx) error {
	stats := h.store.Stats()

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"total_products":  stats.Products,
			"total_customers": len(h.sessions.Customers()),
			"bestsellers":     stats.Bestsellers,
			"average_rating":  stats.AverageRating,
		},
	})
}

// ListCustomers returns the customer accounts with pagination.
func (h *AdminHandler) ListCustomers(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)
	customers := h.sessions.Customers()

	return c.JSON(fiber.Map{
		"success": true,
		"data":    utils.Paginate(customers, pg),
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    len(customers),
		},
	})
}

// UpdateProduct replaces a catalog entry with an edited copy.
func (h *AdminHandler) UpdateProduct(c *fiber.Ctx) error {
	var req models.ProductUpdate
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	product, err := h.editor.UpdateProduct(c.Params("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrProductNotFound):
			return fiber.NewError(fiber.StatusNotFound, "product not found")
		case errors.Is(err, catalog.ErrInvalidProduct):
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": product})
}

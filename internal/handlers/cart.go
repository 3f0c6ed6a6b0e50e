package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/example/cleandrop/internal/cart"
	"github.com/example/cleandrop/internal/catalog"
)

// CartHandler exposes the shopping cart.
type CartHandler struct {
	cart    *cart.Cart
	store   *catalog.Store
	taxRate decimal.Decimal
}

// NewCartHandler constructs CartHandler.
func NewCartHandler(c *cart.Cart, store *catalog.Store, taxRate decimal.Decimal) *CartHandler {
	return &CartHandler{cart: c, store: store, taxRate: taxRate}
}

// GetCart returns the cart lines with their totals.
func (h *CartHandler) GetCart(c *fiber.Ctx) error {
	return h.respond(c, fiber.StatusOK)
}

type addToCartRequest struct {
	ProductID string `json:"product_id"`
	Quantity  *int   `json:"quantity"`
}

// AddToCart puts a product in the cart. Quantity defaults to one.
func (h *CartHandler) AddToCart(c *fiber.Ctx) error {
	var req addToCartRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	product, ok := h.store.ByID(req.ProductID)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "product not found")
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	if err := h.cart.Add(product, quantity); err != nil {
		if errors.Is(err, cart.ErrInvalidQuantity) || errors.Is(err, cart.ErrQuantityLimit) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return err
	}

	return h.respond(c, fiber.StatusCreated)
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateQuantity sets a line's quantity; zero or less removes the line.
func (h *CartHandler) UpdateQuantity(c *fiber.Ctx) error {
	var req updateQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if !h.cart.UpdateQuantity(c.Params("id"), req.Quantity) && req.Quantity > 0 {
		return fiber.NewError(fiber.StatusNotFound, "cart line not found")
	}

	return h.respond(c, fiber.StatusOK)
}

// RemoveFromCart deletes one line.
func (h *CartHandler) RemoveFromCart(c *fiber.Ctx) error {
	h.cart.Remove(c.Params("id"))
	return h.respond(c, fiber.StatusOK)
}

// ClearCart empties the cart.
func (h *CartHandler) ClearCart(c *fiber.Ctx) error {
	h.cart.Clear()
	return h.respond(c, fiber.StatusOK)
}

func (h *CartHandler) respond(c *fiber.Ctx, status int) error {
	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"items":       h.cart.Lines(),
			"total_items": h.cart.TotalItems(),
			"total_price": h.cart.TotalPrice(),
			"summary":     h.cart.Summary(h.taxRate),
		},
	})
}

// RegisterCartRoutes attaches cart routes to the router.
func (h *CartHandler) RegisterCartRoutes(router fiber.Router) {
	router.Get("/", h.GetCart)
	router.Post("/", h.AddToCart)
	router.Delete("/", h.ClearCart)
	router.Put("/:id", h.UpdateQuantity)
	router.Delete("/:id", h.RemoveFromCart)
}

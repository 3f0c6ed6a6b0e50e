package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/cleandrop/internal/catalog"
	"github.com/example/cleandrop/internal/models"
	"github.com/example/cleandrop/internal/utils"
)

// ProductHandler serves catalog reads.
type ProductHandler struct {
	store *catalog.Store
}

// NewProductHandler constructs ProductHandler.
func NewProductHandler(store *catalog.Store) *ProductHandler {
	return &ProductHandler{store: store}
}

// ListProducts returns a filtered, sorted and paginated product listing.
func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	params, err := catalog.ParseQueryParams(c.Query("search"), c.Query("category"), c.Query("type"), c.Query("sort"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	pg := utils.ParsePagination(c)
	products := h.store.Query(params)

	return c.JSON(fiber.Map{
		"success": true,
		"data":    utils.Paginate(products, pg),
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    len(products),
			"catalog_size":   h.store.Len(),
		},
	})
}

// GetProduct loads a single product along with products from its category.
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	product, ok := h.store.ByID(id)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "product not found")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    product,
		"related": h.store.Related(id, catalog.RelatedLimit),
	})
}

// ListFeatured returns the home page showcase.
func (h *ProductHandler) ListFeatured(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true, "data": h.store.Featured()})
}

// ListByCategory returns one shelf of the catalog.
func (h *ProductHandler) ListByCategory(c *fiber.Ctx) error {
	category := models.Category(c.Params("category"))
	if !category.Valid() {
		return fiber.NewError(fiber.StatusBadRequest, "unknown category")
	}
	return c.JSON(fiber.Map{"success": true, "data": h.store.ByCategory(category)})
}

// RegisterProductRoutes attaches product routes to the router.
func (h *ProductHandler) RegisterProductRoutes(router fiber.Router) {
	router.Get("/", h.ListProducts)
	router.Get("/featured", h.ListFeatured)
	router.Get("/category/:category", h.ListByCategory)
	router.Get("/:id", h.GetProduct)
}

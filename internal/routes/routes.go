package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/cleandrop/internal/cart"
	"github.com/example/cleandrop/internal/catalog"
	"github.com/example/cleandrop/internal/config"
	"github.com/example/cleandrop/internal/handlers"
	"github.com/example/cleandrop/internal/middleware"
	"github.com/example/cleandrop/internal/session"
)

// Storefront is the set of engines the API serves. Each is owned here and
// shared by every request.
type Storefront struct {
	Catalog  *catalog.Store
	Editor   *catalog.Editor
	Cart     *cart.Cart
	Sessions *session.Manager
}

// Register wires up all HTTP routes.
func Register(app *fiber.App, sf Storefront, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(sf.Sessions, cfg)
	productHandler := handlers.NewProductHandler(sf.Catalog)
	cartHandler := handlers.NewCartHandler(sf.Cart, sf.Catalog, cfg.TaxRate)
	profileHandler := handlers.NewProfileHandler(sf.Sessions)
	adminHandler := handlers.NewAdminHandler(sf.Catalog, sf.Editor, sf.Sessions)

	api := app.Group("/api")

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/logout", authHandler.Logout)
	auth.Get("/session", authHandler.Session)

	// Products
	products := api.Group("/products")
	productHandler.RegisterProductRoutes(products)

	// Cart
	carts := api.Group("/cart")
	cartHandler.RegisterCartRoutes(carts)

	// Protected routes
	protected := api.Group("", middleware.AuthMiddleware(cfg, sf.Sessions))

	protected.Get("/profile", profileHandler.GetProfile)
	protected.Put("/profile", profileHandler.UpdateProfile)

	admin := protected.Group("/admin", middleware.AdminOnly())
	admin.Get("/stats", adminHandler.DashboardStats)
	admin.Get("/customers", adminHandler.ListCustomers)
	admin.Put("/products/:id", adminHandler.UpdateProduct)
}

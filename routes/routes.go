package routes

import (
	"storefront/config"
	"storefront/handlers"
	"storefront/internal/shop"
	"storefront/internal/ws"
	"storefront/utils"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes mounts the storefront intents. Every handler forwards to f;
// none of them keeps state of its own.
func SetupRoutes(app *fiber.App, cfg *config.Config, f *shop.Storefront, hub *ws.Hub) {
	productHandler := handlers.NewProductHandler(f)
	categoryHandler := handlers.NewCategoryHandler(f)
	filterHandler := handlers.NewFilterHandler(f)
	cartHandler := handlers.NewCartHandler(f)
	purchaseHandler := handlers.NewPurchaseHandler(f)
	authHandler := handlers.NewAuthHandler(f, cfg.JWTSecret, cfg.TokenTTL())
	userHandler := handlers.NewUserHandler(f, handlers.NewUploadHandler())
	socketHandler := handlers.NewSocketHandler(hub, f)

	protected := utils.AuthMiddleware(cfg.JWTSecret, f.Session)

	// Health Check Endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":         "success",
			"message":        "API is healthy",
			"catalog_loaded": f.Snapshot().CatalogLoaded,
			"renderers":      hub.Online(),
		})
	})

	// The file-backed catalog is also served as the static data document.
	if cfg.CatalogIsFile() {
		app.Get("/data.json", func(c *fiber.Ctx) error {
			return c.SendFile(cfg.CatalogSource)
		})
	}

	api := app.Group("/api")

	api.Get("/storefront", productHandler.GetStorefront)
	api.Get("/products/:id", productHandler.GetProduct)
	api.Get("/flash-sale", productHandler.GetFlashSale)
	api.Get("/suggestions", productHandler.GetSuggestions)
	api.Get("/categories", categoryHandler.GetCategories)

	api.Put("/category", categoryHandler.SetCategory)
	api.Put("/filters", filterHandler.SetFilters)
	api.Put("/search", filterHandler.SetSearch)
	api.Post("/filters/reset", filterHandler.ResetFilters)
	api.Put("/sort", filterHandler.SetSort)
	api.Put("/page", filterHandler.SetPage)

	cart := api.Group("/cart")
	cart.Get("/", cartHandler.GetCart)
	cart.Post("/", cartHandler.AddToCart)
	cart.Post("/checkout", protected, cartHandler.Checkout)
	cart.Put("/:id", cartHandler.UpdateQuantity)
	cart.Delete("/:id", cartHandler.RemoveFromCart)

	purchases := api.Group("/purchases", protected)
	purchases.Get("/", purchaseHandler.GetPurchases)
	purchases.Delete("/", purchaseHandler.ClearPurchases)
	purchases.Post("/buy-now", purchaseHandler.BuyNow)

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/logout", authHandler.Logout)

	api.Get("/me", protected, userHandler.GetMe)
	api.Put("/me", protected, userHandler.UpdateMe)

	app.Use("/ws", socketHandler.WebSocketUpgradeMiddleware)
	app.Get("/ws", socketHandler.Handler())
}

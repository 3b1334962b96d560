package routes

import (
	"github.com/deshidirective/deshi_directive/handlers"
	"github.com/deshidirective/deshi_directive/middleware"
	"github.com/gofiber/fiber/v2"
)

func SellerRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	seller := api.Group("/seller", middleware.Protected(), middleware.SellerRequired())

	products := seller.Group("/products")
	products.Post("", handlers.CreateProduct)
	products.Get("", handlers.ListMyProducts)
	products.Put("/:id", handlers.UpdateProduct)
	products.Delete("/:id", handlers.DeleteProduct)

	seller.Get("/orders", handlers.GetSellerOrders)
	seller.Put("/orders/:id/status", handlers.UpdateSellerOrderStatus)

	seller.Get("/stats", handlers.GetSellerStats)
	seller.Get("/inventory", handlers.GetInventory)
	seller.Put("/inventory", handlers.UpdateInventory)
	seller.Get("/feedback", handlers.GetSellerFeedback)
}

package routes

import (
	"github.com/deshidirective/deshi_directive/handlers"
	"github.com/deshidirective/deshi_directive/middleware"
	"github.com/gofiber/fiber/v2"
)

func OrderRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	orders := api.Group("/orders", middleware.Protected())
	orders.Post("", handlers.CreateOrder)
	orders.Get("/me", handlers.GetMyOrders)
}

package routes

import (
	"github.com/deshidirective/deshi_directive/handlers"
	"github.com/deshidirective/deshi_directive/middleware"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

func TourRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	tours := api.Group("/tours", middleware.Protected())
	tours.Post("/requests", handlers.CreateTourRequest)
	tours.Get("/requests", handlers.ListTourRequests)
	tours.Get("/my", handlers.GetMyTourRequests)
	tours.Get("/requests/:id", handlers.GetTourRequest)
	tours.Patch("/requests/:id", handlers.UpdateTourRequest)
	tours.Post("/requests/:id/pay", handlers.PayTourRequest)

	api.Use("/ws", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	})
	api.Get("/ws", websocket.New(handlers.ServeWs))
}

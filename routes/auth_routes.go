package routes

import (
	"github.com/deshidirective/deshi_directive/handlers"
	"github.com/deshidirective/deshi_directive/middleware"
	"github.com/gofiber/fiber/v2"
)

func AuthRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Post("/signup", handlers.RegisterUser)
	auth.Post("/login", handlers.LoginUser)

	auth.Get("/me", middleware.Protected(), handlers.GetMe)
	auth.Put("/me", middleware.Protected(), handlers.UpdateProfile)
}

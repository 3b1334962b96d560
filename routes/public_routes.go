package routes

import (
	"github.com/deshidirective/deshi_directive/handlers"
	"github.com/gofiber/fiber/v2"
)

func PublicRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/places", handlers.ListPlaces)

	api.Get("/products", handlers.ListProducts)
	api.Get("/products/:id", handlers.GetProduct)

	api.Get("/users", handlers.ListUsers)
	api.Get("/users/:id", handlers.GetUser)
	api.Get("/users/:id/reviews", handlers.GetUserReviews)

	community := api.Group("/community")
	community.Get("/events", handlers.ListEvents)
	community.Get("/fundraisers", handlers.ListFundraisers)
	community.Get("/reviews", handlers.ListCommunityReviews)
}

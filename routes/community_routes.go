package routes

import (
	"github.com/deshidirective/deshi_directive/handlers"
	"github.com/deshidirective/deshi_directive/middleware"
	"github.com/gofiber/fiber/v2"
)

func CommunityRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	community := api.Group("/community", middleware.Protected())
	community.Post("/events", middleware.AdminRequired(), handlers.CreateEvent)
	community.Post("/fundraisers", handlers.CreateFundraiser)
	community.Post("/donations", handlers.Donate)

	users := api.Group("/users", middleware.Protected())
	users.Post("/:id/reviews", handlers.CreateUserReview)
	users.Post("/:id/feedback", handlers.CreateUserFeedback)
}

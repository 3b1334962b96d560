package routes

import (
	"github.com/deshidirective/deshi_directive/handlers"
	"github.com/deshidirective/deshi_directive/middleware"
	"github.com/gofiber/fiber/v2"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())

	users := admin.Group("/users")
	users.Get("", handlers.AdminListUsers)
	users.Post("", handlers.AdminCreateUser)
	users.Get("/:id", handlers.AdminGetUser)
	users.Put("/:id", handlers.AdminUpdateUser)

	places := admin.Group("/places")
	places.Get("", handlers.AdminListPlaces)
	places.Post("", handlers.AdminCreatePlace)
	places.Get("/:id", handlers.AdminGetPlace)
	places.Put("/:id", handlers.AdminUpdatePlace)
	places.Delete("/:id", handlers.AdminDeletePlace)

	admin.Get("/businesses", handlers.AdminListBusinesses)
}

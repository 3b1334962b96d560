package handlers

import (
	"github.com/deshidirective/deshi_directive/database"
	"github.com/deshidirective/deshi_directive/models"
	"github.com/gofiber/fiber/v2"
)

func ListPlaces(c *fiber.Ctx) error {
	var places []models.Place
	if err := database.DB.
		Where("is_active = ?", true).
		Order("name asc").
		Find(&places).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch places"})
	}
	return c.JSON(fiber.Map{"places": places})
}

package handlers

import (
	"math"
	"strconv"

	"github.com/deshidirective/deshi_directive/database"
	"github.com/deshidirective/deshi_directive/models"
	"github.com/gofiber/fiber/v2"
)

func pagination(c *fiber.Ctx, defaultLimit int) (page, limit int) {
	page, _ = strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(c.Query("limit", strconv.Itoa(defaultLimit)))
	if limit < 1 {
		limit = defaultLimit
	}
	return page, limit
}

// ListProducts is the public catalog: active products, optionally filtered
// by search term or by the sellers of a place.
func ListProducts(c *fiber.Ctx) error {
	page, limit := pagination(c, 24)

	query := database.DB.Model(&models.Product{}).Where("products.is_active = ?", true)

	if q := c.Query("q"); q != "" {
		pattern := "%" + q + "%"
		query = query.Where("products.name ILIKE ? OR products.category ILIKE ?", pattern, pattern)
	}
	if place := c.Query("place"); place != "" {
		query = query.Joins("JOIN users ON users.id = products.seller_id").
			Where("users.place_id = ?", place)
	}

	var total int64
	query.Count(&total)

	var products []models.Product
	if err := query.
		Preload("Seller").
		Order("products.created_at desc").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&products).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch products"})
	}

	return c.JSON(fiber.Map{
		"products":     products,
		"total":        total,
		"current_page": page,
		"total_pages":  int(math.Ceil(float64(total) / float64(limit))),
	})
}

func GetProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := database.DB.Preload("Seller").First(&product, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}
	return c.JSON(fiber.Map{"product": product})
}

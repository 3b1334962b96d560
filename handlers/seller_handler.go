package handlers

import (
	"math"
	"strconv"

	"github.com/deshidirective/deshi_directive/database"
	"github.com/deshidirective/deshi_directive/models"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
)

type ProductRequest struct {
	Name        string   `json:"name" validate:"required,min=2"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Images      []string `json:"images,omitempty"`
	Stock       int      `json:"stock" validate:"min=0"`
	IsActive    *bool    `json:"is_active,omitempty"`
}

func CreateProduct(c *fiber.Ctx) error {
	sellerID, _ := currentUser(c)

	var req ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	product := models.Product{
		SellerID:    sellerID,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Images:      pq.StringArray(req.Images),
		Stock:       req.Stock,
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	} else {
		product.IsActive = true
	}

	if err := database.DB.Create(&product).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create product"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"product": product})
}

func ListMyProducts(c *fiber.Ctx) error {
	sellerID, _ := currentUser(c)
	page, limit := pagination(c, 20)

	query := database.DB.Model(&models.Product{}).Where("seller_id = ?", sellerID)

	var total int64
	query.Count(&total)

	var products []models.Product
	if err := query.
		Order("created_at desc").
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

func UpdateProduct(c *fiber.Ctx) error {
	sellerID, _ := currentUser(c)

	var product models.Product
	if err := database.DB.
		Where("id = ? AND seller_id = ?", c.Params("id"), sellerID).
		First(&product).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}

	var req ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Category = req.Category
	product.Price = req.Price
	product.Stock = req.Stock
	if req.Images != nil {
		product.Images = pq.StringArray(req.Images)
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := database.DB.Save(&product).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update product"})
	}
	return c.JSON(fiber.Map{"product": product})
}

func DeleteProduct(c *fiber.Ctx) error {
	sellerID, _ := currentUser(c)

	result := database.DB.
		Where("id = ? AND seller_id = ?", c.Params("id"), sellerID).
		Delete(&models.Product{})
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete product"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}
	return c.JSON(fiber.Map{"message": "Product deleted successfully"})
}

func GetSellerOrders(c *fiber.Ctx) error {
	sellerID, _ := currentUser(c)
	page, limit := pagination(c, 20)

	query := database.DB.Model(&models.Order{}).Where("seller_id = ?", sellerID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	query.Count(&total)

	var orders []models.Order
	if err := query.
		Preload("Items").
		Order("created_at desc").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&orders).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch orders"})
	}

	return c.JSON(fiber.Map{
		"orders":       orders,
		"total":        total,
		"current_page": page,
		"total_pages":  int(math.Ceil(float64(total) / float64(limit))),
	})
}

type OrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending paid shipped completed cancelled"`
}

func UpdateSellerOrderStatus(c *fiber.Ctx) error {
	sellerID, _ := currentUser(c)

	var req OrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var order models.Order
	if err := database.DB.
		Where("id = ? AND seller_id = ?", c.Params("id"), sellerID).
		First(&order).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
	}

	order.Status = req.Status
	if err := database.DB.Save(&order).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update order"})
	}
	return c.JSON(fiber.Map{"id": order.ID, "status": order.Status})
}

// GetSellerStats aggregates order counts and revenue per status plus the
// product count and average feedback rating for the dashboard.
func GetSellerStats(c *fiber.Ctx) error {
	sellerID, _ := currentUser(c)

	type statusRow struct {
		Status  string
		Count   int64
		Revenue float64
	}
	var rows []statusRow
	database.DB.Model(&models.Order{}).
		Select("status, count(*) as count, coalesce(sum(total), 0) as revenue").
		Where("seller_id = ?", sellerID).
		Group("status").
		Scan(&rows)

	statusMap := fiber.Map{
		models.OrderStatusPending:   int64(0),
		models.OrderStatusPaid:      int64(0),
		models.OrderStatusShipped:   int64(0),
		models.OrderStatusCompleted: int64(0),
		models.OrderStatusCancelled: int64(0),
	}
	var revenue float64
	for _, row := range rows {
		statusMap[row.Status] = row.Count
		revenue += row.Revenue
	}

	var productCount int64
	database.DB.Model(&models.Product{}).Where("seller_id = ?", sellerID).Count(&productCount)

	var feedback struct {
		Avg   float64
		Count int64
	}
	database.DB.Model(&models.Feedback{}).
		Select("coalesce(avg(rating), 0) as avg, count(*) as count").
		Where("seller_id = ?", sellerID).
		Scan(&feedback)

	return c.JSON(fiber.Map{
		"orders":   statusMap,
		"revenue":  revenue,
		"products": productCount,
		"feedback": fiber.Map{"avg_rating": feedback.Avg, "count": feedback.Count},
	})
}

func GetInventory(c *fiber.Ctx) error {
	sellerID, _ := currentUser(c)

	lowStock, _ := strconv.Atoi(c.Query("low", "5"))

	var products []models.Product
	if err := database.DB.
		Select("id", "name", "stock", "images", "price").
		Where("seller_id = ?", sellerID).
		Order("stock asc").
		Find(&products).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch inventory"})
	}

	return c.JSON(fiber.Map{
		"items":               products,
		"low_stock_threshold": lowStock,
	})
}

type InventoryUpdateRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Stock     *int   `json:"stock" validate:"required,min=0"`
}

func UpdateInventory(c *fiber.Ctx) error {
	sellerID, _ := currentUser(c)

	var req InventoryUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	result := database.DB.Model(&models.Product{}).
		Where("id = ? AND seller_id = ?", req.ProductID, sellerID).
		Update("stock", *req.Stock)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update stock"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}
	return c.JSON(fiber.Map{"ok": true, "stock": *req.Stock})
}

func GetSellerFeedback(c *fiber.Ctx) error {
	sellerID, _ := currentUser(c)
	page, limit := pagination(c, 20)

	var total int64
	database.DB.Model(&models.Feedback{}).Where("seller_id = ?", sellerID).Count(&total)

	var feedbacks []models.Feedback
	if err := database.DB.
		Preload("User").
		Where("seller_id = ?", sellerID).
		Order("created_at desc").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&feedbacks).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch feedback"})
	}

	var avg struct{ Avg float64 }
	database.DB.Model(&models.Feedback{}).
		Select("coalesce(avg(rating), 0) as avg").
		Where("seller_id = ?", sellerID).
		Scan(&avg)

	return c.JSON(fiber.Map{
		"feedbacks":      feedbacks,
		"total":          total,
		"average_rating": avg.Avg,
	})
}

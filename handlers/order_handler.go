package handlers

import (
	"errors"
	"math"

	"github.com/deshidirective/deshi_directive/database"
	"github.com/deshidirective/deshi_directive/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"omitempty,min=1"`
}

type CreateOrderRequest struct {
	Items []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	Paid  bool               `json:"paid,omitempty"`
}

// CreateOrder checks out the cart against a single seller, snapshotting
// product names and prices and decrementing stock under a row lock.
func CreateOrder(c *fiber.Ctx) error {
	userID, _ := currentUser(c)

	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var order models.Order
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var items []models.OrderItem
		var total float64
		var sellerID uuid.UUID

		for _, it := range req.Items {
			productID, _ := uuid.Parse(it.ProductID)
			quantity := it.Quantity
			if quantity < 1 {
				quantity = 1
			}

			var product models.Product
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&product, "id = ?", productID).Error; err != nil {
				return errors.New("product not found")
			}
			if product.Stock < quantity {
				return errors.New("insufficient stock for " + product.Name)
			}

			if sellerID == uuid.Nil {
				sellerID = product.SellerID
			} else if sellerID != product.SellerID {
				return errors.New("multiple sellers in cart not supported")
			}

			if err := tx.Model(&product).Update("stock", gorm.Expr("stock - ?", quantity)).Error; err != nil {
				return err
			}

			items = append(items, models.OrderItem{
				ProductID: product.ID,
				Name:      product.Name,
				Price:     product.Price,
				Quantity:  quantity,
			})
			total += product.Price * float64(quantity)
		}

		status := models.OrderStatusPending
		if req.Paid {
			status = models.OrderStatusPaid
		}

		order = models.Order{
			SellerID: sellerID,
			UserID:   userID,
			Items:    items,
			Total:    total,
			Status:   status,
		}
		return tx.Create(&order).Error
	})
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"order_id": order.ID, "status": order.Status})
}

func GetMyOrders(c *fiber.Ctx) error {
	userID, _ := currentUser(c)
	page, limit := pagination(c, 20)

	query := database.DB.Model(&models.Order{}).Where("user_id = ?", userID)

	var total int64
	query.Count(&total)

	var orders []models.Order
	if err := query.
		Preload("Items").
		Preload("Seller").
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

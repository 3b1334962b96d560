package handlers

import (
	"math"
	"time"

	"github.com/deshidirective/deshi_directive/database"
	"github.com/deshidirective/deshi_directive/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// PublicUser trims a profile down to what anonymous visitors may see.
type PublicUser struct {
	ID                  uuid.UUID     `json:"id"`
	Name                string        `json:"name"`
	UserType            string        `json:"user_type"`
	Place               *models.Place `json:"place,omitempty"`
	Phone               *string       `json:"phone,omitempty"`
	BusinessName        *string       `json:"business_name,omitempty"`
	BusinessDescription *string       `json:"business_description,omitempty"`
	BusinessAddress     *string       `json:"business_address,omitempty"`
	BusinessPhone       *string       `json:"business_phone,omitempty"`
	BusinessHours       *string       `json:"business_hours,omitempty"`
	Description         *string       `json:"description,omitempty"`
	CreatedAt           time.Time     `json:"created_at"`
}

func ListUsers(c *fiber.Ctx) error {
	page, limit := pagination(c, 12)

	query := database.DB.Model(&models.User{}).Where("is_active = ?", true)

	if userType := c.Query("type"); userType != "" && userType != "all" {
		query = query.Where("user_type = ?", userType)
	}
	if search := c.Query("search"); search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name ILIKE ? OR business_name ILIKE ?", pattern, pattern)
	}

	var total int64
	query.Count(&total)

	var users []models.User
	if err := query.
		Preload("Place").
		Order("created_at desc").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch users"})
	}

	publicUsers := make([]fiber.Map, 0, len(users))
	for _, user := range users {
		publicUsers = append(publicUsers, fiber.Map{
			"id":            user.ID,
			"name":          user.Name,
			"user_type":     user.UserType,
			"business_name": user.BusinessName,
			"place":         user.Place,
			"created_at":    user.CreatedAt,
		})
	}

	return c.JSON(fiber.Map{
		"users":        publicUsers,
		"total":        total,
		"current_page": page,
		"total_pages":  int(math.Ceil(float64(total) / float64(limit))),
	})
}

// GetUser returns a public profile. Newbie profiles only expose name and
// place; guides and businesses expose their full public listing.
func GetUser(c *fiber.Ctx) error {
	var user models.User
	if err := database.DB.Preload("Place").First(&user, "id = ?", c.Params("id")).Error; err != nil || !user.IsActive {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	if user.UserType == models.UserTypeNewbie {
		return c.JSON(fiber.Map{"user": fiber.Map{
			"id":         user.ID,
			"name":       user.Name,
			"user_type":  user.UserType,
			"place":      user.Place,
			"created_at": user.CreatedAt,
		}})
	}

	return c.JSON(fiber.Map{"user": PublicUser{
		ID:                  user.ID,
		Name:                user.Name,
		UserType:            user.UserType,
		Place:               user.Place,
		Phone:               user.Phone,
		BusinessName:        user.BusinessName,
		BusinessDescription: user.BusinessDescription,
		BusinessAddress:     user.BusinessAddress,
		BusinessPhone:       user.BusinessPhone,
		BusinessHours:       user.BusinessHours,
		Description:         user.Description,
		CreatedAt:           user.CreatedAt,
	}})
}

func GetUserReviews(c *fiber.Ctx) error {
	var reviews []models.Review
	if err := database.DB.
		Where("to_id = ?", c.Params("id")).
		Order("created_at desc").
		Find(&reviews).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch reviews"})
	}
	return c.JSON(fiber.Map{"reviews": reviews})
}

type ReviewRequest struct {
	Rating  *int    `json:"rating" validate:"required,min=0,max=5"`
	Comment *string `json:"comment,omitempty"`
}

// CreateUserReview posts a review against a veteran, shop or restaurant.
// The reviewer's name and picture are snapshotted onto the review.
func CreateUserReview(c *fiber.Ctx) error {
	reviewerID, _ := currentUser(c)

	var req ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var target models.User
	if err := database.DB.First(&target, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "User not available for reviews"})
	}
	if target.UserType != models.UserTypeVeteran && !target.IsBusiness() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "User not available for reviews"})
	}

	var reviewer models.User
	if err := database.DB.First(&reviewer, "id = ?", reviewerID).Error; err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not found"})
	}

	review := models.Review{
		FromID:             reviewer.ID,
		ToID:               target.ID,
		FromName:           &reviewer.Name,
		FromProfilePicture: reviewer.ProfilePictureURL,
		Rating:             *req.Rating,
		Comment:            req.Comment,
	}
	if err := database.DB.Create(&review).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create review"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"review_id": review.ID})
}

type FeedbackRequest struct {
	Rating  *int    `json:"rating" validate:"required,min=1,max=5"`
	Comment *string `json:"comment,omitempty"`
}

func CreateUserFeedback(c *fiber.Ctx) error {
	userID, _ := currentUser(c)

	var req FeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var seller models.User
	if err := database.DB.First(&seller, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Seller not found"})
	}

	feedback := models.Feedback{
		SellerID: seller.ID,
		UserID:   &userID,
		Rating:   *req.Rating,
		Comment:  req.Comment,
	}
	if err := database.DB.Create(&feedback).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create feedback"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": feedback.ID})
}

package handlers

import (
	"errors"
	"math"
	"strings"

	"github.com/deshidirective/deshi_directive/database"
	"github.com/deshidirective/deshi_directive/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func AdminListUsers(c *fiber.Ctx) error {
	page, limit := pagination(c, 10)

	query := database.DB.Model(&models.User{})

	if userType := c.Query("user_type"); userType != "" && userType != "all" {
		query = query.Where("user_type = ?", userType)
	}
	if isActive := c.Query("is_active"); isActive != "" && isActive != "all" {
		query = query.Where("is_active = ?", isActive == "true")
	}
	if search := c.Query("search"); search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ? OR business_name ILIKE ?", pattern, pattern, pattern)
	}

	var total, active, inactive int64
	query.Count(&total)
	query.Session(&gorm.Session{}).Where("is_active = ?", true).Count(&active)
	query.Session(&gorm.Session{}).Where("is_active = ?", false).Count(&inactive)

	var users []models.User
	if err := query.
		Preload("Place").
		Order("created_at desc").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch users"})
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	return c.JSON(fiber.Map{
		"users": users,
		"pagination": fiber.Map{
			"current_page": page,
			"total_pages":  totalPages,
			"total":        total,
			"has_next":     page < totalPages,
			"has_prev":     page > 1,
		},
		"stats": fiber.Map{
			"total":    total,
			"active":   active,
			"inactive": inactive,
		},
	})
}

type AdminUserRequest struct {
	Name     string  `json:"name" validate:"required,min=2"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6"`
	UserType string  `json:"user_type" validate:"required,oneof=newbie veteran local_admin admin local_shop restaurant"`
	Place    *string `json:"place,omitempty" validate:"omitempty,uuid"`
	IsActive *bool   `json:"is_active,omitempty"`
}

func AdminCreateUser(c *fiber.Ctx) error {
	var req AdminUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
		UserType: req.UserType,
	}
	if req.Place != nil {
		placeID, _ := uuid.Parse(*req.Place)
		user.PlaceID = &placeID
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	} else {
		user.IsActive = true
	}

	if err := database.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create user"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "User created successfully", "user": user})
}

func AdminGetUser(c *fiber.Ctx) error {
	var user models.User
	if err := database.DB.Preload("Place").First(&user, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}
	return c.JSON(fiber.Map{"user": user})
}

type AdminUserUpdateRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" validate:"omitempty,email"`
	UserType *string `json:"user_type" validate:"omitempty,oneof=newbie veteran local_admin admin local_shop restaurant"`
	Place    *string `json:"place" validate:"omitempty,uuid"`
	IsActive *bool   `json:"is_active"`
}

func AdminUpdateUser(c *fiber.Ctx) error {
	var user models.User
	if err := database.DB.First(&user, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	var req AdminUserUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = strings.ToLower(*req.Email)
	}
	if req.UserType != nil {
		user.UserType = *req.UserType
	}
	if req.Place != nil {
		placeID, _ := uuid.Parse(*req.Place)
		user.PlaceID = &placeID
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := database.DB.Save(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update user"})
	}

	return c.JSON(fiber.Map{"message": "User updated successfully", "user": user})
}

func AdminListPlaces(c *fiber.Ctx) error {
	page, limit := pagination(c, 10)

	query := database.DB.Model(&models.Place{})

	if search := c.Query("search"); search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name ILIKE ? OR city ILIKE ? OR state ILIKE ? OR country ILIKE ?",
			pattern, pattern, pattern, pattern)
	}
	if isActive := c.Query("is_active"); isActive != "" {
		query = query.Where("is_active = ?", isActive == "true")
	}

	var total, active int64
	query.Count(&total)
	query.Session(&gorm.Session{}).Where("is_active = ?", true).Count(&active)

	var places []models.Place
	if err := query.
		Order("created_at desc").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&places).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch places"})
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	return c.JSON(fiber.Map{
		"places": places,
		"pagination": fiber.Map{
			"current_page": page,
			"total_pages":  totalPages,
			"total":        total,
			"has_next":     page < totalPages,
			"has_prev":     page > 1,
		},
		"stats": fiber.Map{
			"total":    total,
			"active":   active,
			"inactive": total - active,
		},
	})
}

type PlaceRequest struct {
	Name        string  `json:"name" validate:"required,min=2"`
	Description string  `json:"description" validate:"required,min=10"`
	Country     string  `json:"country" validate:"required"`
	State       string  `json:"state" validate:"required"`
	City        string  `json:"city" validate:"required"`
	Image       *string `json:"image,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

func AdminCreatePlace(c *fiber.Ctx) error {
	var req PlaceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	place := models.Place{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Country:     strings.TrimSpace(req.Country),
		State:       strings.TrimSpace(req.State),
		City:        strings.TrimSpace(req.City),
		Image:       req.Image,
	}
	if req.IsActive != nil {
		place.IsActive = *req.IsActive
	} else {
		place.IsActive = true
	}

	if err := database.DB.Create(&place).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "A place with this name already exists in this city"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create place"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Place created successfully", "place": place})
}

func AdminGetPlace(c *fiber.Ctx) error {
	var place models.Place
	if err := database.DB.First(&place, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Place not found"})
	}
	return c.JSON(fiber.Map{"place": place})
}

func AdminUpdatePlace(c *fiber.Ctx) error {
	var place models.Place
	if err := database.DB.First(&place, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Place not found"})
	}

	var req PlaceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	place.Name = strings.TrimSpace(req.Name)
	place.Description = strings.TrimSpace(req.Description)
	place.Country = strings.TrimSpace(req.Country)
	place.State = strings.TrimSpace(req.State)
	place.City = strings.TrimSpace(req.City)
	if req.Image != nil {
		place.Image = req.Image
	}
	if req.IsActive != nil {
		place.IsActive = *req.IsActive
	}

	if err := database.DB.Save(&place).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "A place with this name already exists in this city"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update place"})
	}

	return c.JSON(fiber.Map{"message": "Place updated successfully", "place": place})
}

func AdminDeletePlace(c *fiber.Ctx) error {
	result := database.DB.Delete(&models.Place{}, "id = ?", c.Params("id"))
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete place"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Place not found"})
	}
	return c.JSON(fiber.Map{"message": "Place deleted successfully"})
}

func AdminListBusinesses(c *fiber.Ctx) error {
	var businesses []models.User
	if err := database.DB.
		Preload("Place").
		Where("user_type IN ?", []string{models.UserTypeLocalShop, models.UserTypeRestaurant}).
		Find(&businesses).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch businesses"})
	}
	return c.JSON(fiber.Map{"businesses": businesses})
}

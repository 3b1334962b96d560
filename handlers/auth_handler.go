package handlers

import (
	"time"

	config "github.com/deshidirective/deshi_directive/configs"
	"github.com/deshidirective/deshi_directive/database"
	"github.com/deshidirective/deshi_directive/models"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"errors"
)

var validate = validator.New()

// currentUser extracts the caller's id and user type from the verified JWT.
func currentUser(c *fiber.Ctx) (uuid.UUID, string) {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	rawID, _ := claims["user_id"].(string)
	userID, _ := uuid.Parse(rawID)
	userType, _ := claims["user_type"].(string)
	return userID, userType
}

type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	UserType string `json:"user_type" validate:"required,oneof=newbie veteran local_shop restaurant"`

	Place *string `json:"place,omitempty" validate:"omitempty,uuid"`
	Phone *string `json:"phone,omitempty"`

	BusinessName        *string `json:"business_name,omitempty"`
	BusinessDescription *string `json:"business_description,omitempty"`
	BusinessAddress     *string `json:"business_address,omitempty"`
	BusinessPhone       *string `json:"business_phone,omitempty"`
	BusinessHours       *string `json:"business_hours,omitempty"`

	Description    *string `json:"description,omitempty"`
	ProfilePicture *string `json:"profile_picture,omitempty"`
}

// validateRoleFields enforces the per-role required fields: veterans and
// businesses are tied to a place and phone, businesses carry the full
// business profile, veterans a guide description.
func validateRoleFields(req *SignupRequest) string {
	needsPlace := req.UserType == models.UserTypeVeteran ||
		req.UserType == models.UserTypeLocalShop ||
		req.UserType == models.UserTypeRestaurant

	if needsPlace {
		if req.Place == nil {
			return "Place selection is required for this user type"
		}
		if req.Phone == nil || *req.Phone == "" {
			return "Phone number is required for this user type"
		}
	}

	if req.UserType == models.UserTypeVeteran {
		if req.Description == nil || len(*req.Description) < 10 {
			return "Description must be at least 10 characters long"
		}
	}

	if req.UserType == models.UserTypeLocalShop || req.UserType == models.UserTypeRestaurant {
		if req.BusinessName == nil || len(*req.BusinessName) < 2 {
			return "Business name must be at least 2 characters long"
		}
		if req.BusinessDescription == nil || len(*req.BusinessDescription) < 10 {
			return "Business description must be at least 10 characters long"
		}
		if req.BusinessAddress == nil || len(*req.BusinessAddress) < 5 {
			return "Business address must be at least 5 characters long"
		}
		if req.BusinessPhone == nil || len(*req.BusinessPhone) < 10 {
			return "Business phone must be at least 10 characters long"
		}
		if req.BusinessHours == nil || len(*req.BusinessHours) < 5 {
			return "Business hours must be specified"
		}
	}

	return ""
}

func issueToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":   user.ID.String(),
		"user_type": user.UserType,
		"exp":       time.Now().Add(time.Hour * 24 * 7).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Config("JWT_SECRET")))
}

func setAuthCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    token,
		HTTPOnly: true,
		SameSite: "Lax",
		MaxAge:   int((time.Hour * 24 * 7).Seconds()),
	})
}

func RegisterUser(c *fiber.Ctx) error {
	var req SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if msg := validateRoleFields(&req); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	var placeID *uuid.UUID
	if req.Place != nil {
		id, _ := uuid.Parse(*req.Place)
		var place models.Place
		if err := database.DB.First(&place, "id = ?", id).Error; err != nil || !place.IsActive {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid or inactive place selected"})
		}
		placeID = &id
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	user := models.User{
		Name:                req.Name,
		Email:               req.Email,
		Password:            string(hashedPassword),
		UserType:            req.UserType,
		PlaceID:             placeID,
		Phone:               req.Phone,
		BusinessName:        req.BusinessName,
		BusinessDescription: req.BusinessDescription,
		BusinessAddress:     req.BusinessAddress,
		BusinessPhone:       req.BusinessPhone,
		BusinessHours:       req.BusinessHours,
		Description:         req.Description,
		ProfilePictureURL:   req.ProfilePicture,
	}

	if err := database.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "User already exists with this email"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create user"})
	}

	database.DB.Preload("Place").First(&user, "id = ?", user.ID)

	token, err := issueToken(&user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create token"})
	}
	setAuthCookie(c, token)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User created successfully",
		"token":   token,
		"user":    user,
	})
}

type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func LoginUser(c *fiber.Ctx) error {
	var req SigninRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var user models.User
	if err := database.DB.Preload("Place").Where("email = ?", req.Email).First(&user).Error; err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid email or password"})
	}
	if !user.IsActive {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Account is deactivated"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid email or password"})
	}

	token, err := issueToken(&user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create token"})
	}
	setAuthCookie(c, token)

	return c.JSON(fiber.Map{"token": token, "user": user})
}

func GetMe(c *fiber.Ctx) error {
	userID, _ := currentUser(c)

	var user models.User
	if err := database.DB.Preload("Place").First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not found"})
	}
	return c.JSON(fiber.Map{"user": user})
}

type UpdateProfileRequest struct {
	Name                *string `json:"name"`
	Phone               *string `json:"phone"`
	Description         *string `json:"description"`
	ProfilePicture      *string `json:"profile_picture"`
	BusinessName        *string `json:"business_name"`
	BusinessDescription *string `json:"business_description"`
	BusinessAddress     *string `json:"business_address"`
	BusinessPhone       *string `json:"business_phone"`
	BusinessHours       *string `json:"business_hours"`
}

func UpdateProfile(c *fiber.Ctx) error {
	userID, _ := currentUser(c)

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.Description != nil {
		user.Description = req.Description
	}
	if req.ProfilePicture != nil {
		user.ProfilePictureURL = req.ProfilePicture
	}
	if req.BusinessName != nil {
		user.BusinessName = req.BusinessName
	}
	if req.BusinessDescription != nil {
		user.BusinessDescription = req.BusinessDescription
	}
	if req.BusinessAddress != nil {
		user.BusinessAddress = req.BusinessAddress
	}
	if req.BusinessPhone != nil {
		user.BusinessPhone = req.BusinessPhone
	}
	if req.BusinessHours != nil {
		user.BusinessHours = req.BusinessHours
	}

	database.DB.Save(&user)

	return c.JSON(fiber.Map{"user": user})
}

package handlers

import (
	"time"

	"github.com/deshidirective/deshi_directive/database"
	"github.com/deshidirective/deshi_directive/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func ListEvents(c *fiber.Ctx) error {
	var events []models.Event
	if err := database.DB.
		Where("is_active = ?", true).
		Order("start_date asc").
		Limit(50).
		Find(&events).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch events"})
	}
	return c.JSON(fiber.Map{"events": events})
}

type EventRequest struct {
	Title       string  `json:"title" validate:"required,min=2"`
	Description *string `json:"description,omitempty"`
	StartDate   string  `json:"start_date" validate:"required"`
	EndDate     *string `json:"end_date,omitempty"`
	Location    *string `json:"location,omitempty"`
}

func CreateEvent(c *fiber.Ctx) error {
	var req EventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	startDate, err := time.Parse(time.RFC3339, req.StartDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid start date"})
	}

	event := models.Event{
		Title:       req.Title,
		Description: req.Description,
		StartDate:   startDate,
		Location:    req.Location,
		IsActive:    true,
	}
	if req.EndDate != nil {
		endDate, err := time.Parse(time.RFC3339, *req.EndDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid end date"})
		}
		event.EndDate = &endDate
	}

	if err := database.DB.Create(&event).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create event"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"event": event})
}

func ListFundraisers(c *fiber.Ctx) error {
	var fundraisers []models.Fundraiser
	if err := database.DB.
		Where("is_active = ?", true).
		Order("created_at desc").
		Limit(50).
		Find(&fundraisers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch fundraisers"})
	}
	return c.JSON(fiber.Map{"fundraisers": fundraisers})
}

type FundraiserRequest struct {
	Title       string   `json:"title" validate:"required,min=2"`
	Description *string  `json:"description,omitempty"`
	Goal        *float64 `json:"goal" validate:"required,gt=0"`
}

func CreateFundraiser(c *fiber.Ctx) error {
	creatorID, _ := currentUser(c)

	var req FundraiserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	fundraiser := models.Fundraiser{
		Title:       req.Title,
		Description: req.Description,
		Goal:        *req.Goal,
		CreatorID:   creatorID,
		IsActive:    true,
	}
	if err := database.DB.Create(&fundraiser).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create fundraiser"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"fundraiser": fundraiser})
}

type DonateRequest struct {
	FundraiserID string   `json:"fundraiser_id" validate:"required,uuid"`
	Amount       *float64 `json:"amount" validate:"required,gt=0"`
}

// Donate records the donation and bumps the raised total under a row lock
// so simultaneous donations don't lose updates.
func Donate(c *fiber.Ctx) error {
	userID, _ := currentUser(c)

	var req DonateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	fundraiserID, _ := uuid.Parse(req.FundraiserID)

	var fundraiser models.Fundraiser
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&fundraiser, "id = ?", fundraiserID).Error; err != nil {
			return err
		}

		donation := models.Donation{
			FundraiserID: fundraiser.ID,
			UserID:       userID,
			Amount:       *req.Amount,
		}
		if err := tx.Create(&donation).Error; err != nil {
			return err
		}

		fundraiser.Raised += *req.Amount
		return tx.Model(&fundraiser).Update("raised", fundraiser.Raised).Error
	})
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Fundraiser not found"})
	}

	return c.JSON(fiber.Map{"ok": true, "raised": fundraiser.Raised})
}

func ListCommunityReviews(c *fiber.Ctx) error {
	var reviews []models.Review
	if err := database.DB.
		Order("created_at desc").
		Limit(50).
		Find(&reviews).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch reviews"})
	}
	return c.JSON(fiber.Map{"reviews": reviews})
}

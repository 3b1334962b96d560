package handlers

import (
	"errors"
	"fmt"
	"log"
	"time"

	config "github.com/deshidirective/deshi_directive/configs"
	"github.com/deshidirective/deshi_directive/database"
	"github.com/deshidirective/deshi_directive/models"
	"github.com/deshidirective/deshi_directive/notifications"
	"github.com/deshidirective/deshi_directive/payments"
	"github.com/deshidirective/deshi_directive/tours"
	ws "github.com/deshidirective/deshi_directive/websocket"
	websocketcontrib "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func tourError(c *fiber.Ctx, err error) error {
	return c.Status(tours.HTTPStatus(err)).JSON(fiber.Map{"error": err.Error()})
}

// preloadTourRequest loads a request with its participants, place and the
// negotiation log in insertion order.
func preloadTourRequest(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Offers", func(db *gorm.DB) *gorm.DB {
			return db.Order("tour_offers.id ASC")
		}).
		Preload("Newbie").
		Preload("Veteran").
		Preload("Place")
}

type CreateTourRequestBody struct {
	Veteran       string   `json:"veteran" validate:"required,uuid"`
	Place         string   `json:"place" validate:"required,uuid"`
	StartTime     string   `json:"start_time" validate:"required"`
	EndTime       string   `json:"end_time" validate:"required"`
	EstimatePrice *float64 `json:"estimate_price,omitempty"`
	NewbieOffer   *float64 `json:"newbie_offer,omitempty"`
}

func CreateTourRequest(c *fiber.Ctx) error {
	newbieID, userType := currentUser(c)

	var req CreateTourRequestBody
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		return tourError(c, tours.Validationf("invalid start time"))
	}
	endTime, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		return tourError(c, tours.Validationf("invalid end time"))
	}
	if err := tours.ValidateWindow(startTime, endTime); err != nil {
		return tourError(c, err)
	}

	veteranID, _ := uuid.Parse(req.Veteran)
	var veteran models.User
	if err := database.DB.First(&veteran, "id = ?", veteranID).Error; err != nil {
		return tourError(c, tours.NotFoundf("tour guide not found"))
	}
	if err := tours.AuthorizeCreation(userType, veteran.UserType); err != nil {
		return tourError(c, err)
	}

	placeID, _ := uuid.Parse(req.Place)
	var place models.Place
	if err := database.DB.First(&place, "id = ?", placeID).Error; err != nil {
		return tourError(c, tours.NotFoundf("place not found"))
	}
	if !place.IsActive {
		return tourError(c, tours.Validationf("place is not active"))
	}

	if req.NewbieOffer != nil && *req.NewbieOffer <= 0 {
		return tourError(c, tours.Validationf("offer amount must be a positive number"))
	}

	tr := models.TourRequest{
		NewbieID:      newbieID,
		VeteranID:     veteranID,
		PlaceID:       placeID,
		StartTime:     startTime,
		EndTime:       endTime,
		EstimatePrice: req.EstimatePrice,
		Status:        tours.StatusRequested,
	}
	if req.NewbieOffer != nil {
		tr.NewbieOffer = req.NewbieOffer
		tr.Offers = []models.TourOffer{{
			Who:    tours.PartyNewbie,
			Amount: *req.NewbieOffer,
			At:     time.Now(),
		}}
	}

	if err := database.DB.Create(&tr).Error; err != nil {
		log.Printf("🔥 Failed to create tour request: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create tour request"})
	}

	if err := preloadTourRequest(database.DB).First(&tr, "id = ?", tr.ID).Error; err == nil {
		go notifications.SendEmail(tr.Veteran.Name, tr.Veteran.Email, "New Tour Request",
			fmt.Sprintf("<h1>New Tour Request</h1><p>A tourist has requested a tour of %s. Log in to review the offer.</p>", tr.Place.Name))
	}

	ws.Notify(&ws.TourEvent{
		TourRequestID: tr.ID,
		Type:          "requested",
		Status:        tr.Status,
		Recipients:    []uuid.UUID{tr.VeteranID},
	})

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"tour_request": tr})
}

func ListTourRequests(c *fiber.Ctx) error {
	var requests []models.TourRequest
	if err := preloadTourRequest(database.DB).
		Order("created_at desc").
		Limit(100).
		Find(&requests).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch tour requests"})
	}
	return c.JSON(fiber.Map{"requests": requests})
}

// GetMyTourRequests lists requests where the caller is a participant,
// newest first. `?role=veteran` narrows to requests the caller guides,
// `?role=newbie` to requests the caller created.
func GetMyTourRequests(c *fiber.Ctx) error {
	userID, _ := currentUser(c)

	query := preloadTourRequest(database.DB)
	switch c.Query("role") {
	case "veteran":
		query = query.Where("veteran_id = ?", userID)
	case "newbie":
		query = query.Where("newbie_id = ?", userID)
	default:
		query = query.Where("newbie_id = ? OR veteran_id = ?", userID, userID)
	}

	var requests []models.TourRequest
	if err := query.Order("created_at desc").Find(&requests).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch tour requests"})
	}
	return c.JSON(fiber.Map{"requests": requests})
}

func GetTourRequest(c *fiber.Ctx) error {
	var tr models.TourRequest
	if err := preloadTourRequest(database.DB).First(&tr, "id = ?", c.Params("id")).Error; err != nil {
		return tourError(c, tours.NotFoundf("tour request not found"))
	}
	return c.JSON(fiber.Map{"tour_request": tr})
}

type UpdateTourRequestBody struct {
	NewbieOffer  *float64 `json:"newbie_offer"`
	VeteranOffer *float64 `json:"veteran_offer"`
	Status       *string  `json:"status"`
}

// UpdateTourRequest handles both offer submission (newbie_offer or
// veteran_offer, restricted to the matching party) and status changes
// (confirmed or cancelled). The row is locked for the duration of the
// transaction so concurrent offers cannot race each other.
func UpdateTourRequest(c *fiber.Ctx) error {
	userID, _ := currentUser(c)

	var req UpdateTourRequestBody
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if req.NewbieOffer == nil && req.VeteranOffer == nil && req.Status == nil {
		return tourError(c, tours.Validationf("nothing to update"))
	}
	if req.NewbieOffer != nil && req.VeteranOffer != nil {
		return tourError(c, tours.Validationf("submit one offer at a time"))
	}

	var tr models.TourRequest
	var eventType string
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := preloadTourRequest(tx.Clauses(clause.Locking{Strength: "UPDATE"})).
			First(&tr, "id = ?", c.Params("id")).Error; err != nil {
			return tours.NotFoundf("tour request not found")
		}

		party, ok := tours.PartyOf(&tr, userID)
		if !ok {
			return tours.Authorizationf("you are not a participant of this tour request")
		}

		var offer *models.TourOffer
		if req.NewbieOffer != nil {
			if party != tours.PartyNewbie {
				return tours.Authorizationf("only the tourist may submit a newbie offer")
			}
			o, err := tours.ApplyOffer(&tr, userID, *req.NewbieOffer, time.Now())
			if err != nil {
				return err
			}
			offer = o
			eventType = "offered"
		}
		if req.VeteranOffer != nil {
			if party != tours.PartyVeteran {
				return tours.Authorizationf("only the tour guide may submit a veteran offer")
			}
			o, err := tours.ApplyOffer(&tr, userID, *req.VeteranOffer, time.Now())
			if err != nil {
				return err
			}
			offer = o
			eventType = "offered"
		}

		if req.Status != nil {
			switch *req.Status {
			case tours.StatusConfirmed:
				if err := tours.Confirm(&tr, userID); err != nil {
					return err
				}
				eventType = "confirmed"
			case tours.StatusCancelled:
				if err := tours.Cancel(&tr, userID); err != nil {
					return err
				}
				eventType = "cancelled"
			default:
				return tours.Validationf("status must be %s or %s", tours.StatusConfirmed, tours.StatusCancelled)
			}
		}

		if offer != nil {
			if err := tx.Create(offer).Error; err != nil {
				return err
			}
		}
		return tx.Model(&models.TourRequest{}).
			Where("id = ?", tr.ID).
			Updates(map[string]interface{}{
				"status":        tr.Status,
				"newbie_offer":  tr.NewbieOffer,
				"veteran_offer": tr.VeteranOffer,
			}).Error
	})
	if err != nil {
		return tourError(c, err)
	}

	if eventType == "confirmed" {
		go notifications.SendEmail(tr.Newbie.Name, tr.Newbie.Email, "Tour Confirmed",
			"<h1>Tour Confirmed</h1><p>Your tour has been confirmed. Complete the payment to finalize it.</p>")
		go notifications.SendEmail(tr.Veteran.Name, tr.Veteran.Email, "Tour Confirmed",
			"<h1>Tour Confirmed</h1><p>The tour terms were accepted. Payment is pending.</p>")
	}

	ws.Notify(&ws.TourEvent{
		TourRequestID: tr.ID,
		Type:          eventType,
		Status:        tr.Status,
		Recipients:    []uuid.UUID{tr.NewbieID, tr.VeteranID},
	})

	return c.JSON(fiber.Map{"tour_request": tr})
}

type PayTourRequestBody struct {
	CardNumber string   `json:"card_number" validate:"required"`
	CardName   string   `json:"card_name" validate:"required"`
	Expiry     string   `json:"expiry" validate:"required"`
	CVV        string   `json:"cvv" validate:"required"`
	Amount     *float64 `json:"amount" validate:"required"`
}

// PayTourRequest captures the fake card payment for a confirmed request and
// completes the negotiation. The unique index on payments.tour_request_id
// backs up the state guard against double capture.
func PayTourRequest(c *fiber.Ctx) error {
	userID, _ := currentUser(c)

	var req PayTourRequestBody
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var tr models.TourRequest
	var payment *models.Payment
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := preloadTourRequest(tx.Clauses(clause.Locking{Strength: "UPDATE"})).
			First(&tr, "id = ?", c.Params("id")).Error; err != nil {
			return tours.NotFoundf("tour request not found")
		}

		if userID != tr.NewbieID {
			return tours.Authorizationf("only the tourist may pay for this tour")
		}

		p, err := payments.Capture(&tr, payments.Card{
			Number: req.CardNumber,
			Name:   req.CardName,
			Expiry: req.Expiry,
			CVV:    req.CVV,
		}, *req.Amount, time.Now())
		if err != nil {
			return err
		}
		payment = p

		if err := tx.Create(payment).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return tours.InvalidStatef("tour request is already paid")
			}
			return err
		}
		return tx.Model(&models.TourRequest{}).
			Where("id = ?", tr.ID).
			Update("status", tr.Status).Error
	})
	if err != nil {
		return tourError(c, err)
	}

	go notifications.SendEmail(tr.Newbie.Name, tr.Newbie.Email, "Payment Received",
		"<h1>Payment Received</h1><p>Your tour payment went through. Enjoy the tour!</p>")
	go notifications.SendEmail(tr.Veteran.Name, tr.Veteran.Email, "Tour Paid",
		"<h1>Tour Paid</h1><p>The tourist has completed the payment for your tour.</p>")

	ws.Notify(&ws.TourEvent{
		TourRequestID: tr.ID,
		Type:          "paid",
		Status:        tr.Status,
		Recipients:    []uuid.UUID{tr.NewbieID, tr.VeteranID},
	})

	return c.JSON(fiber.Map{"payment": payment, "tour_request": tr})
}

// ServeWs upgrades the connection and registers the client with the
// notification hub once it authenticates with its JWT.
func ServeWs(c *websocketcontrib.Conn) {
	type AuthMessage struct {
		Type  string `json:"type"`
		Token string `json:"token"`
	}
	var authMsg AuthMessage
	if err := c.ReadJSON(&authMsg); err != nil || authMsg.Type != "auth" {
		_ = c.WriteJSON(fiber.Map{"error": "Invalid or missing auth message"})
		c.Close()
		return
	}

	claims, err := parseToken(authMsg.Token)
	if err != nil {
		_ = c.WriteJSON(fiber.Map{"error": "Invalid token"})
		c.Close()
		return
	}

	rawID, _ := claims["user_id"].(string)
	userID, err := uuid.Parse(rawID)
	if err != nil {
		_ = c.WriteJSON(fiber.Map{"error": "Invalid user ID"})
		c.Close()
		return
	}

	client := &ws.Client{UserID: userID, Conn: c}
	ws.Register <- client
	defer func() {
		ws.Unregister <- client
		c.Close()
	}()

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}
}

func parseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.Config("JWT_SECRET")), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}

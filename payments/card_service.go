package payments

import (
	"regexp"
	"strings"
	"time"

	"github.com/deshidirective/deshi_directive/models"
	"github.com/deshidirective/deshi_directive/tours"
)

// Card is the card-shaped payment input. This is a deterministic stand-in
// for a gateway: any well-formed card is accepted.
type Card struct {
	Number string
	Name   string
	Expiry string
	CVV    string
}

var (
	cardNumberRe = regexp.MustCompile(`^\d{16}$`)
	cvvRe        = regexp.MustCompile(`^\d{3,4}$`)
)

// ValidateCard checks the card fields without touching the request state.
func ValidateCard(card Card) error {
	if !cardNumberRe.MatchString(card.Number) {
		return tours.Validationf("card number must be 16 digits")
	}
	if strings.TrimSpace(card.Name) == "" {
		return tours.Validationf("card name is required")
	}
	if strings.TrimSpace(card.Expiry) == "" {
		return tours.Validationf("card expiry is required")
	}
	if !cvvRe.MatchString(card.CVV) {
		return tours.Validationf("invalid cvv")
	}
	return nil
}

// Capture finalizes a confirmed tour request: it builds the immutable
// Payment record and moves the request to completed. The state guard makes
// the call non-idempotent on purpose; a second capture sees a completed
// request and is rejected. The caller persists the payment and the request
// in one transaction.
func Capture(tr *models.TourRequest, card Card, amount float64, now time.Time) (*models.Payment, error) {
	if err := ValidateCard(card); err != nil {
		return nil, err
	}
	if amount <= 0 {
		return nil, tours.Validationf("payment amount must be a positive number")
	}
	if err := tours.Complete(tr); err != nil {
		return nil, err
	}
	return &models.Payment{
		TourRequestID: tr.ID,
		CardNumber:    card.Number,
		CardName:      card.Name,
		Expiry:        card.Expiry,
		CVV:           card.CVV,
		Amount:        amount,
		CreatedAt:     now,
	}, nil
}

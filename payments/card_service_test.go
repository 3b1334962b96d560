package payments_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/deshidirective/deshi_directive/models"
	"github.com/deshidirective/deshi_directive/payments"
	"github.com/deshidirective/deshi_directive/tours"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func validCard() payments.Card {
	return payments.Card{
		Number: "4242424242424242",
		Name:   "Asha Rahman",
		Expiry: "12/28",
		CVV:    "123",
	}
}

func confirmedRequest(t *testing.T) *models.TourRequest {
	t.Helper()
	tr := &models.TourRequest{
		ID:        uuid.New(),
		NewbieID:  uuid.New(),
		VeteranID: uuid.New(),
		Status:    tours.StatusConfirmed,
	}
	return tr
}

func TestValidateCard(t *testing.T) {
	assert.NoError(t, payments.ValidateCard(validCard()))

	cases := map[string]payments.Card{
		"short number":      {Number: "4242", Name: "A", Expiry: "12/28", CVV: "123"},
		"letters in number": {Number: "4242abcd42424242", Name: "A", Expiry: "12/28", CVV: "123"},
		"missing name":      {Number: "4242424242424242", Name: "  ", Expiry: "12/28", CVV: "123"},
		"missing expiry":    {Number: "4242424242424242", Name: "A", Expiry: "", CVV: "123"},
		"bad cvv":           {Number: "4242424242424242", Name: "A", Expiry: "12/28", CVV: "12"},
	}
	for name, card := range cases {
		err := payments.ValidateCard(card)
		assert.Error(t, err, name)
		assert.Equal(t, http.StatusBadRequest, tours.HTTPStatus(err), name)
	}

	// Four digit CVVs are fine.
	card := validCard()
	card.CVV = "1234"
	assert.NoError(t, payments.ValidateCard(card))
}

func TestCapture_CompletesConfirmedRequest(t *testing.T) {
	tr := confirmedRequest(t)
	now := time.Now()

	payment, err := payments.Capture(tr, validCard(), 250, now)
	assert.NoError(t, err)
	if assert.NotNil(t, payment) {
		assert.Equal(t, tr.ID, payment.TourRequestID)
		assert.Equal(t, 250.0, payment.Amount)
		assert.Equal(t, now, payment.CreatedAt)
	}
	assert.Equal(t, tours.StatusCompleted, tr.Status)
}

func TestCapture_RequiresConfirmedStatus(t *testing.T) {
	for _, status := range []string{tours.StatusRequested, tours.StatusOffered, tours.StatusCancelled} {
		tr := confirmedRequest(t)
		tr.Status = status

		payment, err := payments.Capture(tr, validCard(), 250, time.Now())
		assert.Nil(t, payment)
		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, tours.HTTPStatus(err))
		assert.Equal(t, status, tr.Status)
	}
}

func TestCapture_SecondCaptureIsRejected(t *testing.T) {
	tr := confirmedRequest(t)

	_, err := payments.Capture(tr, validCard(), 250, time.Now())
	assert.NoError(t, err)

	payment, err := payments.Capture(tr, validCard(), 250, time.Now())
	assert.Nil(t, payment)
	assert.Error(t, err)
	assert.Equal(t, http.StatusConflict, tours.HTTPStatus(err))
}

func TestCapture_RejectsBadInputBeforeTouchingState(t *testing.T) {
	tr := confirmedRequest(t)

	_, err := payments.Capture(tr, payments.Card{}, 250, time.Now())
	assert.Error(t, err)
	assert.Equal(t, tours.StatusConfirmed, tr.Status)

	_, err = payments.Capture(tr, validCard(), 0, time.Now())
	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, tours.HTTPStatus(err))
	assert.Equal(t, tours.StatusConfirmed, tr.Status)
}

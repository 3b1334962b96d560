package tours_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/deshidirective/deshi_directive/tours"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestValidateWindow(t *testing.T) {
	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	assert.NoError(t, tours.ValidateWindow(start, start.Add(2*time.Hour)))

	err := tours.ValidateWindow(start, start)
	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, tours.HTTPStatus(err))

	err = tours.ValidateWindow(start, start.Add(-time.Hour))
	assert.Error(t, err)

	err = tours.ValidateWindow(time.Time{}, start)
	assert.Error(t, err)
}

func TestApplyOffer_OpeningOffer(t *testing.T) {
	tr := newRequest()
	now := time.Now()

	offer, err := tours.ApplyOffer(tr, tr.NewbieID, 120, now)
	assert.NoError(t, err)
	if assert.NotNil(t, offer) {
		assert.Equal(t, tours.PartyNewbie, offer.Who)
		assert.Equal(t, 120.0, offer.Amount)
		assert.Equal(t, now, offer.At)
	}
	assert.Equal(t, tours.StatusOffered, tr.Status)
	assert.Len(t, tr.Offers, 1)
}

func TestApplyOffer_VeteranCannotOpen(t *testing.T) {
	tr := newRequest()

	_, err := tours.ApplyOffer(tr, tr.VeteranID, 120, time.Now())
	assert.Error(t, err)
	assert.Equal(t, http.StatusForbidden, tours.HTTPStatus(err))
	assert.Equal(t, tours.StatusRequested, tr.Status)
	assert.Empty(t, tr.Offers)
}

func TestApplyOffer_EnforcesTurnTaking(t *testing.T) {
	tr := newRequest()
	now := time.Now()

	_, err := tours.ApplyOffer(tr, tr.NewbieID, 100, now)
	assert.NoError(t, err)

	// Same party twice in a row is rejected and nothing is appended.
	_, err = tours.ApplyOffer(tr, tr.NewbieID, 90, now)
	assert.Error(t, err)
	assert.Equal(t, http.StatusForbidden, tours.HTTPStatus(err))
	assert.Len(t, tr.Offers, 1)

	_, err = tours.ApplyOffer(tr, tr.VeteranID, 150, now)
	assert.NoError(t, err)
	assert.Len(t, tr.Offers, 2)
}

func TestApplyOffer_RejectsOutsiders(t *testing.T) {
	tr := newRequest()

	_, err := tours.ApplyOffer(tr, uuid.New(), 100, time.Now())
	assert.Error(t, err)
	assert.Equal(t, http.StatusForbidden, tours.HTTPStatus(err))
}

func TestApplyOffer_RejectsNonPositiveAmounts(t *testing.T) {
	tr := newRequest()

	for _, amount := range []float64{0, -1, -250} {
		_, err := tours.ApplyOffer(tr, tr.NewbieID, amount, time.Now())
		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, tours.HTTPStatus(err))
	}
	assert.Empty(t, tr.Offers)
}

func TestApplyOffer_CachedFieldsFollowTheLog(t *testing.T) {
	tr := newRequest()
	now := time.Now()

	_, err := tours.ApplyOffer(tr, tr.NewbieID, 100, now)
	assert.NoError(t, err)
	if assert.NotNil(t, tr.NewbieOffer) {
		assert.Equal(t, 100.0, *tr.NewbieOffer)
	}
	assert.Nil(t, tr.VeteranOffer)

	_, err = tours.ApplyOffer(tr, tr.VeteranID, 180, now)
	assert.NoError(t, err)
	if assert.NotNil(t, tr.VeteranOffer) {
		assert.Equal(t, 180.0, *tr.VeteranOffer)
	}

	_, err = tours.ApplyOffer(tr, tr.NewbieID, 140, now)
	assert.NoError(t, err)
	if assert.NotNil(t, tr.NewbieOffer) {
		assert.Equal(t, 140.0, *tr.NewbieOffer)
	}
	if assert.NotNil(t, tr.VeteranOffer) {
		assert.Equal(t, 180.0, *tr.VeteranOffer)
	}
	assert.Len(t, tr.Offers, 3)
}

func TestApplyOffer_ConfirmedRejectsFurtherOffers(t *testing.T) {
	tr := newRequest()
	now := time.Now()

	_, err := tours.ApplyOffer(tr, tr.NewbieID, 100, now)
	assert.NoError(t, err)
	assert.NoError(t, tours.Confirm(tr, tr.VeteranID))

	_, err = tours.ApplyOffer(tr, tr.VeteranID, 150, now)
	assert.Error(t, err)
	assert.Equal(t, http.StatusConflict, tours.HTTPStatus(err))
	assert.Len(t, tr.Offers, 1)
}

func TestConfirm(t *testing.T) {
	tr := newRequest()

	// Either participant may confirm a requested or offered negotiation.
	assert.NoError(t, tours.Confirm(tr, tr.VeteranID))
	assert.Equal(t, tours.StatusConfirmed, tr.Status)

	tr = newRequest()
	_, err := tours.ApplyOffer(tr, tr.NewbieID, 100, time.Now())
	assert.NoError(t, err)
	assert.NoError(t, tours.Confirm(tr, tr.NewbieID))
	assert.Equal(t, tours.StatusConfirmed, tr.Status)

	err = tours.Confirm(tr, tr.NewbieID)
	assert.Error(t, err)
	assert.Equal(t, http.StatusConflict, tours.HTTPStatus(err))

	err = tours.Confirm(tr, uuid.New())
	assert.Error(t, err)
	assert.Equal(t, http.StatusForbidden, tours.HTTPStatus(err))
}

func TestCancel(t *testing.T) {
	tr := newRequest()

	assert.NoError(t, tours.Cancel(tr, tr.NewbieID))
	assert.Equal(t, tours.StatusCancelled, tr.Status)

	err := tours.Cancel(tr, tr.NewbieID)
	assert.Error(t, err)
	assert.Equal(t, http.StatusConflict, tours.HTTPStatus(err))

	tr = newRequest()
	assert.NoError(t, tours.Confirm(tr, tr.VeteranID))
	assert.NoError(t, tours.Cancel(tr, tr.VeteranID))
	assert.Equal(t, tours.StatusCancelled, tr.Status)
}

func TestComplete(t *testing.T) {
	tr := newRequest()

	err := tours.Complete(tr)
	assert.Error(t, err)
	assert.Equal(t, http.StatusConflict, tours.HTTPStatus(err))
	assert.Equal(t, tours.StatusRequested, tr.Status)

	assert.NoError(t, tours.Confirm(tr, tr.NewbieID))
	assert.NoError(t, tours.Complete(tr))
	assert.Equal(t, tours.StatusCompleted, tr.Status)

	err = tours.Complete(tr)
	assert.Error(t, err)
	assert.Equal(t, http.StatusConflict, tours.HTTPStatus(err))
}

func TestTerminalStatesRejectEverything(t *testing.T) {
	for _, status := range []string{tours.StatusCompleted, tours.StatusCancelled} {
		tr := newRequest()
		tr.Status = status

		_, err := tours.ApplyOffer(tr, tr.NewbieID, 100, time.Now())
		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, tours.HTTPStatus(err))

		assert.Error(t, tours.Confirm(tr, tr.NewbieID))
		assert.Error(t, tours.Cancel(tr, tr.VeteranID))
		assert.Error(t, tours.Complete(tr))
		assert.Equal(t, status, tr.Status)
	}
}

func TestHTTPStatus_UnknownErrorIsServerError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, tours.HTTPStatus(assert.AnError))
}

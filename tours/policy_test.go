package tours_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/deshidirective/deshi_directive/models"
	"github.com/deshidirective/deshi_directive/tours"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newRequest() *models.TourRequest {
	return &models.TourRequest{
		ID:        uuid.New(),
		NewbieID:  uuid.New(),
		VeteranID: uuid.New(),
		Status:    tours.StatusRequested,
	}
}

func TestAuthorizeCreation(t *testing.T) {
	assert.NoError(t, tours.AuthorizeCreation(models.UserTypeNewbie, models.UserTypeVeteran))

	nonNewbies := []string{
		models.UserTypeVeteran,
		models.UserTypeAdmin,
		models.UserTypeLocalAdmin,
		models.UserTypeLocalShop,
		models.UserTypeRestaurant,
	}
	for _, creator := range nonNewbies {
		err := tours.AuthorizeCreation(creator, models.UserTypeVeteran)
		assert.Error(t, err, creator)
		assert.Equal(t, http.StatusForbidden, tours.HTTPStatus(err), creator)
	}

	nonVeterans := []string{
		models.UserTypeNewbie,
		models.UserTypeAdmin,
		models.UserTypeLocalAdmin,
		models.UserTypeLocalShop,
		models.UserTypeRestaurant,
	}
	for _, target := range nonVeterans {
		err := tours.AuthorizeCreation(models.UserTypeNewbie, target)
		assert.Error(t, err, target)
		assert.Equal(t, http.StatusForbidden, tours.HTTPStatus(err), target)
	}
}

func TestPartyOf(t *testing.T) {
	tr := newRequest()

	party, ok := tours.PartyOf(tr, tr.NewbieID)
	assert.True(t, ok)
	assert.Equal(t, tours.PartyNewbie, party)

	party, ok = tours.PartyOf(tr, tr.VeteranID)
	assert.True(t, ok)
	assert.Equal(t, tours.PartyVeteran, party)

	_, ok = tours.PartyOf(tr, uuid.New())
	assert.False(t, ok)
}

func TestNextParty_OpeningGoesToNewbie(t *testing.T) {
	tr := newRequest()

	assert.Nil(t, tours.LastOffer(tr))
	assert.Equal(t, tours.PartyNewbie, tours.NextParty(tr))
}

func TestNextParty_Alternates(t *testing.T) {
	tr := newRequest()
	now := time.Now()

	_, err := tours.ApplyOffer(tr, tr.NewbieID, 100, now)
	assert.NoError(t, err)
	assert.Equal(t, tours.PartyVeteran, tours.NextParty(tr))

	_, err = tours.ApplyOffer(tr, tr.VeteranID, 150, now)
	assert.NoError(t, err)
	assert.Equal(t, tours.PartyNewbie, tours.NextParty(tr))
}

func TestLastOffer_ReturnsNewest(t *testing.T) {
	tr := newRequest()
	now := time.Now()

	_, err := tours.ApplyOffer(tr, tr.NewbieID, 100, now)
	assert.NoError(t, err)
	_, err = tours.ApplyOffer(tr, tr.VeteranID, 150, now)
	assert.NoError(t, err)

	last := tours.LastOffer(tr)
	if assert.NotNil(t, last) {
		assert.Equal(t, tours.PartyVeteran, last.Who)
		assert.Equal(t, 150.0, last.Amount)
	}
}

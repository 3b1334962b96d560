package tours

import (
	"github.com/deshidirective/deshi_directive/models"
	"github.com/google/uuid"
)

const (
	PartyNewbie  = "newbie"
	PartyVeteran = "veteran"
)

// OpeningParty is who may place the first offer when the log is still empty.
// The newbie requests the tour, so the newbie opens; the veteran waits.
const OpeningParty = PartyNewbie

// AuthorizeCreation gates who may open a negotiation: the creator must be a
// newbie and the target must be a veteran.
func AuthorizeCreation(creatorType, targetType string) error {
	if creatorType != models.UserTypeNewbie {
		return Authorizationf("only general users can request tours")
	}
	if targetType != models.UserTypeVeteran {
		return Authorizationf("target user is not a tour guide")
	}
	return nil
}

// PartyOf resolves a user id to its side of the negotiation.
func PartyOf(tr *models.TourRequest, userID uuid.UUID) (string, bool) {
	switch userID {
	case tr.NewbieID:
		return PartyNewbie, true
	case tr.VeteranID:
		return PartyVeteran, true
	}
	return "", false
}

// LastOffer returns the newest entry of the negotiation log, or nil when no
// offer has been made yet. Offers are kept in insertion order.
func LastOffer(tr *models.TourRequest) *models.TourOffer {
	if len(tr.Offers) == 0 {
		return nil
	}
	return &tr.Offers[len(tr.Offers)-1]
}

// NextParty returns whose turn it is to offer. Offers strictly alternate;
// with an empty log the opening party goes first.
func NextParty(tr *models.TourRequest) string {
	last := LastOffer(tr)
	if last == nil {
		return OpeningParty
	}
	if last.Who == PartyNewbie {
		return PartyVeteran
	}
	return PartyNewbie
}

// authorizeOffer enforces participation and turn-taking for a single offer.
func authorizeOffer(tr *models.TourRequest, actorID uuid.UUID) (string, error) {
	party, ok := PartyOf(tr, actorID)
	if !ok {
		return "", Authorizationf("you are not a participant of this tour request")
	}
	if next := NextParty(tr); party != next {
		if LastOffer(tr) == nil {
			return "", Authorizationf("waiting for the tourist to make the opening offer")
		}
		return "", Authorizationf("it is not your turn to make an offer")
	}
	return party, nil
}

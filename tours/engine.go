package tours

import (
	"time"

	"github.com/deshidirective/deshi_directive/models"
	"github.com/google/uuid"
)

const (
	StatusRequested = "requested"
	StatusOffered   = "offered"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// IsTerminal reports whether no transition may leave the status.
func IsTerminal(status string) bool {
	return status == StatusCompleted || status == StatusCancelled
}

// ValidateWindow checks the requested tour window. End must be strictly
// after start.
func ValidateWindow(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return Validationf("start and end time are required")
	}
	if !end.After(start) {
		return Validationf("end time must be after start time")
	}
	return nil
}

// ApplyOffer validates and appends one offer to the negotiation log, moves
// the request to offered and refreshes the cached per-party offer fields.
// The caller owns loading and persisting the request; nothing is mutated
// when an error is returned.
func ApplyOffer(tr *models.TourRequest, actorID uuid.UUID, amount float64, now time.Time) (*models.TourOffer, error) {
	if IsTerminal(tr.Status) {
		return nil, InvalidStatef("tour request is %s and can no longer be negotiated", tr.Status)
	}
	if tr.Status == StatusConfirmed {
		return nil, InvalidStatef("tour request is already confirmed; no further offers accepted")
	}
	if amount <= 0 {
		return nil, Validationf("offer amount must be a positive number")
	}
	party, err := authorizeOffer(tr, actorID)
	if err != nil {
		return nil, err
	}

	tr.Offers = append(tr.Offers, models.TourOffer{
		TourRequestID: tr.ID,
		Who:           party,
		Amount:        amount,
		At:            now,
	})
	tr.Status = StatusOffered
	refreshCachedOffers(tr)

	return &tr.Offers[len(tr.Offers)-1], nil
}

// Confirm moves a requested or offered negotiation to confirmed. Either
// participant may accept the standing terms.
func Confirm(tr *models.TourRequest, actorID uuid.UUID) error {
	if _, ok := PartyOf(tr, actorID); !ok {
		return Authorizationf("you are not a participant of this tour request")
	}
	if tr.Status != StatusRequested && tr.Status != StatusOffered {
		return InvalidStatef("cannot confirm a %s tour request", tr.Status)
	}
	tr.Status = StatusConfirmed
	return nil
}

// Cancel moves any non-terminal negotiation to cancelled.
func Cancel(tr *models.TourRequest, actorID uuid.UUID) error {
	if _, ok := PartyOf(tr, actorID); !ok {
		return Authorizationf("you are not a participant of this tour request")
	}
	if IsTerminal(tr.Status) {
		return InvalidStatef("tour request is already %s", tr.Status)
	}
	tr.Status = StatusCancelled
	return nil
}

// Complete finalizes a confirmed negotiation after payment capture.
func Complete(tr *models.TourRequest) error {
	if tr.Status != StatusConfirmed {
		if IsTerminal(tr.Status) {
			return InvalidStatef("tour request is already %s", tr.Status)
		}
		return InvalidStatef("payment requires a confirmed tour request, current status is %s", tr.Status)
	}
	tr.Status = StatusCompleted
	return nil
}

// refreshCachedOffers re-derives NewbieOffer and VeteranOffer from the log
// so the cached fields can never drift from it.
func refreshCachedOffers(tr *models.TourRequest) {
	tr.NewbieOffer = nil
	tr.VeteranOffer = nil
	for i := range tr.Offers {
		o := tr.Offers[i]
		amount := o.Amount
		switch o.Who {
		case PartyNewbie:
			tr.NewbieOffer = &amount
		case PartyVeteran:
			tr.VeteranOffer = &amount
		}
	}
}

package booking

import (
	"context"

	"github.com/SparkleCleanOps/cleaning-ops/internal/audit"
	domain "github.com/SparkleCleanOps/cleaning-ops/internal/domain/booking"
	"github.com/SparkleCleanOps/cleaning-ops/internal/httperr"
	"github.com/SparkleCleanOps/cleaning-ops/internal/models"
	"github.com/SparkleCleanOps/cleaning-ops/internal/timezone"
)

type StartBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewStartBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *StartBooking {
	return &StartBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *StartBooking) Execute(
	ctx context.Context,
	actorID uint,
	bookingID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	crew, err := uc.repo.GetCrew(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	changed, err := domain.Start(b, crew, actorID, timezone.Now())
	if err != nil {
		return nil, err
	}
	if !changed {
		// Repeated start by the lead: keep StartedAt untouched.
		return b, nil
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "booking_started",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}

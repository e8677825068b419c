package booking

import (
	"context"

	"github.com/SparkleCleanOps/cleaning-ops/internal/audit"
	domain "github.com/SparkleCleanOps/cleaning-ops/internal/domain/booking"
	"github.com/SparkleCleanOps/cleaning-ops/internal/httperr"
	"github.com/SparkleCleanOps/cleaning-ops/internal/models"
	"github.com/SparkleCleanOps/cleaning-ops/internal/timezone"
)

type CompleteBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCompleteBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CompleteBooking {
	return &CompleteBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CompleteBooking) Execute(
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

	checklistDone, err := uc.repo.AreAllRoomsCompleted(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	changed, err := domain.Complete(b, crew, actorID, checklistDone, timezone.Now())
	if err != nil {
		return nil, err
	}
	if !changed {
		return b, nil
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	// The once-only completion event: dispatched only on the transition
	// edge, this is what the invoicing workflow keys off.
	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "booking_completed",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}

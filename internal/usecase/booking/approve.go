package booking

import (
	"context"
	"time"

	"github.com/SparkleCleanOps/cleaning-ops/internal/audit"
	domain "github.com/SparkleCleanOps/cleaning-ops/internal/domain/booking"
	"github.com/SparkleCleanOps/cleaning-ops/internal/httperr"
	"github.com/SparkleCleanOps/cleaning-ops/internal/models"
)

type ApproveBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewApproveBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ApproveBooking {
	return &ApproveBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *ApproveBooking) Execute(
	ctx context.Context,
	operatorID uint,
	bookingID uint,
	scheduledAt *time.Time,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if err := domain.Approve(b, scheduledAt); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &operatorID,
		Action:   "booking_approved",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}

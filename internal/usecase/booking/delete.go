package booking

import (
	"context"

	"github.com/SparkleCleanOps/cleaning-ops/internal/audit"
	domain "github.com/SparkleCleanOps/cleaning-ops/internal/domain/booking"
	"github.com/SparkleCleanOps/cleaning-ops/internal/httperr"
)

type DeleteBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteBooking {
	return &DeleteBooking{
		repo:  repo,
		audit: audit,
	}
}

// Execute refuses to delete a booking that a paid invoice references;
// financial records must keep their anchor.
func (uc *DeleteBooking) Execute(
	ctx context.Context,
	operatorID uint,
	bookingID uint,
) error {

	if _, err := uc.repo.GetBooking(ctx, bookingID); err != nil {
		return httperr.ErrBusiness("booking_not_found")
	}

	paid, err := uc.repo.HasPaidInvoice(ctx, bookingID)
	if err != nil {
		return err
	}
	if paid {
		return httperr.ErrBusiness(httperr.CodeInvoicePaid)
	}

	if err := uc.repo.DeleteBooking(ctx, bookingID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &operatorID,
		Action:   "booking_deleted",
		Entity:   "booking",
		EntityID: &bookingID,
	})

	return nil
}

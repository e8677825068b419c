package booking

import (
	"context"

	"github.com/SparkleCleanOps/cleaning-ops/internal/audit"
	domain "github.com/SparkleCleanOps/cleaning-ops/internal/domain/booking"
	"github.com/SparkleCleanOps/cleaning-ops/internal/httperr"
	"github.com/SparkleCleanOps/cleaning-ops/internal/models"
)

type AssignCrew struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAssignCrew(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *AssignCrew {
	return &AssignCrew{
		repo:  repo,
		audit: audit,
	}
}

// Execute replaces the ordered crew of a booking; position 0 leads unless
// the override names another crew member. Web-intake bookings arrive
// unstaffed and need this before anyone can start them.
func (uc *AssignCrew) Execute(
	ctx context.Context,
	operatorID uint,
	bookingID uint,
	crew []uint,
	leadCleanerID *uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	switch domain.Status(b.Status) {
	case domain.StatusCompleted, domain.StatusCancelled:
		return nil, httperr.ErrBusiness(httperr.CodeIllegalTransition)
	}

	if len(crew) == 0 {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidAttribute)
	}

	if leadCleanerID != nil {
		inCrew := false
		for _, m := range crew {
			if m == *leadCleanerID {
				inCrew = true
				break
			}
		}
		if !inCrew {
			return nil, httperr.ErrBusiness(httperr.CodeInvalidAttribute)
		}
	}

	if err := uc.repo.ReplaceCrew(ctx, bookingID, crew); err != nil {
		return nil, err
	}

	b.LeadCleanerID = leadCleanerID
	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &operatorID,
		Action:   "booking_crew_assigned",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]any{
			"crew_size": len(crew),
		},
	})

	return b, nil
}

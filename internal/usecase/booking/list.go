package booking

import (
	"context"
	"time"

	domain "github.com/SparkleCleanOps/cleaning-ops/internal/domain/booking"
	"github.com/SparkleCleanOps/cleaning-ops/internal/models"
)

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

// ByDate lists a member's bookings for one calendar day. memberID 0 lists
// everyone (admin schedule view).
func (uc *ListBookings) ByDate(
	ctx context.Context,
	memberID uint,
	date time.Time,
) ([]models.Booking, error) {

	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	end := start.Add(24 * time.Hour)

	return uc.repo.ListBookingsForDay(ctx, memberID, start, end)
}

func (uc *ListBookings) ByMonth(
	ctx context.Context,
	memberID uint,
	year int,
	month time.Month,
	loc *time.Location,
) ([]models.Booking, error) {

	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0)

	return uc.repo.ListBookingsForPeriod(ctx, memberID, start, end)
}
